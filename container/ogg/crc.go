package ogg

// Ogg's variant of CRC-32 uses polynomial 0x04C11DB7 with no reflection and
// an initial value of 0 -- distinct from the IEEE/zlib polynomial used
// elsewhere in the standard library's hash/crc32 package, which is why this
// module carries its own table rather than reusing hash/crc32.
var oggCRCTable [256]uint32

func init() {
	const poly = 0x04C11DB7
	for i := 0; i < 256; i++ {
		crc := uint32(i) << 24
		for bit := 0; bit < 8; bit++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		oggCRCTable[i] = crc
	}
}

// CRC32 computes the Ogg CRC-32 checksum of a full page, treating the
// 4-byte CRC field (bytes 22..26 of the page header) as zero, per RFC 3533
// §6. It is not called on the default parse path (see package docs); it is
// provided for callers that choose to verify untrusted input.
func CRC32(page []byte) uint32 {
	var crc uint32
	for i, b := range page {
		if i >= pageCRCOffset && i < pageCRCOffset+4 {
			b = 0
		}
		crc = (crc << 8) ^ oggCRCTable[byte(crc>>24)^b]
	}
	return crc
}
