package ogg

import "encoding/binary"

// encodePage builds a well-formed Ogg page for use as test input. CRC is
// always written as zero since parsePage never verifies it.
func encodePage(serial, sequence uint32, headerType uint8, laces []byte, body []byte) []byte {
	buf := make([]byte, 0, pageFixedHeaderSize+len(laces)+len(body))
	buf = append(buf, oggMagic...)
	buf = append(buf, 0) // version
	buf = append(buf, headerType)

	var granule [8]byte
	buf = append(buf, granule[:]...)

	var serialBuf, seqBuf, crcBuf [4]byte
	binary.LittleEndian.PutUint32(serialBuf[:], serial)
	binary.LittleEndian.PutUint32(seqBuf[:], sequence)
	buf = append(buf, serialBuf[:]...)
	buf = append(buf, seqBuf[:]...)
	buf = append(buf, crcBuf[:]...)

	buf = append(buf, byte(len(laces)))
	buf = append(buf, laces...)
	buf = append(buf, body...)
	return buf
}

// sequence3x100 returns the 300-byte pattern 0..=99 repeated three times,
// used by the cross-page packet fixture.
func sequence3x100() []byte {
	out := make([]byte, 300)
	for i := range out {
		out[i] = byte(i % 100)
	}
	return out
}

// crossPagePacketFixture builds the two-page, 300-byte packet fixture from
// page A (serial 1, sequence 10, lace [255]+255 bytes),
// page B (serial 1, sequence 11, lace [45]+45 bytes).
func crossPagePacketFixture() []byte {
	payload := sequence3x100()
	pageA := encodePage(1, 10, flagBOS, []byte{255}, payload[:255])
	pageB := encodePage(1, 11, 0, []byte{45}, payload[255:])
	return append(pageA, pageB...)
}
