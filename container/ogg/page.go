package ogg

// Header-type bitflags, RFC 3533 §6.
const (
	flagContinuation uint8 = 0x01
	flagBOS          uint8 = 0x02
	flagEOS          uint8 = 0x04
)

const (
	oggMagic = "OggS"

	// pageCRCOffset is the byte offset of the 4-byte CRC field within an
	// encoded page, used by CRC32 to zero that field before checksumming.
	pageCRCOffset = 22

	// pageFixedHeaderSize is the size of the fixed-layout portion of a page
	// header, before the variable-length lace table: magic(4) + version(1)
	// + header_type(1) + granule(8) + serial(4) + sequence(4) + crc(4) +
	// segment_count(1).
	pageFixedHeaderSize = 27
)

// page is one parsed Ogg page. Body aliases the input slice; no bytes are
// copied during parsing.
type page struct {
	HeaderType   uint8
	Granule      uint64
	Serial       uint32
	Sequence     uint32
	Laces        []byte
	Body         []byte
}

func (p *page) isContinuation() bool { return p.HeaderType&flagContinuation != 0 }
func (p *page) isBOS() bool          { return p.HeaderType&flagBOS != 0 }
func (p *page) isEOS() bool          { return p.HeaderType&flagEOS != 0 }

// lastLaceIs255 reports whether the page's final packet continues onto a
// subsequent page.
func (p *page) lastLaceIs255() bool {
	return len(p.Laces) > 0 && p.Laces[len(p.Laces)-1] == 255
}

// parsePage parses exactly one Ogg page from the front of data, returning
// the parsed page and the remaining bytes. The CRC field is read but never
// verified here -- see crc.go: this is a trust-anchored use case, and
// verification is left to callers parsing untrusted input.
func parsePage(data []byte) (*page, []byte, error) {
	c := &cursor{data: data}

	if err := c.tag(oggMagic, ErrNotOggStream); err != nil {
		return nil, nil, err
	}

	version, err := c.u8()
	if err != nil {
		return nil, nil, err
	}
	if version != 0 {
		return nil, nil, &UnsupportedVersionError{Version: version}
	}

	headerType, err := c.u8()
	if err != nil {
		return nil, nil, err
	}
	granule, err := c.u64le()
	if err != nil {
		return nil, nil, err
	}
	serial, err := c.u32le()
	if err != nil {
		return nil, nil, err
	}
	sequence, err := c.u32le()
	if err != nil {
		return nil, nil, err
	}
	if _, err := c.u32le(); err != nil { // crc, discarded by design
		return nil, nil, err
	}
	nsegs, err := c.u8()
	if err != nil {
		return nil, nil, err
	}
	laces, err := c.take(int(nsegs))
	if err != nil {
		return nil, nil, err
	}

	bodyLen := 0
	for _, v := range laces {
		bodyLen += int(v)
	}
	body, err := c.take(bodyLen)
	if err != nil {
		return nil, nil, err
	}

	p := &page{
		HeaderType: headerType,
		Granule:    granule,
		Serial:     serial,
		Sequence:   sequence,
		Laces:      laces,
		Body:       body,
	}
	return p, c.remaining(), nil
}
