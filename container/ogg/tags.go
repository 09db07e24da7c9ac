package ogg

import "strings"

const opusTagsMagic = "OpusTags"

// OpusTags is the parsed Opus comment header (RFC 7845 §5.2): a vendor
// string followed by an ordered list of "KEY=value" user comments.
//
// Parsing the comment header into structured data costs nothing on the
// steady-state packet path since it runs only once per logical stream.
// Parsing is best-effort: a malformed individual comment is skipped rather
// than treated as fatal.
type OpusTags struct {
	Vendor   string
	Comments []string
}

// parseOpusTags parses an OpusTags packet. A malformed vendor-string length
// or comment count aborts the parse and returns an error, but callers
// (reader.go's ReadHeader) treat that as non-fatal to the stream itself --
// the page framing was already validated independently by walkPageGroup.
func parseOpusTags(data []byte) (*OpusTags, error) {
	c := &cursor{data: data}

	if err := c.tag(opusTagsMagic, &ParsingError{Reason: "missing OpusTags magic"}); err != nil {
		return nil, err
	}

	vendorLen, err := c.u32le()
	if err != nil {
		return nil, err
	}
	vendorBytes, err := c.take(int(vendorLen))
	if err != nil {
		return nil, err
	}

	count, err := c.u32le()
	if err != nil {
		return nil, err
	}

	tags := &OpusTags{Vendor: string(vendorBytes)}
	for i := uint32(0); i < count; i++ {
		length, err := c.u32le()
		if err != nil {
			break
		}
		b, err := c.take(int(length))
		if err != nil {
			break
		}
		s := string(b)
		if !strings.Contains(s, "=") {
			continue
		}
		tags.Comments = append(tags.Comments, s)
	}

	return tags, nil
}
