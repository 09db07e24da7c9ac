package ogg

import "encoding/binary"

// cursor is a minimal, allocation-free byte reader. Every successful read
// advances past consumed bytes; callers retain the remainder for subsequent
// reads. There is no backtracking -- mirrors the hand-rolled primitives the
// teacher module uses directly on byte slices in page.go/header.go.
type cursor struct {
	data []byte
}

func (c *cursor) remaining() []byte { return c.data }

func (c *cursor) len() int { return len(c.data) }

// take consumes and returns exactly n bytes, or fails with EndOfStreamError
// reporting the shortfall.
func (c *cursor) take(n int) ([]byte, error) {
	if len(c.data) < n {
		return nil, &EndOfStreamError{Shortfall: n - len(c.data)}
	}
	b := c.data[:n]
	c.data = c.data[n:]
	return b, nil
}

func (c *cursor) u8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16le() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32le() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) u64le() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// tag consumes len(want) bytes and requires they match want exactly. onMismatch
// is returned verbatim when the bytes don't match (not wrapped), so callers
// can surface precise sentinels like ErrNotOggStream / ErrNotOpusStream.
func (c *cursor) tag(want string, onMismatch error) error {
	b, err := c.take(len(want))
	if err != nil {
		return err
	}
	if string(b) != want {
		return onMismatch
	}
	return nil
}
