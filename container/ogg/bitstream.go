package ogg

// Bitstream is the entry point for parsing an in-memory Ogg Opus file. It
// borrows data for the lifetime of every Reader derived from it -- nothing
// is copied at construction.
type Bitstream struct {
	data []byte
}

// NewBitstream wraps a complete Ogg bitstream for parsing. data must remain
// valid and unmodified for as long as any Reader or Packet derived from it
// is in use.
func NewBitstream(data []byte) *Bitstream {
	return &Bitstream{data: data}
}

// Reader returns a fresh reader positioned at the start of the bitstream,
// ready for ReadHeader.
func (b *Bitstream) Reader() *ReaderBeginning {
	return &ReaderBeginning{remaining: b.data}
}
