package ogg

// Packet is a borrowed view into a Packets scratch buffer. It is valid
// only until the next call to Next on the same Packets value, which
// overwrites the scratch buffer. Callers that need to
// retain a packet across iterations must copy it out.
type Packet []byte

// Packets reassembles packet fragments spanning one or more consecutive
// Ogg pages into a fixed-capacity scratch buffer sized at construction
// time. Go has no array-length generics, so capacity is a constructor
// parameter, checked once up front.
type Packets struct {
	pages   []*page
	scratch []byte
	cursor  int

	pageIdx int
	segIter *segmentTableIterator

	serial   uint32
	firstSeq uint32
	lastSeq  uint32
	eos      bool
}

// newPackets walks one page group starting at data (via walkPageGroup),
// verifies the group's largest reassembled packet fits within capacity
// bytes, and returns a Packets ready to drain with Next. The returned
// remaining slice is the input with the consumed page group removed.
func newPackets(data []byte, capacity int) (*Packets, []byte, error) {
	pages, remaining, err := walkPageGroup(data)
	if err != nil {
		return nil, nil, err
	}

	if max := maxPacketSize(pages); max > capacity {
		return nil, nil, &BufferTooSmallError{Got: capacity, Needed: max}
	}

	p := &Packets{
		pages:    pages,
		scratch:  make([]byte, capacity),
		pageIdx:  0,
		segIter:  newSegmentTableIterator(pages[0].Laces),
		serial:   pages[0].Serial,
		firstSeq: pages[0].Sequence,
		lastSeq:  pages[len(pages)-1].Sequence,
		eos:      pages[len(pages)-1].isEOS(),
	}
	return p, remaining, nil
}

// Next drains the next reassembled packet, or returns ok=false once every
// packet in this page group has been yielded.
func (p *Packets) Next() (Packet, bool) {
	for {
		seg, ok := p.segIter.next()
		if !ok {
			p.pageIdx++
			if p.pageIdx >= len(p.pages) {
				return nil, false
			}
			p.segIter = newSegmentTableIterator(p.pages[p.pageIdx].Laces)
			continue
		}

		body := p.pages[p.pageIdx].Body[seg.Before : seg.Before+seg.Size]
		n := copy(p.scratch[p.cursor:], body)
		p.cursor += n

		if seg.Complete {
			out := Packet(p.scratch[:p.cursor])
			p.cursor = 0
			return out, true
		}
	}
}

// BitstreamSerialNumber returns the shared serial number of every page in
// this group.
func (p *Packets) BitstreamSerialNumber() uint32 { return p.serial }

// CurrentPageSequenceNumber returns the sequence number of the page
// currently being drained.
func (p *Packets) CurrentPageSequenceNumber() uint32 { return p.pages[p.pageIdx].Sequence }

// LastPageSequenceNumber returns the sequence number of the final page in
// this group.
func (p *Packets) LastPageSequenceNumber() uint32 { return p.lastSeq }

// EndOfStream reports whether the final page in this group carries the EOS
// flag.
func (p *Packets) EndOfStream() bool { return p.eos }
