package ogg

// segment describes one packet fragment located within a page's body.
// Before is the byte offset into the page body where the fragment starts;
// Size is its length; Complete is true when this fragment terminates the
// packet (its lace byte was < 255).
type segment struct {
	Before   int
	Size     int
	Complete bool
}

// segmentTableIterator walks a page's lace-byte table. It walks lazily and
// reports fragment boundaries one at a time so the packet reassembler can
// copy bytes directly into its scratch buffer without an intermediate
// []int allocation of packet lengths.
type segmentTableIterator struct {
	laces  []byte
	offset int // cumulative byte offset into the page body
	pos    int // index into laces
}

func newSegmentTableIterator(laces []byte) *segmentTableIterator {
	return &segmentTableIterator{laces: laces}
}

// next returns the next segment, or ok=false once the lace table is
// exhausted. A final run of 255s with no terminating byte < 255 yields one
// segment with Complete=false, signalling that the packet continues on the
// next page.
func (it *segmentTableIterator) next() (segment, bool) {
	if it.pos >= len(it.laces) {
		return segment{}, false
	}
	before := it.offset
	size := 0
	for it.pos < len(it.laces) {
		v := it.laces[it.pos]
		it.pos++
		size += int(v)
		it.offset += int(v)
		if v < 255 {
			return segment{Before: before, Size: size, Complete: true}, true
		}
	}
	return segment{Before: before, Size: size, Complete: false}, true
}
