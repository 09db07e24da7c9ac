package ogg

// walkPageGroup parses pages starting at data until a page is found whose
// last lace value is < 255 (i.e. no packet fragment continues past it),
// enforcing strict sequence (+1) and serial stability across the group.
func walkPageGroup(data []byte) (pages []*page, remaining []byte, err error) {
	first, rest, err := parsePage(data)
	if err != nil {
		return nil, nil, err
	}
	pages = append(pages, first)
	remaining = rest

	for pages[len(pages)-1].lastLaceIs255() {
		prev := pages[len(pages)-1]
		next, rest2, err := parsePage(remaining)
		if err != nil {
			return nil, nil, err
		}
		if next.Sequence != prev.Sequence+1 {
			return nil, nil, &InvalidStreamError{Err: &SequenceNumberMismatchError{
				Expected: prev.Sequence + 1,
				Got:      next.Sequence,
			}}
		}
		if next.Serial != prev.Serial {
			return nil, nil, &UnsupportedStreamError{Reason: "bitstream serial number changed unexpectedly"}
		}
		pages = append(pages, next)
		remaining = rest2
	}

	return pages, remaining, nil
}

// maxPacketSize returns the largest reassembled packet size that would
// result from walking the given pages, used by Packets construction to
// validate the caller's scratch buffer capacity before any copying begins.
func maxPacketSize(pages []*page) int {
	max := 0
	cur := 0
	for _, p := range pages {
		it := newSegmentTableIterator(p.Laces)
		for {
			seg, ok := it.next()
			if !ok {
				break
			}
			cur += seg.Size
			if seg.Complete {
				if cur > max {
					max = cur
				}
				cur = 0
			}
		}
	}
	return max
}
