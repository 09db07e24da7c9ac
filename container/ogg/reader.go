package ogg

// headerScratchCapacity bounds the Opus identification header packet. The
// fixed fields occupy 19 bytes; the largest channel-mapping table this
// module parses by default (family 1, 8 channels) adds at most 2 + 8 = 10
// bytes, so 30 bytes comfortably covers every header this module accepts.
const headerScratchCapacity = 30

// ReaderBeginning is a reader positioned at the start of a logical Ogg
// bitstream. Its only operation is ReadHeader. This and ReaderInStream /
// ReaderEndOfStream model the reader's state machine as distinct struct
// types, each exposing only the methods valid in that state, since Go has
// no type-level state exclusion.
type ReaderBeginning struct {
	remaining []byte
}

// ReadHeader parses the Opus identification header and walks past the
// comment header, returning a reader for the next state. Exactly one of
// the two returned reader pointers is non-nil: ReaderInStream when more
// pages follow, ReaderEndOfStream when the comment header's page already
// carried the EOS flag.
func (r *ReaderBeginning) ReadHeader() (*ReaderInStream, *ReaderEndOfStream, *OpusHeader, *OpusTags, error) {
	packets, remaining, err := newPackets(r.remaining, headerScratchCapacity)
	if err != nil {
		return nil, nil, nil, nil, wrapBitstreamError(err)
	}
	if packets.CurrentPageSequenceNumber() != 0 {
		return nil, nil, nil, nil, wrapBitstreamError(&invalidOggStreamError{msg: "unexpected page sequence number in header"})
	}

	headerPacket, ok := packets.Next()
	if !ok {
		return nil, nil, nil, nil, wrapBitstreamError(&ParsingError{Reason: "empty header page group"})
	}
	header, err := parseOpusHeader(headerPacket)
	if err != nil {
		return nil, nil, nil, nil, wrapBitstreamError(err)
	}
	if _, ok := packets.Next(); ok {
		return nil, nil, nil, nil, wrapBitstreamError(&invalidOpusStreamError{msg: "unexpected segment after header"})
	}
	headerSerial := packets.BitstreamSerialNumber()

	commentPacket, commentSerial, commentLastSeq, commentEOS, afterComments, err := parseSinglePageGroupPacket(remaining)
	if err != nil {
		return nil, nil, nil, nil, wrapBitstreamError(err)
	}
	if commentSerial != headerSerial {
		return nil, nil, nil, nil, wrapBitstreamError(&UnsupportedStreamError{Reason: "bitstream serial number changed unexpectedly"})
	}
	// OpusTags parsing is best-effort: a malformed
	// vendor string or comment list does not invalidate an otherwise
	// structurally valid stream.
	tags, _ := parseOpusTags(commentPacket)

	if commentEOS {
		return nil, &ReaderEndOfStream{remaining: afterComments}, header, tags, nil
	}
	return &ReaderInStream{remaining: afterComments, serial: headerSerial, lastSeq: commentLastSeq}, nil, header, tags, nil
}

// ReaderInStream is a reader positioned within a logical Ogg bitstream,
// past the identification and comment headers.
type ReaderInStream struct {
	remaining []byte
	serial    uint32
	lastSeq   uint32
}

// NextPackets parses the next page group into a Packets value backed by a
// scratch buffer of the given capacity. Exactly one of the two returned
// reader pointers is non-nil: ReaderInStream to continue, or
// ReaderEndOfStream when this group's final page carries the EOS flag.
func (r *ReaderInStream) NextPackets(capacity int) (*ReaderInStream, *ReaderEndOfStream, *Packets, error) {
	packets, remaining, err := newPackets(r.remaining, capacity)
	if err != nil {
		return nil, nil, nil, wrapBitstreamError(err)
	}
	if packets.BitstreamSerialNumber() != r.serial {
		return nil, nil, nil, wrapBitstreamError(&UnsupportedStreamError{Reason: "bitstream serial number changed unexpectedly"})
	}
	if packets.pages[0].Sequence != r.lastSeq+1 {
		return nil, nil, nil, wrapBitstreamError(&invalidOggStreamError{msg: "page sequence numbers are not sequential for data"})
	}

	if packets.EndOfStream() {
		return nil, &ReaderEndOfStream{remaining: remaining}, packets, nil
	}
	return &ReaderInStream{remaining: remaining, serial: r.serial, lastSeq: packets.LastPageSequenceNumber()}, nil, packets, nil
}

// ReaderEndOfStream is a reader that has reached the end of one logical
// bitstream. Ogg physical streams may chain multiple logical bitstreams
// back to back (RFC 3533 §5); HasMore/NextReader expose that chaining.
type ReaderEndOfStream struct {
	remaining []byte
}

// HasMore reports whether bytes remain after this logical stream, i.e.
// whether another chained bitstream follows.
func (r *ReaderEndOfStream) HasMore() bool {
	return len(r.remaining) > 0
}

// NextReader returns a fresh Beginning reader over the residual bytes, or
// ok=false if none remain.
func (r *ReaderEndOfStream) NextReader() (*ReaderBeginning, bool) {
	if len(r.remaining) == 0 {
		return nil, false
	}
	return &ReaderBeginning{remaining: r.remaining}, true
}

// parseSinglePageGroupPacket walks one page group and reassembles its
// first packet into a scratch buffer sized exactly to that group's largest
// packet, for callers (the comment header) that have no fixed capacity to
// enforce up front.
func parseSinglePageGroupPacket(data []byte) (packet Packet, serial uint32, lastSeq uint32, eos bool, remaining []byte, err error) {
	pages, remaining, err := walkPageGroup(data)
	if err != nil {
		return nil, 0, 0, false, nil, err
	}
	capacity := maxPacketSize(pages)
	p := &Packets{
		pages:    pages,
		scratch:  make([]byte, capacity),
		segIter:  newSegmentTableIterator(pages[0].Laces),
		serial:   pages[0].Serial,
		firstSeq: pages[0].Sequence,
		lastSeq:  pages[len(pages)-1].Sequence,
		eos:      pages[len(pages)-1].isEOS(),
	}
	pkt, ok := p.Next()
	if !ok {
		return nil, 0, 0, false, nil, &ParsingError{Reason: "empty page group"}
	}
	return pkt, p.serial, p.lastSeq, p.eos, remaining, nil
}
