package ogg

// SubChannel distinguishes which half of a stereo stream a channel reads
// from, or Mono for an uncoupled stream.
type SubChannel int

const (
	SubMono SubChannel = iota
	SubLeft
	SubRight
)

// SpeakerLocation names a fixed Vorbis channel-order speaker position, per
// RFC 7845 §5.1.1.2. SpeakerUnknown is used for mapping families that carry
// no fixed speaker semantics (255, Reserved).
type SpeakerLocation int

const (
	SpeakerUnknown SpeakerLocation = iota
	SpeakerMono
	SpeakerLeft
	SpeakerRight
	SpeakerCenter
	SpeakerRearLeft
	SpeakerRearRight
	SpeakerSideLeft
	SpeakerSideRight
	SpeakerRearCenter
	SpeakerLFE
)

// vorbisOrder holds the fixed speaker order for channel counts 1 through 8,
// per RFC 7845 §5.1.1.2.
var vorbisOrder = map[uint8][]SpeakerLocation{
	1: {SpeakerMono},
	2: {SpeakerLeft, SpeakerRight},
	3: {SpeakerLeft, SpeakerCenter, SpeakerRight},
	4: {SpeakerLeft, SpeakerRight, SpeakerRearLeft, SpeakerRearRight},
	5: {SpeakerLeft, SpeakerCenter, SpeakerRight, SpeakerRearLeft, SpeakerRearRight},
	6: {SpeakerLeft, SpeakerCenter, SpeakerRight, SpeakerRearLeft, SpeakerRearRight, SpeakerLFE},
	7: {SpeakerLeft, SpeakerCenter, SpeakerRight, SpeakerSideLeft, SpeakerSideRight, SpeakerRearCenter, SpeakerLFE},
	8: {SpeakerLeft, SpeakerCenter, SpeakerRight, SpeakerSideLeft, SpeakerSideRight, SpeakerRearLeft, SpeakerRearRight, SpeakerLFE},
}

// ChannelMappingTable is the stream-count/coupled-count/mapping triple
// carried by mapping families other than 0.
type ChannelMappingTable struct {
	StreamCount  uint8
	CoupledCount uint8
	Mapping      []uint8
}

// ChannelMapping is the parsed channel-mapping portion of an Opus
// identification header.
type ChannelMapping struct {
	Family   uint8
	Channels uint8
	Table    *ChannelMappingTable // nil for family 0
}

// ChannelCount returns the number of output channels this mapping
// describes.
func (m ChannelMapping) ChannelCount() uint8 {
	return m.Channels
}

// StreamCount returns how many Opus streams must be decoded to reconstruct
// this stream's channels.
func (m ChannelMapping) StreamCount() uint8 {
	if m.Table != nil {
		return m.Table.StreamCount
	}
	return 1
}

// CoupledStreamCount returns how many of those streams are coupled
// (stereo) streams.
func (m ChannelMapping) CoupledStreamCount() uint8 {
	if m.Table != nil {
		return m.Table.CoupledCount
	}
	if m.Channels == 2 {
		return 1
	}
	return 0
}

// Mapping is the result of projecting one output channel to a decoded
// stream, per RFC 7845 §5.1.
type Mapping struct {
	// Stream is the decoded stream index, or nil if the channel is silent.
	Stream  *int
	Sub     SubChannel
	Speaker SpeakerLocation
}

// streamIndexForEntry applies the shared mapping-table projection rule
// byte 255 is silent; values below 2*coupled select a stereo
// stream (even -> Left, odd -> Right); everything else selects a mono
// stream offset past the coupled streams.
func streamIndexForEntry(entry uint8, coupled uint8) (stream int, sub SubChannel, silent bool) {
	if entry == 255 {
		return 0, SubMono, true
	}
	i := int(entry)
	c := int(coupled)
	if i < 2*c {
		if i%2 == 0 {
			return i / 2, SubLeft, false
		}
		return i / 2, SubRight, false
	}
	return i - c, SubMono, false
}

// GetMapping projects channel (0-based) to its decoded stream and speaker
// location. ok is false when channel is out of range.
func (m ChannelMapping) GetMapping(channel int) (Mapping, bool) {
	if channel < 0 || channel >= int(m.Channels) {
		return Mapping{}, false
	}

	if m.Family == 0 {
		coupled := uint8(0)
		if m.Channels == 2 {
			coupled = 1
		}
		stream, sub, silent := streamIndexForEntry(uint8(channel), coupled)
		loc := SpeakerMono
		if m.Channels == 2 {
			if channel == 0 {
				loc = SpeakerLeft
			} else {
				loc = SpeakerRight
			}
		}
		if silent {
			return Mapping{Sub: sub, Speaker: loc}, true
		}
		s := stream
		return Mapping{Stream: &s, Sub: sub, Speaker: loc}, true
	}

	entry := m.Table.Mapping[channel]
	stream, sub, silent := streamIndexForEntry(entry, m.Table.CoupledCount)

	loc := SpeakerUnknown
	if m.Family == 1 {
		if order, ok := vorbisOrder[m.Channels]; ok && channel < len(order) {
			loc = order[channel]
		}
	}

	if silent {
		return Mapping{Sub: sub, Speaker: loc}, true
	}
	s := stream
	return Mapping{Stream: &s, Sub: sub, Speaker: loc}, true
}

// parseChannelMappingTable parses the stream_count/coupled_count/mapping
// triple following the family byte. max is the largest channel count this
// family permits (8 for family 1, 255 for family 255/Reserved).
func parseChannelMappingTable(data []byte, family uint8, channels uint8, max int) (*ChannelMappingTable, error) {
	c := &cursor{data: data}
	streamCount, err := c.u8()
	if err != nil {
		return nil, err
	}
	coupledCount, err := c.u8()
	if err != nil {
		return nil, err
	}

	if int(streamCount)+int(coupledCount) > 255 {
		return nil, &TotalStreamCountExceedsError{Total: int(streamCount) + int(coupledCount)}
	}
	if streamCount == 0 {
		return nil, ErrZeroStreamCount
	}
	if coupledCount > streamCount {
		return nil, &StreamCountsMismatchError{Coupled: coupledCount, Stream: streamCount}
	}

	rest := c.remaining()
	if len(rest) != int(channels) {
		return nil, &BadTableLengthError{Length: len(rest), Channels: int(channels)}
	}
	if int(channels) > max {
		return nil, &TableTooBigError{Length: len(rest), Max: max}
	}

	mapping := make([]uint8, len(rest))
	copy(mapping, rest)
	for _, v := range mapping {
		if v == 255 {
			continue
		}
		if int(v) >= int(streamCount)+int(coupledCount) {
			return nil, &InvalidChannelIndexError{Index: v}
		}
	}

	return &ChannelMappingTable{StreamCount: streamCount, CoupledCount: coupledCount, Mapping: mapping}, nil
}
