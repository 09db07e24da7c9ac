package ogg

const (
	opusHeadMagic = "OpusHead"

	// DefaultPreSkip is the pre-skip value recommended by RFC 7845 §4.2
	// for encoders that can't determine codec delay precisely.
	DefaultPreSkip = 312
)

// OpusHeader is the parsed Opus identification header (RFC 7845 §5.1), the
// first packet of the first page of an Opus logical bitstream.
type OpusHeader struct {
	Version uint8

	// Channels is the mapping-family/channel-count/table triple.
	Channels ChannelMapping

	PreSkip uint16

	// SampleRate is the encoder's original input sample rate. It is
	// informational only -- RFC 7845 requires decoding at 48kHz
	// regardless of this value.
	SampleRate uint32

	// OutputGain is a signed Q7.8 fixed-point dB adjustment to apply to
	// decoded output.
	OutputGain int16
}

// NearestSupportedSampleRate rounds rate up to the nearest Opus-supported
// rate in {8000, 12000, 16000, 24000, 48000}, matching the manual rounding
// reference Ogg Opus players perform against OpusHeader.SampleRate before
// configuring playback hardware.
func NearestSupportedSampleRate(rate uint32) uint32 {
	supported := [...]uint32{8000, 12000, 16000, 24000, 48000}
	for _, s := range supported {
		if rate <= s {
			return s
		}
	}
	return supported[len(supported)-1]
}

// parseOpusHeader parses an Opus identification header packet. Family 0
// channel counts are validated against {1, 2}; family 1 against {1..8} with
// a Vorbis-order channel-mapping table; family 255 and the reserved range
// 2..254 are gated behind the family255 build tag (channelmap_family255*.go).
func parseOpusHeader(data []byte) (*OpusHeader, error) {
	c := &cursor{data: data}

	if err := c.tag(opusHeadMagic, ErrNotOpusStream); err != nil {
		return nil, err
	}

	version, err := c.u8()
	if err != nil {
		return nil, err
	}
	if version > 15 {
		return nil, &UnsupportedOpusVersionError{Version: version}
	}

	channels, err := c.u8()
	if err != nil {
		return nil, err
	}
	preSkip, err := c.u16le()
	if err != nil {
		return nil, err
	}
	sampleRate, err := c.u32le()
	if err != nil {
		return nil, err
	}
	outputGain, err := c.u16le()
	if err != nil {
		return nil, err
	}
	family, err := c.u8()
	if err != nil {
		return nil, err
	}

	mapping, err := parseChannelMapping(family, channels, c.remaining())
	if err != nil {
		return nil, err
	}

	return &OpusHeader{
		Version:    version,
		Channels:   mapping,
		PreSkip:    preSkip,
		SampleRate: sampleRate,
		OutputGain: int16(outputGain),
	}, nil
}

func parseChannelMapping(family uint8, channels uint8, rest []byte) (ChannelMapping, error) {
	switch family {
	case 0:
		if channels != 1 && channels != 2 {
			return ChannelMapping{}, &InvalidStreamError{Err: &BadNumberOfChannelsError{Family: family, Channels: channels}}
		}
		return ChannelMapping{Family: family, Channels: channels}, nil

	case 1:
		if channels < 1 || channels > 8 {
			return ChannelMapping{}, &InvalidStreamError{Err: &BadNumberOfChannelsError{Family: family, Channels: channels}}
		}
		table, err := parseChannelMappingTable(rest, family, channels, 8)
		if err != nil {
			return ChannelMapping{}, wrapTableError(err)
		}
		return ChannelMapping{Family: family, Channels: channels, Table: table}, nil

	default: // 255 (Discrete) and reserved 2..254
		if !family255Enabled {
			return ChannelMapping{}, &UnsupportedStreamError{Reason: "family 255 channel mapping is not supported"}
		}
		if channels < 1 {
			return ChannelMapping{}, &InvalidStreamError{Err: &BadNumberOfChannelsError{Family: family, Channels: channels}}
		}
		table, err := parseChannelMappingTable(rest, family, channels, 255)
		if err != nil {
			return ChannelMapping{}, wrapTableError(err)
		}
		return ChannelMapping{Family: family, Channels: channels, Table: table}, nil
	}
}

// wrapTableError wraps every channel-mapping-table validation failure,
// including ErrZeroStreamCount and TotalStreamCountExceeds, as
// InvalidStreamError; any other error (e.g. a short read) is returned
// unchanged.
func wrapTableError(err error) error {
	switch err.(type) {
	case *TotalStreamCountExceedsError:
		return &InvalidStreamError{Err: err}
	case *StreamCountsMismatchError:
		return &InvalidStreamError{Err: err}
	case *BadTableLengthError:
		return &InvalidStreamError{Err: err}
	case *TableTooBigError:
		return &InvalidStreamError{Err: err}
	case *InvalidChannelIndexError:
		return &InvalidStreamError{Err: err}
	}
	if err == ErrZeroStreamCount {
		return &InvalidStreamError{Err: err}
	}
	return err
}
