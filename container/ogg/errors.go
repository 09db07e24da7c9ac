package ogg

import (
	"errors"
	"fmt"
)

// Sentinel errors that carry no parameters.
var (
	// ErrNotOggStream is returned when the input does not begin with the
	// "OggS" capture pattern.
	ErrNotOggStream = errors.New("ogg: not an ogg stream")

	// ErrNotOpusStream is returned when a packet expected to be an Opus
	// identification header does not begin with "OpusHead".
	ErrNotOpusStream = errors.New("ogg: not an opus stream")

	// ErrZeroStreamCount is returned when a channel-mapping table declares
	// zero encoded streams.
	ErrZeroStreamCount = errors.New("ogg: channel mapping table has zero streams")
)

// UnsupportedVersionError reports an Ogg page whose version byte is not 0.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("ogg: unsupported page version %d", e.Version)
}

// UnsupportedOpusVersionError reports an Opus identification header whose
// version byte is greater than 15, i.e. whose major version (high nibble)
// is 1 or more.
type UnsupportedOpusVersionError struct {
	Version uint8
}

func (e *UnsupportedOpusVersionError) Error() string {
	return fmt.Sprintf("ogg: unsupported opus version %d", e.Version)
}

// ParsingError reports a malformed structure that does not fit any of the
// more specific categories below.
type ParsingError struct {
	Reason string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("ogg: parsing error: %s", e.Reason)
}

// EndOfStreamError reports that fewer bytes remained than were required to
// complete a parse. Shortfall is the number of additional bytes that would
// have been needed, when that can be determined; it is zero otherwise.
type EndOfStreamError struct {
	Shortfall int
}

func (e *EndOfStreamError) Error() string {
	if e.Shortfall > 0 {
		return fmt.Sprintf("ogg: unexpected end of stream, %d more byte(s) needed", e.Shortfall)
	}
	return "ogg: unexpected end of stream"
}

// BufferTooSmallError reports that a caller-sized scratch buffer cannot hold
// the largest packet in the page group being parsed.
type BufferTooSmallError struct {
	Got, Needed int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("ogg: buffer too small: have %d bytes, need %d", e.Got, e.Needed)
}

// SequenceNumberMismatchError reports a page whose sequence number is not
// exactly one greater than the previous page's.
type SequenceNumberMismatchError struct {
	Expected, Got uint32
}

func (e *SequenceNumberMismatchError) Error() string {
	return fmt.Sprintf("ogg: page sequence mismatch: expected %d, got %d", e.Expected, e.Got)
}

// InvalidStreamError wraps a structural validation failure: a page
// sequence-number mismatch at the Ogg layer, or a bad channel count or
// channel-mapping table in the Opus identification header.
type InvalidStreamError struct {
	Err error
}

func (e *InvalidStreamError) Error() string {
	return fmt.Sprintf("ogg: invalid stream: %s", e.Err)
}

func (e *InvalidStreamError) Unwrap() error { return e.Err }

// UnsupportedStreamError reports an otherwise well-formed stream this parser
// declines to continue reading, e.g. a serial number that changed mid page
// group.
type UnsupportedStreamError struct {
	Reason string
}

func (e *UnsupportedStreamError) Error() string {
	return fmt.Sprintf("ogg: unsupported stream: %s", e.Reason)
}

// Opus channel-mapping table errors.

// BadNumberOfChannelsError reports a channel count invalid for the given
// mapping family.
type BadNumberOfChannelsError struct {
	Family   uint8
	Channels uint8
}

func (e *BadNumberOfChannelsError) Error() string {
	return fmt.Sprintf("ogg: bad channel count %d for mapping family %d", e.Channels, e.Family)
}

// InvalidChannelIndexError reports a channel-mapping table entry that does
// not name a silent channel (255) nor a valid stream index.
type InvalidChannelIndexError struct {
	Index uint8
}

func (e *InvalidChannelIndexError) Error() string {
	return fmt.Sprintf("ogg: invalid channel mapping index %d", e.Index)
}

// TotalStreamCountExceedsError reports a stream_count + coupled_count sum
// greater than 255.
type TotalStreamCountExceedsError struct {
	Total int
}

func (e *TotalStreamCountExceedsError) Error() string {
	return fmt.Sprintf("ogg: total stream count %d exceeds 255", e.Total)
}

// StreamCountsMismatchError reports coupled_count greater than stream_count.
type StreamCountsMismatchError struct {
	Coupled, Stream uint8
}

func (e *StreamCountsMismatchError) Error() string {
	return fmt.Sprintf("ogg: coupled stream count %d exceeds stream count %d", e.Coupled, e.Stream)
}

// BadTableLengthError reports a channel-mapping table whose length does not
// match the declared channel count.
type BadTableLengthError struct {
	Length, Channels int
}

func (e *BadTableLengthError) Error() string {
	return fmt.Sprintf("ogg: channel mapping table length %d does not match %d channels", e.Length, e.Channels)
}

// TableTooBigError reports a channel-mapping table larger than the family's
// maximum supported channel count.
type TableTooBigError struct {
	Length, Max int
}

func (e *TableTooBigError) Error() string {
	return fmt.Sprintf("ogg: channel mapping table length %d exceeds maximum %d", e.Length, e.Max)
}

// BitstreamError is the combined error type returned by the reader
// typestate machine, collapsing duplicate concepts from the Ogg and Opus
// layers into single combined variants.
type BitstreamError struct {
	Err error
}

func (e *BitstreamError) Error() string {
	return fmt.Sprintf("ogg: %s", e.Err)
}

func (e *BitstreamError) Unwrap() error { return e.Err }

// wrapBitstreamError wraps a lower-layer Ogg or Opus error as a combined
// BitstreamError for the reader typestate machine's callers.
func wrapBitstreamError(err error) error {
	if err == nil {
		return nil
	}
	return &BitstreamError{Err: err}
}

// invalidOggStreamError and invalidOpusStreamError are message-carrying
// combined-layer errors raised directly by the reader typestate machine
// (not by the lower Ogg/Opus parsers), e.g. "unexpected page sequence
// number in header".
type invalidOggStreamError struct{ msg string }

func (e *invalidOggStreamError) Error() string { return fmt.Sprintf("ogg: invalid ogg stream: %s", e.msg) }

type invalidOpusStreamError struct{ msg string }

func (e *invalidOpusStreamError) Error() string { return fmt.Sprintf("ogg: invalid opus stream: %s", e.msg) }
