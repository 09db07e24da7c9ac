package ogg

import (
	"errors"
	"testing"
)

func opusHeaderFixture() []byte {
	return []byte{
		'O', 'p', 'u', 's', 'H', 'e', 'a', 'd',
		0x01,       // version
		0x01,       // channels
		0x38, 0x01, // pre_skip = 312
		0x80, 0x3E, 0x00, 0x00, // sample_rate = 16000
		0x00, 0x00, // output_gain = 0
		0x00, // mapping family 0
	}
}

func TestParseOpusHeader(t *testing.T) {
	h, err := parseOpusHeader(opusHeaderFixture())
	if err != nil {
		t.Fatalf("parseOpusHeader: %v", err)
	}
	if h.Version != 1 {
		t.Errorf("Version = %d, want 1", h.Version)
	}
	if h.Channels.Family != 0 || h.Channels.Channels != 1 {
		t.Errorf("Channels = %+v, want Family0{1}", h.Channels)
	}
	if h.PreSkip != 312 {
		t.Errorf("PreSkip = %d, want 312", h.PreSkip)
	}
	if h.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", h.SampleRate)
	}
	if h.OutputGain != 0 {
		t.Errorf("OutputGain = %d, want 0", h.OutputGain)
	}
}

func TestParseOpusHeader_CorruptMagic(t *testing.T) {
	data := opusHeaderFixture()
	data[2] = 0x0A

	_, err := parseOpusHeader(data)
	if err != ErrNotOpusStream {
		t.Fatalf("err = %v, want ErrNotOpusStream", err)
	}
}

func TestParseOpusHeader_InvalidChannels(t *testing.T) {
	data := opusHeaderFixture()
	data[9] = 0 // channel count

	_, err := parseOpusHeader(data)
	var iserr *InvalidStreamError
	if !errors.As(err, &iserr) {
		t.Fatalf("err = %v, want *InvalidStreamError", err)
	}
	var cherr *BadNumberOfChannelsError
	if !errors.As(err, &cherr) {
		t.Fatalf("err = %v, want wrapped *BadNumberOfChannelsError", err)
	}
	if cherr.Family != 0 || cherr.Channels != 0 {
		t.Errorf("err = %+v, want {Family:0 Channels:0}", cherr)
	}
}

func TestParseOpusHeader_VersionPolicy(t *testing.T) {
	data := opusHeaderFixture()
	data[8] = 16 // > 15

	_, err := parseOpusHeader(data)
	var verr *UnsupportedOpusVersionError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *UnsupportedOpusVersionError", err)
	}
}
