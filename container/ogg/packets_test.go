package ogg

import (
	"bytes"
	"errors"
	"testing"
)

func TestPackets_CrossPagePacket(t *testing.T) {
	data := crossPagePacketFixture()

	packets, remaining, err := newPackets(data, 512)
	if err != nil {
		t.Fatalf("newPackets: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining length = %d, want 0", len(remaining))
	}

	pkt, ok := packets.Next()
	if !ok {
		t.Fatalf("expected one packet")
	}
	want := append(append([]byte{}, sequence3x100()...))
	if !bytes.Equal(pkt, want) {
		t.Errorf("packet mismatch: got %d bytes, want %d bytes", len(pkt), len(want))
	}

	if _, ok := packets.Next(); ok {
		t.Errorf("expected no further packets")
	}
}

func TestPackets_BadSequence(t *testing.T) {
	payload := sequence3x100()
	pageA := encodePage(1, 10, flagBOS, []byte{255}, payload[:255])
	pageB := encodePage(1, 9, 0, []byte{45}, payload[255:]) // should be 11
	data := append(pageA, pageB...)

	_, _, err := newPackets(data, 512)
	var iserr *InvalidStreamError
	if !errors.As(err, &iserr) {
		t.Fatalf("err = %v, want *InvalidStreamError", err)
	}
	var seqErr *SequenceNumberMismatchError
	if !errors.As(err, &seqErr) {
		t.Fatalf("err = %v, want wrapped *SequenceNumberMismatchError", err)
	}
	if seqErr.Expected != 11 || seqErr.Got != 9 {
		t.Errorf("mismatch = %+v, want {Expected:11 Got:9}", seqErr)
	}
}

func TestPackets_SerialChange(t *testing.T) {
	payload := sequence3x100()
	pageA := encodePage(1, 10, flagBOS, []byte{255}, payload[:255])
	pageB := encodePage(2, 11, 0, []byte{45}, payload[255:]) // different serial
	data := append(pageA, pageB...)

	_, _, err := newPackets(data, 512)
	var userr *UnsupportedStreamError
	if !errors.As(err, &userr) {
		t.Fatalf("err = %v, want *UnsupportedStreamError", err)
	}
}

func TestPackets_BufferTooSmall(t *testing.T) {
	data := crossPagePacketFixture()

	_, _, err := newPackets(data, 64)
	var berr *BufferTooSmallError
	if !errors.As(err, &berr) {
		t.Fatalf("err = %v, want *BufferTooSmallError", err)
	}
	if berr.Got != 64 || berr.Needed != 300 {
		t.Errorf("err = %+v, want {Got:64 Needed:300}", berr)
	}
}
