package ogg

import (
	"errors"
	"testing"
)

func TestParsePage_Empty(t *testing.T) {
	data := encodePage(1, 0, flagBOS, []byte{0}, nil)

	p, remaining, err := parsePage(data)
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	if p.Serial != 1 {
		t.Errorf("Serial = %d, want 1", p.Serial)
	}
	if p.Sequence != 0 {
		t.Errorf("Sequence = %d, want 0", p.Sequence)
	}
	if !p.isBOS() {
		t.Errorf("expected BOS flag set")
	}
	if len(p.Body) != 0 {
		t.Errorf("Body length = %d, want 0", len(p.Body))
	}
	if len(remaining) != 0 {
		t.Errorf("remaining length = %d, want 0", len(remaining))
	}
}

func TestParsePage_SingleSegment(t *testing.T) {
	body := make([]byte, 0x13)
	for i := range body {
		body[i] = byte(i + 1)
	}
	data := encodePage(1, 0, flagBOS, []byte{0x13}, body)

	p, _, err := parsePage(data)
	if err != nil {
		t.Fatalf("parsePage: %v", err)
	}
	if len(p.Body) != 0x13 {
		t.Errorf("Body length = %#x, want 0x13", len(p.Body))
	}

	it := newSegmentTableIterator(p.Laces)
	seg, ok := it.next()
	if !ok || !seg.Complete || seg.Size != 0x13 {
		t.Fatalf("segment = %+v, ok=%v, want one complete 0x13-byte segment", seg, ok)
	}
	if _, ok := it.next(); ok {
		t.Fatalf("expected only one segment")
	}
}

func TestParsePage_NotOggStream(t *testing.T) {
	_, _, err := parsePage([]byte("NotAnOggPage..........."))
	if err != ErrNotOggStream {
		t.Fatalf("err = %v, want ErrNotOggStream", err)
	}
}

func TestParsePage_UnsupportedVersion(t *testing.T) {
	data := encodePage(1, 0, flagBOS, []byte{0}, nil)
	data[4] = 1 // version byte

	_, _, err := parsePage(data)
	var uerr *UnsupportedVersionError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want *UnsupportedVersionError", err)
	}
}

func TestParsePage_ShortInput(t *testing.T) {
	_, _, err := parsePage([]byte("OggS"))
	var eerr *EndOfStreamError
	if !errors.As(err, &eerr) {
		t.Fatalf("err = %v, want *EndOfStreamError", err)
	}
}
