package kma

import (
	"encoding/binary"
	"testing"
)

func buildHeader(typeCode string, nanosec uint32, declaredLen uint32) []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(b[0:], declaredLen)
	copy(b[4:8], typeCode)
	b[8] = 1 // version
	b[9] = 2 // systemID
	binary.LittleEndian.PutUint16(b[10:12], 42)
	binary.LittleEndian.PutUint32(b[12:16], 1700000000)
	binary.LittleEndian.PutUint32(b[16:20], nanosec)
	return b
}

func TestDecodeHeader(t *testing.T) {
	b := buildHeader("#MRZ", 500, 100)
	h, ok := DecodeHeader(b)
	if !ok {
		t.Fatal("DecodeHeader reported not ok for a well-formed header")
	}
	if got := h.TypeString(); got != "#MRZ" {
		t.Errorf("TypeString() = %q, want %q", got, "#MRZ")
	}
	if h.DgmVersion != 1 {
		t.Errorf("DgmVersion = %d, want 1", h.DgmVersion)
	}
	if h.SystemID != 2 {
		t.Errorf("SystemID = %d, want 2", h.SystemID)
	}
	if h.EchoSounderID != 42 {
		t.Errorf("EchoSounderID = %d, want 42", h.EchoSounderID)
	}
	if h.TimeSec != 1700000000 {
		t.Errorf("TimeSec = %d, want 1700000000", h.TimeSec)
	}
	if h.TimeNanosec != 500 {
		t.Errorf("TimeNanosec = %d, want 500", h.TimeNanosec)
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	if _, ok := DecodeHeader(make([]byte, 10)); ok {
		t.Fatal("DecodeHeader reported ok for a 10-byte buffer")
	}
}

func TestValidateHeader(t *testing.T) {
	cases := []struct {
		name   string
		header []byte
		want   bool
	}{
		{"valid", buildHeader("#MRZ", 500, 100), true},
		{"too short declared length", buildHeader("#MRZ", 500, 10), false},
		{"declared length above ceiling", buildHeader("#MRZ", 500, 1<<31), false},
		{"missing magic", buildHeader("XMRZ", 500, 100), false},
		{"nanoseconds over ceiling", buildHeader("#MRZ", 2_000_000_000, 100), false},
	}
	for _, c := range cases {
		h, ok := DecodeHeader(c.header)
		if !ok {
			t.Fatalf("%s: DecodeHeader failed", c.name)
		}
		if got := ValidateHeader(h); got != c.want {
			t.Errorf("%s: ValidateHeader() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestValidateHeaderUnknownTypePasses(t *testing.T) {
	// The validator does not enumerate known type codes.
	h, ok := DecodeHeader(buildHeader("#ZZZ", 0, 100))
	if !ok {
		t.Fatal("DecodeHeader failed")
	}
	if !ValidateHeader(h) {
		t.Error("ValidateHeader rejected an unknown-but-well-formed type")
	}
	if kindForType(h.TypeString()) != KindUnknown {
		t.Error("kindForType should map an unrecognized tag to KindUnknown")
	}
}
