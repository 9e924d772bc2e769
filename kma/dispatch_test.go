package kma

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/sounder/dgram/dgramtestutil"
)

func init() {
	dgramtestutil.RegisterKMADatagramComparator()
}

func u16(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }

func TestDecodeUnknownTypeIsNotAnError(t *testing.T) {
	h, ok := DecodeHeader(buildHeader("#ZZZ", 0, 100))
	if !ok {
		t.Fatal("DecodeHeader failed")
	}
	var dgm Datagram
	if err := Decode(h, []byte("whatever body bytes"), &dgm); err != nil {
		t.Fatalf("Decode returned an error for an unknown type: %v", err)
	}
	if dgm.Kind != KindUnknown {
		t.Errorf("Kind = %v, want KindUnknown", dgm.Kind)
	}
	if !bytes.Equal(dgm.Raw, []byte("whatever body bytes")) {
		t.Error("Raw should retain the original body for an unknown type")
	}
	if _, ok := dgm.MRZ(); ok {
		t.Error("MRZ() should report false for an unknown-kind datagram")
	}
}

func TestDecodeIIPZeroLengthText(t *testing.T) {
	// CommonPart with NumBytesCmnPart == its own fixed size: no padding, no
	// text blob, reported as an empty slice rather than nil.
	body := make([]byte, 0, 6)
	body = append(body, u16(6)...) // NumBytesCmnPart
	body = append(body, u16(0)...) // Info
	body = append(body, u16(0)...) // Status

	h, _ := DecodeHeader(buildHeader("#IIP", 0, 100))
	var dgm Datagram
	if err := Decode(h, body, &dgm); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	iip, ok := dgm.IIP()
	if !ok {
		t.Fatal("IIP() reported false")
	}
	if iip.Text == nil {
		t.Error("Text should be an empty, non-nil slice")
	}
	if len(iip.Text) != 0 {
		t.Errorf("Text length = %d, want 0", len(iip.Text))
	}
}

func TestDecodeIIPWithText(t *testing.T) {
	text := []byte("runtime=1;foo=bar")
	body := make([]byte, 0, 6+len(text))
	body = append(body, u16(6)...)
	body = append(body, u16(0)...)
	body = append(body, u16(0)...)
	body = append(body, text...)

	h, _ := DecodeHeader(buildHeader("#IOP", 0, 100))
	var dgm Datagram
	if err := Decode(h, body, &dgm); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	iop, ok := dgm.IOP()
	if !ok {
		t.Fatal("IOP() reported false")
	}
	if !bytes.Equal(iop.Text, text) {
		t.Errorf("Text = %q, want %q", iop.Text, text)
	}
}

func TestMRZRejectsMultiPart(t *testing.T) {
	body := make([]byte, 0, partitionSize)
	body = append(body, u16(6)...) // NumBytesCmnPart
	body = append(body, u16(2)...) // NumOfDgms = 2
	body = append(body, u16(1)...) // DgmNum = 1

	h, _ := DecodeHeader(buildHeader("#MRZ", 0, 100))
	var dgm Datagram
	if err := Decode(h, body, &dgm); err == nil {
		t.Fatal("Decode should reject a multi-part MRZ datagram")
	}
}

func TestSkipClassesIdentifyMRZAndMWC(t *testing.T) {
	mrzHeader, _ := DecodeHeader(buildHeader("#MRZ", 0, 100))
	mwcHeader, _ := DecodeHeader(buildHeader("#MWC", 0, 100))
	spoHeader, _ := DecodeHeader(buildHeader("#SPO", 0, 100))

	if !IsSoundings(mrzHeader) {
		t.Error("IsSoundings(MRZ) should be true")
	}
	if IsSoundings(mwcHeader) {
		t.Error("IsSoundings(MWC) should be false")
	}
	if !IsWaterColumn(mwcHeader) {
		t.Error("IsWaterColumn(MWC) should be true")
	}
	if IsWaterColumn(spoHeader) {
		t.Error("IsWaterColumn(SPO) should be false")
	}
}
