package kma

import (
	"encoding/binary"
	"math"
	"testing"
)

func buildBeam(angle float32, numSamples uint16, amp, phaseLow []byte, phaseHigh []uint16) []byte {
	header := make([]byte, 6)
	binary.LittleEndian.PutUint32(header[0:], math.Float32bits(angle))
	binary.LittleEndian.PutUint16(header[4:], numSamples)

	buf := append([]byte{}, header...)
	buf = append(buf, amp...)
	buf = append(buf, phaseLow...)
	for _, p := range phaseHigh {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, p)
		buf = append(buf, b...)
	}
	return buf
}

func TestWalkBeamNoPhase(t *testing.T) {
	amp := []byte{1, 2, 3}
	frame := buildBeam(1.5, 3, amp, nil, nil)
	view, rest, err := WalkBeam(frame, PhaseNone, 6)
	if err != nil {
		t.Fatalf("WalkBeam failed: %v", err)
	}
	if view.NumSamples != 3 {
		t.Errorf("NumSamples = %d, want 3", view.NumSamples)
	}
	if len(view.Amplitude) != 3 {
		t.Errorf("Amplitude length = %d, want 3", len(view.Amplitude))
	}
	if view.PhaseLow != nil || view.PhaseHigh != nil {
		t.Error("phase slices should be nil when PhaseNone is selected")
	}
	if len(rest) != 0 {
		t.Errorf("rest length = %d, want 0", len(rest))
	}
}

func TestWalkBeamZeroSamplesClearsAmplitude(t *testing.T) {
	frame := buildBeam(0, 0, nil, nil, nil)
	view, rest, err := WalkBeam(frame, PhaseHigh, 6)
	if err != nil {
		t.Fatalf("WalkBeam failed: %v", err)
	}
	if view.Amplitude != nil {
		t.Error("Amplitude should be nil when NumSamples == 0")
	}
	if view.PhaseHigh != nil {
		t.Error("PhaseHigh should be nil when NumSamples == 0")
	}
	if len(rest) != 0 {
		t.Errorf("rest length = %d, want 0 (header still consumed)", len(rest))
	}
}

func TestWalkBeamHighResPhase(t *testing.T) {
	amp := []byte{10, 20}
	phaseHigh := []uint16{100, 200}
	frame := buildBeam(0, 2, amp, nil, phaseHigh)
	trailer := []byte{0xAA, 0xBB}
	frame = append(frame, trailer...)

	view, rest, err := WalkBeam(frame, PhaseHigh, 6)
	if err != nil {
		t.Fatalf("WalkBeam failed: %v", err)
	}
	if len(view.PhaseHigh) != 4 {
		t.Errorf("PhaseHigh length = %d, want 4", len(view.PhaseHigh))
	}
	if len(rest) != 2 {
		t.Fatalf("rest length = %d, want 2 (next beam's bytes)", len(rest))
	}
	if rest[0] != 0xAA || rest[1] != 0xBB {
		t.Error("rest does not point at the next beam's bytes")
	}
}

func TestWalkBeamZeroHeaderIsError(t *testing.T) {
	if _, _, err := WalkBeam([]byte{1, 2, 3}, PhaseNone, 0); err == nil {
		t.Fatal("WalkBeam should fail when bytesPerHeader == 0")
	}
}
