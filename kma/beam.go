package kma

import (
	"fmt"

	"github.com/sounder/dgram/internal/wire"
)

// PhaseFlag selects how a water-column beam's phase samples are encoded:
// depending on the flag, a beam carries zero, numSamples 8-bit
// low-resolution phases, or numSamples 16-bit high-resolution phases.
type PhaseFlag uint8

const (
	PhaseNone PhaseFlag = 0
	PhaseLow  PhaseFlag = 1
	PhaseHigh PhaseFlag = 2
)

// BeamView is one beam's header and sample regions inside an MWC
// beam-data record, aliasing the owning buffer. Amplitude and the active
// phase slice are cleared (nil) if the beam's sample count was zero.
type BeamView struct {
	Header     []byte
	Amplitude  []byte
	PhaseLow   []byte
	PhaseHigh  []byte
	NumSamples uint16
}

// beamHeaderFields are the two leading fields every beam header carries,
// regardless of bytesPerHeader (a firmware revision may pad the header
// with trailing fields this reader doesn't know about).
type beamHeaderFields struct {
	BeamPointAngleDeg float32
	NumSamples        uint16
}

func decodeBeamHeaderFields(header []byte) (beamHeaderFields, error) {
	v := wire.View{Buf: header}
	angle, ok := v.F32(0)
	if !ok {
		return beamHeaderFields{}, fmt.Errorf("beam header too short for angle field: %d bytes", len(header))
	}
	n, ok := v.U16(4)
	if !ok {
		return beamHeaderFields{}, fmt.Errorf("beam header too short for sample-count field: %d bytes", len(header))
	}
	return beamHeaderFields{BeamPointAngleDeg: angle, NumSamples: n}, nil
}

// WalkBeam decodes one beam record at the front of ptr and returns its
// view together with ptr advanced past it. bytesPerHeader is
// the caller-supplied, datagram-declared header stride (from
// MwcRxInfo.NumBytesPerBeamEntry); zero is a hard error. phase selects
// which phase samples, if any, follow the amplitude array.
//
// Callers iterate numBeams times; WalkBeam does not know the enclosing
// bound and relies on caller discipline.
func WalkBeam(ptr []byte, phase PhaseFlag, bytesPerHeader int) (BeamView, []byte, error) {
	if bytesPerHeader == 0 {
		return BeamView{}, nil, fmt.Errorf("bytesPerHeader must be nonzero")
	}
	if len(ptr) < bytesPerHeader {
		return BeamView{}, nil, fmt.Errorf("beam header overruns buffer: need %d, have %d", bytesPerHeader, len(ptr))
	}
	header := ptr[:bytesPerHeader]
	fields, err := decodeBeamHeaderFields(header)
	if err != nil {
		return BeamView{}, nil, err
	}
	rest := ptr[bytesPerHeader:]
	view := BeamView{Header: header, NumSamples: fields.NumSamples}

	n := int(fields.NumSamples)
	if n == 0 {
		return view, rest, nil
	}

	if len(rest) < n {
		return BeamView{}, nil, fmt.Errorf("beam amplitude array overruns buffer: need %d, have %d", n, len(rest))
	}
	view.Amplitude = rest[:n]
	rest = rest[n:]

	switch phase {
	case PhaseNone:
	case PhaseLow:
		if len(rest) < n {
			return BeamView{}, nil, fmt.Errorf("beam low-res phase array overruns buffer: need %d, have %d", n, len(rest))
		}
		view.PhaseLow = rest[:n]
		rest = rest[n:]
	case PhaseHigh:
		need := n * 2
		if len(rest) < need {
			return BeamView{}, nil, fmt.Errorf("beam high-res phase array overruns buffer: need %d, have %d", need, len(rest))
		}
		view.PhaseHigh = rest[:need]
		rest = rest[need:]
	default:
		return BeamView{}, nil, fmt.Errorf("unknown phase flag %d", phase)
	}

	return view, rest, nil
}
