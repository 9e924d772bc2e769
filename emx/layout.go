package emx

import "github.com/sounder/dgram/internal/wire"

// Depth is the EMX 'D' depth datagram: ping number, per-beam depth and
// across-track/along-track offsets.
type Depth struct {
	PingCounter  uint16
	Heading      uint16
	SoundSpeedMS uint16
	TransducerDepthM int16
	NumBeams     uint8
	DepthRes     uint8
	Beams        []DepthBeam
}

// DepthBeam is one fixed-stride element of a Depth datagram's beam array.
type DepthBeam struct {
	DepthM       int16
	AcrossM      int16
	AlongM       int16
	BeamDepressionDeg int16
	BeamAzimuthDeg    uint16
	Range             uint16
	QualityFactor     uint8
	DetectionWindow   uint8
	Reflectivity      int8
	Beam              uint8
}

const depthFixedSize = 2 + 2 + 2 + 2 + 1 + 1 // 10
const depthBeamSize = 2 + 2 + 2 + 2 + 2 + 2 + 1 + 1 + 1 + 1 // 16

func decodeDepth(body []byte) (*Depth, error) {
	c := newCursor(body)
	b, err := c.take(depthFixedSize, "depth fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	d := &Depth{}
	d.PingCounter, _ = v.U16(0)
	d.Heading, _ = v.U16(2)
	d.SoundSpeedMS, _ = v.U16(4)
	d.TransducerDepthM, _ = v.I16(6)
	d.NumBeams, _ = v.U8(8)
	d.DepthRes, _ = v.U8(9)

	n := int(d.NumBeams)
	if n == 0 {
		return d, nil
	}
	d.Beams = make([]DepthBeam, 0, n)
	for i := 0; i < n; i++ {
		elem, err := c.take(depthBeamSize, "depth beam")
		if err != nil {
			return nil, err
		}
		bv := wire.View{Buf: elem}
		beam := DepthBeam{}
		beam.DepthM, _ = bv.I16(0)
		beam.AcrossM, _ = bv.I16(2)
		beam.AlongM, _ = bv.I16(4)
		beam.BeamDepressionDeg, _ = bv.I16(6)
		beam.BeamAzimuthDeg, _ = bv.U16(8)
		beam.Range, _ = bv.U16(10)
		beam.QualityFactor, _ = bv.U8(12)
		beam.DetectionWindow, _ = bv.U8(13)
		refl, _ := bv.I8(14)
		beam.Reflectivity = refl
		beam.Beam, _ = bv.U8(15)
		d.Beams = append(d.Beams, beam)
	}
	return d, nil
}

// RawRange is the EMX 'F' raw range and beam angle datagram. One
// observed EM1002 anomaly is detectSample exceeding numSamples; per the
// source's own comment this is tolerated, not rejected.
type RawRange struct {
	PingCounter  uint16
	NumSamples   uint16
	DetectSample uint16
	Samples      []RawRangeSample
}

type RawRangeSample struct {
	BeamPointAngleDeg int16
	TransmitSectorNum uint8
	TravelTimeSec     float32
}

const rawRangeFixedSize = 2 + 2 + 2 // 6
const rawRangeSampleSize = 2 + 1 + 4 // 7

func decodeRawRange(body []byte) (*RawRange, error) {
	c := newCursor(body)
	b, err := c.take(rawRangeFixedSize, "raw range fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	r := &RawRange{}
	r.PingCounter, _ = v.U16(0)
	r.NumSamples, _ = v.U16(2)
	r.DetectSample, _ = v.U16(4)

	// detectSample > numSamples is tolerated here deliberately: it is not
	// used to size anything below, only carried through as a field.
	n := int(r.NumSamples)
	if n == 0 {
		return r, nil
	}
	r.Samples = make([]RawRangeSample, 0, n)
	for i := 0; i < n; i++ {
		elem, err := c.take(rawRangeSampleSize, "raw range sample")
		if err != nil {
			return nil, err
		}
		sv := wire.View{Buf: elem}
		s := RawRangeSample{}
		s.BeamPointAngleDeg, _ = sv.I16(0)
		s.TransmitSectorNum, _ = sv.U8(2)
		s.TravelTimeSec, _ = sv.F32(3)
		r.Samples = append(r.Samples, s)
	}
	return r, nil
}

// SSBeam is the EMX 'S' sidescan/beam-intensity datagram: a fixed header
// followed by a variable-size-per-element region, the element size
// selected by a discriminator in the info section, the variable
// per-element layout a few datagram kinds (WC, sidescan data) use.
type SSBeam struct {
	PingCounter   uint16
	NumBeams      uint16
	BytesPerBeam  uint8
	Beams         []byte
}

const ssBeamFixedSize = 2 + 2 + 1 // 5

func decodeSSBeam(body []byte) (*SSBeam, error) {
	c := newCursor(body)
	b, err := c.take(ssBeamFixedSize, "ssbeam fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	s := &SSBeam{}
	s.PingCounter, _ = v.U16(0)
	s.NumBeams, _ = v.U16(2)
	s.BytesPerBeam, _ = v.U8(4)

	need := int(s.NumBeams) * int(s.BytesPerBeam)
	beams, err := c.take(need, "ssbeam data")
	if err != nil {
		return nil, err
	}
	s.Beams = beams
	return s, nil
}

// Attitude is the EMX 'A' attitude datagram: a fixed header followed by
// a counted array of fixed-stride samples.
type Attitude struct {
	NumSamples uint16
	Samples    []AttitudeSample
}

type AttitudeSample struct {
	TimeMs     uint16
	RollDeg    int16
	PitchDeg   int16
	HeaveM     int16
	HeadingDeg uint16
}

const attitudeFixedSize = 2
const attitudeSampleSize = 2 + 2 + 2 + 2 + 2 // 10

func decodeAttitude(body []byte) (*Attitude, error) {
	c := newCursor(body)
	b, err := c.take(attitudeFixedSize, "attitude fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	a := &Attitude{}
	a.NumSamples, _ = v.U16(0)

	n := int(a.NumSamples)
	if n == 0 {
		return a, nil
	}
	a.Samples = make([]AttitudeSample, 0, n)
	for i := 0; i < n; i++ {
		elem, err := c.take(attitudeSampleSize, "attitude sample")
		if err != nil {
			return nil, err
		}
		sv := wire.View{Buf: elem}
		s := AttitudeSample{}
		s.TimeMs, _ = sv.U16(0)
		s.RollDeg, _ = sv.I16(2)
		s.PitchDeg, _ = sv.I16(4)
		s.HeaveM, _ = sv.I16(6)
		s.HeadingDeg, _ = sv.U16(8)
		a.Samples = append(a.Samples, s)
	}
	return a, nil
}

// Position is the EMX 'P' position datagram.
type Position struct {
	Latitude1e7  int32
	Longitude1e7 int32
	FixQualityCm uint16
	SpeedCmS     uint16
	CourseCdeg   uint16
	HeadingCdeg  uint16
	PosSystem    uint8
	NumBytesInput uint8
	RawInput     []byte
}

const positionFixedSize = 4 + 4 + 2 + 2 + 2 + 2 + 1 + 1 // 18

func decodePosition(body []byte) (*Position, error) {
	c := newCursor(body)
	b, err := c.take(positionFixedSize, "position fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	p := &Position{}
	p.Latitude1e7, _ = v.I32(0)
	p.Longitude1e7, _ = v.I32(4)
	p.FixQualityCm, _ = v.U16(8)
	p.SpeedCmS, _ = v.U16(10)
	p.CourseCdeg, _ = v.U16(12)
	p.HeadingCdeg, _ = v.U16(14)
	p.PosSystem, _ = v.U8(16)
	p.NumBytesInput, _ = v.U8(17)

	raw, err := c.take(int(p.NumBytesInput), "position raw input")
	if err != nil {
		return nil, err
	}
	p.RawInput = raw
	return p, nil
}

// SVP is the EMX 'U' sound-velocity-profile datagram.
type SVP struct {
	NumEntries uint16
	DepthResCm uint16
	Entries    []SVPEntry
}

type SVPEntry struct {
	DepthM     uint16
	SoundVelCS uint16
}

const svpFixedSize = 2 + 2
const svpEntrySize = 2 + 2

func decodeSVP(body []byte) (*SVP, error) {
	c := newCursor(body)
	b, err := c.take(svpFixedSize, "svp fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	s := &SVP{}
	s.NumEntries, _ = v.U16(0)
	s.DepthResCm, _ = v.U16(2)

	n := int(s.NumEntries)
	if n == 0 {
		return s, nil
	}
	s.Entries = make([]SVPEntry, 0, n)
	for i := 0; i < n; i++ {
		elem, err := c.take(svpEntrySize, "svp entry")
		if err != nil {
			return nil, err
		}
		ev := wire.View{Buf: elem}
		e := SVPEntry{}
		e.DepthM, _ = ev.U16(0)
		e.SoundVelCS, _ = ev.U16(2)
		s.Entries = append(s.Entries, e)
	}
	return s, nil
}

// InstallationStart is the EMX 'I' installation-parameters-at-start
// datagram: a fixed header and a variable-length ASCII parameter blob
// (not NUL-terminated), the same general shape as kma's IIP/IOP.
type InstallationStart struct {
	SurveyLine uint16
	Serial     uint16
	Text       []byte
}

const installationFixedSize = 2 + 2

func decodeInstallationStart(body []byte) (*InstallationStart, error) {
	c := newCursor(body)
	b, err := c.take(installationFixedSize, "installation fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	s := &InstallationStart{}
	s.SurveyLine, _ = v.U16(0)
	s.Serial, _ = v.U16(2)
	s.Text = c.rest()
	return s, nil
}

// RuntimeParam is the EMX 'R' runtime-parameters datagram.
type RuntimeParam struct {
	PingCounter uint16
	OperatorStationStatus uint8
	Mode                  uint8
	Text                  []byte
}

const runtimeFixedSize = 2 + 1 + 1

func decodeRuntimeParam(body []byte) (*RuntimeParam, error) {
	c := newCursor(body)
	b, err := c.take(runtimeFixedSize, "runtime param fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	r := &RuntimeParam{}
	r.PingCounter, _ = v.U16(0)
	r.OperatorStationStatus, _ = v.U8(2)
	r.Mode, _ = v.U8(3)
	r.Text = c.rest()
	return r, nil
}

// Clock is the EMX 'C' clock datagram.
type Clock struct {
	ClockTimeSec uint32
	PpsInUse     uint8
}

const clockFixedSize = 4 + 1

func decodeClock(body []byte) (*Clock, error) {
	c := newCursor(body)
	b, err := c.take(clockFixedSize, "clock fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	cl := &Clock{}
	cl.ClockTimeSec, _ = v.U32(0)
	cl.PpsInUse, _ = v.U8(4)
	return cl, nil
}

// Watercolumn is the EMX 'k' water-column datagram: a fixed header
// followed by an opaque per-beam region. BeamData is every byte after the
// fixed header; unlike SSBeam, it is not sized or checked against
// NumBeams × BytesPerBeam.
type Watercolumn struct {
	PingCounter  uint16
	NumDatagrams uint16
	DatagramNum  uint16
	NumBeams     uint16
	BytesPerBeam uint8
	BeamData     []byte
}

const watercolumnFixedSize = 2 + 2 + 2 + 2 + 1 // 9

func decodeWatercolumn(body []byte) (*Watercolumn, error) {
	c := newCursor(body)
	b, err := c.take(watercolumnFixedSize, "watercolumn fixed")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: b}
	w := &Watercolumn{}
	w.PingCounter, _ = v.U16(0)
	w.NumDatagrams, _ = v.U16(2)
	w.DatagramNum, _ = v.U16(4)
	w.NumBeams, _ = v.U16(6)
	w.BytesPerBeam, _ = v.U8(8)
	w.BeamData = c.rest()
	return w, nil
}
