package kma

import "github.com/sounder/dgram/internal/wire"

// SvpInfo precedes SVP's array of fixed-size sound-velocity-profile
// samples.
type SvpInfo struct {
	NumBytesInfoPart uint16
	NumSamples       uint16
	SensorFormat     [4]byte
	LatitudeDeg      float64
	LongitudeDeg     float64
}

const svpInfoSize = 2 + 2 + 4 + 8 + 8 // 24

func decodeSvpInfo(c *cursor) (SvpInfo, error) {
	b, err := c.take(svpInfoSize, "SVP info")
	if err != nil {
		return SvpInfo{}, err
	}
	v := wire.View{Buf: b}
	s := SvpInfo{}
	s.NumBytesInfoPart, _ = v.U16(0)
	s.NumSamples, _ = v.U16(2)
	copy(s.SensorFormat[:], b[4:8])
	s.LatitudeDeg, _ = v.F64(8)
	s.LongitudeDeg, _ = v.F64(16)
	return s, nil
}

// SvpSample is one fixed-size sound-velocity-profile sample.
type SvpSample struct {
	DepthM      float32
	SoundVelMS  float32
	Temperature float32
	Salinity    float32
}

const svpSampleSize = 16

func decodeSvpSamples(c *cursor, count int) ([]SvpSample, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]SvpSample, 0, count)
	for i := 0; i < count; i++ {
		b, err := c.take(svpSampleSize, "SVP sample")
		if err != nil {
			return nil, err
		}
		v := wire.View{Buf: b}
		s := SvpSample{}
		s.DepthM, _ = v.F32(0)
		s.SoundVelMS, _ = v.F32(4)
		s.Temperature, _ = v.F32(8)
		s.Salinity, _ = v.F32(12)
		out = append(out, s)
	}
	return out, nil
}

// SVP is the parsed view of a sound-velocity-profile datagram: info, then
// an array of fixed-size samples.
type SVP struct {
	Info    SvpInfo
	Samples []SvpSample
}

func decodeSVP(body []byte) (*SVP, error) {
	c := newCursor(body)
	info, err := decodeSvpInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(info.NumBytesInfoPart), svpInfoSize, "SVP info"); err != nil {
		return nil, err
	}
	samples, err := decodeSvpSamples(c, int(info.NumSamples))
	if err != nil {
		return nil, err
	}
	clearSvpSamplesIfZero(&info, &samples)
	return &SVP{Info: info, Samples: samples}, nil
}

// SvtInfo precedes SVT's array of fixed-size sound-velocity-at-transducer
// samples. It shares SvpInfo's leading size, sample-count and sensor-format
// fields, then carries a filter time where SvpInfo carries a position.
type SvtInfo struct {
	NumBytesInfoPart uint16
	NumSamples       uint16
	SensorFormat     [4]byte
	FilterTime       float32
}

const svtInfoSize = 2 + 2 + 4 + 4 // 12

func decodeSvtInfo(c *cursor) (SvtInfo, error) {
	b, err := c.take(svtInfoSize, "SVT info")
	if err != nil {
		return SvtInfo{}, err
	}
	v := wire.View{Buf: b}
	s := SvtInfo{}
	s.NumBytesInfoPart, _ = v.U16(0)
	s.NumSamples, _ = v.U16(2)
	copy(s.SensorFormat[:], b[4:8])
	s.FilterTime, _ = v.F32(8)
	return s, nil
}

// SvtSample is one fixed-size sound-velocity-at-transducer sample.
type SvtSample struct {
	TimeSec     uint32
	SoundVelMS  float32
	Temperature float32
	PressureDb  float32
}

const svtSampleSize = 16

func decodeSvtSamples(c *cursor, count int) ([]SvtSample, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]SvtSample, 0, count)
	for i := 0; i < count; i++ {
		b, err := c.take(svtSampleSize, "SVT sample")
		if err != nil {
			return nil, err
		}
		v := wire.View{Buf: b}
		s := SvtSample{}
		s.TimeSec, _ = v.U32(0)
		s.SoundVelMS, _ = v.F32(4)
		s.Temperature, _ = v.F32(8)
		s.PressureDb, _ = v.F32(12)
		out = append(out, s)
	}
	return out, nil
}

// SVT is the parsed view of a sound-velocity-at-transducer datagram.
type SVT struct {
	Info    SvtInfo
	Samples []SvtSample
}

func decodeSVT(body []byte) (*SVT, error) {
	c := newCursor(body)
	info, err := decodeSvtInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(info.NumBytesInfoPart), svtInfoSize, "SVT info"); err != nil {
		return nil, err
	}
	samples, err := decodeSvtSamples(c, int(info.NumSamples))
	if err != nil {
		return nil, err
	}
	clearSvtSamplesIfZero(&info, &samples)
	return &SVT{Info: info, Samples: samples}, nil
}

// clearSvpSamplesIfZero nils the samples slice when NumSamples reads
// zero. decodeSVT's clearSvtSamplesIfZero was written by copying this
// function's body and retyping it, rather than factoring out a shared
// helper -- left as-is (not fixed) since SvpInfo.NumSamples and
// SvtInfo.NumSamples carry the same meaning, so the duplication is
// harmless, just inelegant.
func clearSvpSamplesIfZero(info *SvpInfo, samples *[]SvpSample) {
	if info.NumSamples == 0 {
		*samples = nil
	}
}

func clearSvtSamplesIfZero(info *SvtInfo, samples *[]SvtSample) {
	if info.NumSamples == 0 {
		*samples = nil
	}
}
