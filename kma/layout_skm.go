package kma

import "github.com/sounder/dgram/internal/wire"

// SkmInfo precedes SKM's array of fixed-size attitude/motion samples.
type SkmInfo struct {
	NumBytesInfoPart  uint16
	SensorSystem      uint8
	SensorStatus      uint8
	SensorInputFormat uint16
	NumSamples        uint16
	NumBytesPerSample uint16
}

const skmInfoSize = 2 + 1 + 1 + 2 + 2 + 2 // 10

func decodeSkmInfo(c *cursor) (SkmInfo, error) {
	b, err := c.take(skmInfoSize, "SKM info")
	if err != nil {
		return SkmInfo{}, err
	}
	v := wire.View{Buf: b}
	s := SkmInfo{}
	s.NumBytesInfoPart, _ = v.U16(0)
	s.SensorSystem, _ = v.U8(2)
	s.SensorStatus, _ = v.U8(3)
	s.SensorInputFormat, _ = v.U16(4)
	s.NumSamples, _ = v.U16(6)
	s.NumBytesPerSample, _ = v.U16(8)
	return s, nil
}

// SkmSample is one fixed-size attitude/motion sample.
type SkmSample struct {
	TimeSec     uint32
	TimeNanosec uint32
	RollDeg     float32
	PitchDeg    float32
	HeadingDeg  float32
	HeaveM      float32
}

func decodeSkmSamples(c *cursor, count, stride int) ([]SkmSample, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]SkmSample, 0, count)
	for i := 0; i < count; i++ {
		elem, err := c.take(stride, "SKM sample")
		if err != nil {
			return nil, err
		}
		v := wire.View{Buf: elem}
		s := SkmSample{}
		s.TimeSec, _ = v.U32(0)
		s.TimeNanosec, _ = v.U32(4)
		s.RollDeg, _ = v.F32(8)
		s.PitchDeg, _ = v.F32(12)
		s.HeadingDeg, _ = v.F32(16)
		s.HeaveM, _ = v.F32(20)
		out = append(out, s)
	}
	return out, nil
}

// SKM is the parsed view of an attitude/motion datagram: info, then an
// array of fixed-size samples; if the sample count is zero, Samples is
// left nil.
type SKM struct {
	Info    SkmInfo
	Samples []SkmSample
}

func decodeSKM(body []byte) (*SKM, error) {
	c := newCursor(body)
	info, err := decodeSkmInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(info.NumBytesInfoPart), skmInfoSize, "SKM info"); err != nil {
		return nil, err
	}
	samples, err := decodeSkmSamples(c, int(info.NumSamples), int(info.NumBytesPerSample))
	if err != nil {
		return nil, err
	}
	return &SKM{Info: info, Samples: samples}, nil
}
