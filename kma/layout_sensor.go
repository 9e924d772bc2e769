package kma

import "github.com/sounder/dgram/internal/wire"

// PositionData is the fixed-size position record inside SPO and CPO.
// SPO/SCL/SDE/SHI/CPO all share one shape -- s-common, then a data
// struct, then a variable-length raw sensor data blob -- and SPO and CPO
// carry the same kind of position fix.
type PositionData struct {
	TimeSec             uint32
	TimeNanosec         uint32
	PosFixQualityM      float32
	CorrectedLat        float64
	CorrectedLong       float64
	SpeedOverGroundMS   float32
	CourseOverGroundDeg float32
	EllipsoidHeightM    float32
}

const positionDataSize = 4 + 4 + 4 + 8 + 8 + 4 + 4 + 4 // 40

func decodePositionData(c *cursor) (PositionData, error) {
	b, err := c.take(positionDataSize, "position data")
	if err != nil {
		return PositionData{}, err
	}
	v := wire.View{Buf: b}
	p := PositionData{}
	p.TimeSec, _ = v.U32(0)
	p.TimeNanosec, _ = v.U32(4)
	p.PosFixQualityM, _ = v.F32(8)
	p.CorrectedLat, _ = v.F64(12)
	p.CorrectedLong, _ = v.F64(20)
	p.SpeedOverGroundMS, _ = v.F32(28)
	p.CourseOverGroundDeg, _ = v.F32(32)
	p.EllipsoidHeightM, _ = v.F32(36)
	return p, nil
}

// ClockData is SCL's fixed-size data struct.
type ClockData struct {
	OffsetSec    float32
	ClockDevPPM  float32
}

const clockDataSize = 8

func decodeClockData(c *cursor) (ClockData, error) {
	b, err := c.take(clockDataSize, "clock data")
	if err != nil {
		return ClockData{}, err
	}
	v := wire.View{Buf: b}
	cd := ClockData{}
	cd.OffsetSec, _ = v.F32(0)
	cd.ClockDevPPM, _ = v.F32(4)
	return cd, nil
}

// HeightData is SHI's fixed-size data struct.
type HeightData struct {
	HeightM    float32
	HeightType uint8
}

const heightDataSize = 5

func decodeHeightData(c *cursor) (HeightData, error) {
	b, err := c.take(heightDataSize, "height data")
	if err != nil {
		return HeightData{}, err
	}
	v := wire.View{Buf: b}
	hd := HeightData{}
	hd.HeightM, _ = v.F32(0)
	hd.HeightType, _ = v.U8(4)
	return hd, nil
}

// sensorDataKind distinguishes which fixed struct SensorData.Data decodes
// to, since SPO/CPO, SCL and SHI each carry a different one.
type sensorDataKind int

const (
	sensorPosition sensorDataKind = iota
	sensorClock
	sensorHeight
)

// SensorData is the parsed view shared by SPO, SCL, SHI and CPO: an
// SCommon, then a fixed data struct, then a variable-length raw sensor
// data blob.
type SensorData struct {
	Common        SCommon
	Position      *PositionData
	Clock         *ClockData
	Height        *HeightData
	RawSensorData []byte
}

func decodeSensorData(body []byte, kind sensorDataKind) (*SensorData, error) {
	c := newCursor(body)
	sc, err := decodeSCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(sc.NumBytesCmnPart), sCommonSize, "s-common"); err != nil {
		return nil, err
	}
	sd := &SensorData{Common: sc}
	switch kind {
	case sensorPosition:
		p, err := decodePositionData(c)
		if err != nil {
			return nil, err
		}
		sd.Position = &p
	case sensorClock:
		cdat, err := decodeClockData(c)
		if err != nil {
			return nil, err
		}
		sd.Clock = &cdat
	case sensorHeight:
		hd, err := decodeHeightData(c)
		if err != nil {
			return nil, err
		}
		sd.Height = &hd
	}
	raw := c.rest()
	if raw == nil {
		raw = []byte{}
	}
	sd.RawSensorData = raw
	return sd, nil
}
