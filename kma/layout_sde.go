package kma

import "github.com/sounder/dgram/internal/wire"

// SdeDataV0 is the depth-sensor data struct used by dgmVersion 0 SDE
// datagrams.
type SdeDataV0 struct {
	DepthUsedM float32
	OffsetM    float32
	ScaleFac   float32
}

const sdeDataV0Size = 12

func decodeSdeDataV0(c *cursor) (SdeDataV0, error) {
	b, err := c.take(sdeDataV0Size, "SDE data v0")
	if err != nil {
		return SdeDataV0{}, err
	}
	v := wire.View{Buf: b}
	d := SdeDataV0{}
	d.DepthUsedM, _ = v.F32(0)
	d.OffsetM, _ = v.F32(4)
	d.ScaleFac, _ = v.F32(8)
	return d, nil
}

// SdeDataV1 is the depth-sensor data struct used by dgmVersion >= 1 SDE
// datagrams -- a superset of v0, adding the transducer depth. For
// version-polymorphic sub-records like this one, the header's version
// field selects which shape to decode and only that pointer is populated.
type SdeDataV1 struct {
	DepthUsedM         float32
	OffsetM            float32
	ScaleFac           float32
	TransducerDepthM   float32
}

const sdeDataV1Size = 16

func decodeSdeDataV1(c *cursor) (SdeDataV1, error) {
	b, err := c.take(sdeDataV1Size, "SDE data v1")
	if err != nil {
		return SdeDataV1{}, err
	}
	v := wire.View{Buf: b}
	d := SdeDataV1{}
	d.DepthUsedM, _ = v.F32(0)
	d.OffsetM, _ = v.F32(4)
	d.ScaleFac, _ = v.F32(8)
	d.TransducerDepthM, _ = v.F32(12)
	return d, nil
}

// SDE is the parsed view of an SDE datagram. Exactly one of DataV0/DataV1
// is non-nil, selected by the header's dgmVersion.
type SDE struct {
	Common        SCommon
	DataV0        *SdeDataV0
	DataV1        *SdeDataV1
	RawSensorData []byte
}

func decodeSDE(body []byte, dgmVersion uint8) (*SDE, error) {
	c := newCursor(body)
	sc, err := decodeSCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(sc.NumBytesCmnPart), sCommonSize, "s-common"); err != nil {
		return nil, err
	}
	sde := &SDE{Common: sc}
	if dgmVersion == 0 {
		d, err := decodeSdeDataV0(c)
		if err != nil {
			return nil, err
		}
		sde.DataV0 = &d
	} else {
		d, err := decodeSdeDataV1(c)
		if err != nil {
			return nil, err
		}
		sde.DataV1 = &d
	}
	raw := c.rest()
	if raw == nil {
		raw = []byte{}
	}
	sde.RawSensorData = raw
	return sde, nil
}
