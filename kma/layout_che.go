package kma

import "github.com/sounder/dgram/internal/wire"

// CheCommon is CHE's fixed-size m-common struct.
type CheCommon struct {
	NumBytesCmnPart uint16
	SensorSystem    uint16
}

const cheCommonSize = 4

func decodeCheCommon(c *cursor) (CheCommon, error) {
	b, err := c.take(cheCommonSize, "CHE common")
	if err != nil {
		return CheCommon{}, err
	}
	v := wire.View{Buf: b}
	cc := CheCommon{}
	cc.NumBytesCmnPart, _ = v.U16(0)
	cc.SensorSystem, _ = v.U16(2)
	return cc, nil
}

// CheData is CHE's fixed-size heave struct.
type CheData struct {
	HeaveM float32
}

const cheDataSize = 4

func decodeCheData(c *cursor) (CheData, error) {
	b, err := c.take(cheDataSize, "CHE heave")
	if err != nil {
		return CheData{}, err
	}
	v := wire.View{Buf: b}
	d := CheData{}
	d.HeaveM, _ = v.F32(0)
	return d, nil
}

// CHE is the parsed view of a compatibility-heave datagram: m-common then
// a fixed-size heave struct.
type CHE struct {
	Common CheCommon
	Data   CheData
}

func decodeCHE(body []byte) (*CHE, error) {
	c := newCursor(body)
	common, err := decodeCheCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(common.NumBytesCmnPart), cheCommonSize, "CHE common"); err != nil {
		return nil, err
	}
	data, err := decodeCheData(c)
	if err != nil {
		return nil, err
	}
	return &CHE{Common: common, Data: data}, nil
}
