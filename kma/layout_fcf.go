package kma

import "github.com/sounder/dgram/internal/wire"

// FcfCommon is FCF's fixed-size file-common struct. An FCF body is:
// partition, file-common, then a NUL-terminated file name inside a fixed
// region of its own (fcfNameRegionSize bytes), followed by the raw
// calibration-file bytes.
type FcfCommon struct {
	NumBytesCmnPart uint16
	FileStatus      uint16
}

const fcfCommonSize = 4
const fcfNameRegionSize = 64

func decodeFcfCommon(c *cursor) (FcfCommon, error) {
	b, err := c.take(fcfCommonSize, "FCF common")
	if err != nil {
		return FcfCommon{}, err
	}
	v := wire.View{Buf: b}
	fc := FcfCommon{}
	fc.NumBytesCmnPart, _ = v.U16(0)
	fc.FileStatus, _ = v.U16(2)
	return fc, nil
}

// FCF is the parsed view of a "backscatter calibration file" datagram:
// partition, file-common, a fixed-width NUL-terminated file name, then
// the raw calibration-file payload.
type FCF struct {
	Partition    Partition
	Common       FcfCommon
	FileName     string
	CalibrationData []byte
}

func decodeFCF(body []byte) (*FCF, error) {
	c := newCursor(body)
	part, err := decodePartition(c)
	if err != nil {
		return nil, err
	}
	if !part.Single() {
		return nil, partitionError(part)
	}
	common, err := decodeFcfCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(common.NumBytesCmnPart), fcfCommonSize, "FCF common"); err != nil {
		return nil, err
	}
	nameRegion, err := c.take(fcfNameRegionSize, "FCF file name region")
	if err != nil {
		return nil, err
	}
	v := wire.View{Buf: nameRegion}
	name, ok := v.CString(0)
	if !ok {
		name = string(nameRegion)
	}
	return &FCF{
		Partition:       part,
		Common:          common,
		FileName:        name,
		CalibrationData: c.rest(),
	}, nil
}
