package kma

import "github.com/sounder/dgram/internal/wire"

// MrzCommon is MRZ's fixed-size common struct, ahead of ping-info.
type MrzCommon struct {
	NumBytesCmnPart uint16
	PingCnt         uint16
	RxFansPerPing   uint8
	RxFanIndex      uint8
	SwathsPerPing   uint8
	SwathAlongPos   uint8
	TxTransducerInd uint8
	RxTransducerInd uint8
	NumRxTransd     uint8
	AlgorithmType   uint8
}

const mrzCommonSize = 12

func decodeMrzCommon(c *cursor) (MrzCommon, error) {
	b, err := c.take(mrzCommonSize, "MRZ common")
	if err != nil {
		return MrzCommon{}, err
	}
	v := wire.View{Buf: b}
	m := MrzCommon{}
	m.NumBytesCmnPart, _ = v.U16(0)
	m.PingCnt, _ = v.U16(2)
	m.RxFansPerPing, _ = v.U8(4)
	m.RxFanIndex, _ = v.U8(5)
	m.SwathsPerPing, _ = v.U8(6)
	m.SwathAlongPos, _ = v.U8(7)
	m.TxTransducerInd, _ = v.U8(8)
	m.RxTransducerInd, _ = v.U8(9)
	m.NumRxTransd, _ = v.U8(10)
	m.AlgorithmType, _ = v.U8(11)
	return m, nil
}

// PingInfo carries the per-ping geometry and counts that size the arrays
// following it: NumTxSectors sizes the TX-sector array, NumExtraDetections
// sizes the optional extra-detection-class array, and the sounding array
// holds RxInfo.NumSoundingsMaxMain + NumExtraDetections elements.
// NumOfSounding is carried through but not used for sizing.
type PingInfo struct {
	NumBytesInfoData    uint16
	NumTxSectors        uint16
	NumBytesPerTxSector uint16
	NumOfSounding       uint16
	NumBytesPerSounding uint16
	NumExtraDetections  uint16
	SoundSpeedAtTxMS    float32
	LatitudeDeg         float64
	LongitudeDeg        float64
}

const pingInfoSize = 2 + 2 + 2 + 2 + 2 + 2 + 4 + 8 + 8 // 32

func decodePingInfo(c *cursor) (PingInfo, error) {
	b, err := c.take(pingInfoSize, "ping info")
	if err != nil {
		return PingInfo{}, err
	}
	v := wire.View{Buf: b}
	p := PingInfo{}
	p.NumBytesInfoData, _ = v.U16(0)
	p.NumTxSectors, _ = v.U16(2)
	p.NumBytesPerTxSector, _ = v.U16(4)
	p.NumOfSounding, _ = v.U16(6)
	p.NumBytesPerSounding, _ = v.U16(8)
	p.NumExtraDetections, _ = v.U16(10)
	p.SoundSpeedAtTxMS, _ = v.F32(12)
	p.LatitudeDeg, _ = v.F64(16)
	p.LongitudeDeg, _ = v.F64(24)
	return p, nil
}

// TxSectorV0 and TxSectorV1 are the two shapes a TX-sector record may take,
// selected by the datagram's dgmVersion; v1 adds the center frequency.
type TxSectorV0 struct {
	TiltAngleReTxDeg float32
	TxPulseLengthSec float32
	TxBeamWidthDeg   float32
	TxSectorNum      int16
}

type TxSectorV1 struct {
	TxSectorV0
	CenterFreqHz float32
}

const txSectorV0Size = 4 + 4 + 4 + 2 // 14
const txSectorV1Size = txSectorV0Size + 4

func decodeTxSectorV0(c *cursor) (TxSectorV0, error) {
	b, err := c.take(txSectorV0Size, "TX sector v0")
	if err != nil {
		return TxSectorV0{}, err
	}
	v := wire.View{Buf: b}
	t := TxSectorV0{}
	t.TiltAngleReTxDeg, _ = v.F32(0)
	t.TxPulseLengthSec, _ = v.F32(4)
	t.TxBeamWidthDeg, _ = v.F32(8)
	n, _ := v.I16(12)
	t.TxSectorNum = n
	return t, nil
}

func decodeTxSectorV1(c *cursor) (TxSectorV1, error) {
	b, err := c.take(txSectorV1Size, "TX sector v1")
	if err != nil {
		return TxSectorV1{}, err
	}
	v := wire.View{Buf: b}
	t := TxSectorV1{}
	t.TiltAngleReTxDeg, _ = v.F32(0)
	t.TxPulseLengthSec, _ = v.F32(4)
	t.TxBeamWidthDeg, _ = v.F32(8)
	n, _ := v.I16(12)
	t.TxSectorNum = n
	t.CenterFreqHz, _ = v.F32(14)
	return t, nil
}

// TxSectorArray is a counted array of version-selected TX-sector records,
// read with a stride taken from the datagram itself (PingInfo.NumBytesPerTxSector),
// not a compiled-in constant.
type TxSectorArray struct {
	V0 []TxSectorV0
	V1 []TxSectorV1
}

func decodeTxSectorArray(c *cursor, count int, stride int, dgmVersion uint8) (*TxSectorArray, error) {
	if count == 0 {
		return nil, nil
	}
	arr := &TxSectorArray{}
	for i := 0; i < count; i++ {
		elem, err := c.take(stride, "TX sector element")
		if err != nil {
			return nil, err
		}
		ec := newCursor(elem)
		if dgmVersion == 0 {
			t, err := decodeTxSectorV0(ec)
			if err != nil {
				return nil, err
			}
			arr.V0 = append(arr.V0, t)
		} else {
			t, err := decodeTxSectorV1(ec)
			if err != nil {
				return nil, err
			}
			arr.V1 = append(arr.V1, t)
		}
	}
	return arr, nil
}

// RxInfo is MRZ's fixed-size receiver-fan info struct, following the
// TX-sector array.
type RxInfo struct {
	NumBytesRxInfo      uint16
	NumSoundingsMaxMain uint16
	NumSoundingsValid   uint16
	NumBytesPerSounding uint16
	WCSampleRateHz      float32
	SeabedImageSampRate float32
	BsNormalDB          float32
	BsObliqueDB         float32
}

const rxInfoSize = 2 + 2 + 2 + 2 + 4 + 4 + 4 + 4 // 24

func decodeRxInfo(c *cursor) (RxInfo, error) {
	b, err := c.take(rxInfoSize, "RX info")
	if err != nil {
		return RxInfo{}, err
	}
	v := wire.View{Buf: b}
	r := RxInfo{}
	r.NumBytesRxInfo, _ = v.U16(0)
	r.NumSoundingsMaxMain, _ = v.U16(2)
	r.NumSoundingsValid, _ = v.U16(4)
	r.NumBytesPerSounding, _ = v.U16(6)
	r.WCSampleRateHz, _ = v.F32(8)
	r.SeabedImageSampRate, _ = v.F32(12)
	r.BsNormalDB, _ = v.F32(16)
	r.BsObliqueDB, _ = v.F32(20)
	return r, nil
}

// ExtraDetectionClass is one element of the optional extra-detection-class
// array.
type ExtraDetectionClass struct {
	NumExtraDetInClass uint16
	Alarm              uint8
}

const extraDetectionClassSize = 4

func decodeExtraDetectionClasses(c *cursor, count int) ([]ExtraDetectionClass, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]ExtraDetectionClass, 0, count)
	for i := 0; i < count; i++ {
		b, err := c.take(extraDetectionClassSize, "extra detection class")
		if err != nil {
			return nil, err
		}
		v := wire.View{Buf: b}
		e := ExtraDetectionClass{}
		e.NumExtraDetInClass, _ = v.U16(0)
		e.Alarm, _ = v.U8(2)
		out = append(out, e)
	}
	return out, nil
}

// Sounding is one element of MRZ's per-beam sounding array, the reader's
// primary depth/reflectivity payload.
type Sounding struct {
	SoundingIndex    uint16
	TxSectorNumb     uint8
	DetectionType    uint8
	DetectionMethod  uint8
	RejectionInfo    uint8
	BeamAngleReRxDeg float32
	TwoWayTravelSec  float32
	ZReRxTransducerM float32
	YReRxTransducerM float32
	XReRxTransducerM float32
	ReflectivityDB   float32
}

func decodeSoundings(c *cursor, count int, stride int) ([]Sounding, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]Sounding, 0, count)
	for i := 0; i < count; i++ {
		elem, err := c.take(stride, "sounding element")
		if err != nil {
			return nil, err
		}
		v := wire.View{Buf: elem}
		s := Sounding{}
		s.SoundingIndex, _ = v.U16(0)
		s.TxSectorNumb, _ = v.U8(2)
		s.DetectionType, _ = v.U8(3)
		s.DetectionMethod, _ = v.U8(4)
		s.RejectionInfo, _ = v.U8(5)
		s.BeamAngleReRxDeg, _ = v.F32(6)
		s.TwoWayTravelSec, _ = v.F32(10)
		s.ZReRxTransducerM, _ = v.F32(14)
		s.YReRxTransducerM, _ = v.F32(18)
		s.XReRxTransducerM, _ = v.F32(22)
		s.ReflectivityDB, _ = v.F32(26)
		out = append(out, s)
	}
	return out, nil
}

// MRZ is the parsed view of a multibeam raw range and depth datagram --
// the richest and most heavily used KMA record: partition, common,
// ping-info, TX-sector array, RX-info, optional extra-detection classes,
// optional soundings, trailing seabed-image amplitudes. If any leading
// count is zero, the corresponding pointer is left nil.
type MRZ struct {
	Partition     Partition
	Common        MrzCommon
	PingInfo      PingInfo
	TxSectors     *TxSectorArray
	RxInfo        RxInfo
	ExtraDetClass []ExtraDetectionClass
	Soundings     []Sounding
	SeabedImage   Int16Array
}

func decodeMRZ(body []byte, dgmVersion uint8) (*MRZ, error) {
	c := newCursor(body)
	part, err := decodePartition(c)
	if err != nil {
		return nil, err
	}
	if !part.Single() {
		return nil, partitionError(part)
	}
	common, err := decodeMrzCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(common.NumBytesCmnPart), mrzCommonSize, "MRZ common"); err != nil {
		return nil, err
	}
	ping, err := decodePingInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(ping.NumBytesInfoData), pingInfoSize, "ping info"); err != nil {
		return nil, err
	}
	txSectors, err := decodeTxSectorArray(c, int(ping.NumTxSectors), int(ping.NumBytesPerTxSector), dgmVersion)
	if err != nil {
		return nil, err
	}
	rx, err := decodeRxInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(rx.NumBytesRxInfo), rxInfoSize, "RX info"); err != nil {
		return nil, err
	}
	extra, err := decodeExtraDetectionClasses(c, int(ping.NumExtraDetections))
	if err != nil {
		return nil, err
	}
	soundings, err := decodeSoundings(c, int(rx.NumSoundingsMaxMain)+int(ping.NumExtraDetections), int(rx.NumBytesPerSounding))
	if err != nil {
		return nil, err
	}
	seabed := c.rest()
	return &MRZ{
		Partition:     part,
		Common:        common,
		PingInfo:      ping,
		TxSectors:     txSectors,
		RxInfo:        rx,
		ExtraDetClass: extra,
		Soundings:     soundings,
		SeabedImage:   Int16Array{buf: seabed},
	}, nil
}
