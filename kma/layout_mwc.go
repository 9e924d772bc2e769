package kma

import "github.com/sounder/dgram/internal/wire"

// MwcCommon is MWC's fixed-size common struct.
type MwcCommon struct {
	NumBytesCmnPart uint16
	SwathsPerPing   uint8
	SwathAlongPos   uint8
	TxTransducerInd uint8
	RxTransducerInd uint8
	NumRxTransd     uint8
	AlgorithmType   uint8
}

const mwcCommonSize = 8

func decodeMwcCommon(c *cursor) (MwcCommon, error) {
	b, err := c.take(mwcCommonSize, "MWC common")
	if err != nil {
		return MwcCommon{}, err
	}
	v := wire.View{Buf: b}
	m := MwcCommon{}
	m.NumBytesCmnPart, _ = v.U16(0)
	m.SwathsPerPing, _ = v.U8(2)
	m.SwathAlongPos, _ = v.U8(3)
	m.TxTransducerInd, _ = v.U8(4)
	m.RxTransducerInd, _ = v.U8(5)
	m.NumRxTransd, _ = v.U8(6)
	m.AlgorithmType, _ = v.U8(7)
	return m, nil
}

// MwcTxInfo carries counts that size the TX-sector-info array.
type MwcTxInfo struct {
	NumBytesTxInfo   uint16
	NumTxSectors     uint16
	NumBytesPerTxSec uint16
	HeaveM           float32
}

const mwcTxInfoSize = 2 + 2 + 2 + 4 // 10

func decodeMwcTxInfo(c *cursor) (MwcTxInfo, error) {
	b, err := c.take(mwcTxInfoSize, "MWC TX info")
	if err != nil {
		return MwcTxInfo{}, err
	}
	v := wire.View{Buf: b}
	t := MwcTxInfo{}
	t.NumBytesTxInfo, _ = v.U16(0)
	t.NumTxSectors, _ = v.U16(2)
	t.NumBytesPerTxSec, _ = v.U16(4)
	t.HeaveM, _ = v.F32(6)
	return t, nil
}

// MwcTxSectorInfo is one element of the TX-sector-info array ahead of the
// beam-data region.
type MwcTxSectorInfo struct {
	TiltAngleReTxDeg float32
	CenterFreqHz     float32
	TxBeamWidthDeg   float32
	TxSectorNum      int16
}

const mwcTxSectorInfoSize = 4 + 4 + 4 + 2 // 14

func decodeMwcTxSectorInfoArray(c *cursor, count, stride int) ([]MwcTxSectorInfo, error) {
	if count == 0 {
		return nil, nil
	}
	out := make([]MwcTxSectorInfo, 0, count)
	for i := 0; i < count; i++ {
		elem, err := c.take(stride, "MWC TX sector info element")
		if err != nil {
			return nil, err
		}
		v := wire.View{Buf: elem}
		t := MwcTxSectorInfo{}
		t.TiltAngleReTxDeg, _ = v.F32(0)
		t.CenterFreqHz, _ = v.F32(4)
		t.TxBeamWidthDeg, _ = v.F32(8)
		n, _ := v.I16(12)
		t.TxSectorNum = n
		out = append(out, t)
	}
	return out, nil
}

// MwcRxInfo is the fixed-size struct ahead of the opaque beam-data region,
// supplying numBeams and the per-beam header size the walker needs.
type MwcRxInfo struct {
	NumBytesRxInfo    uint16
	NumBeams          uint16
	NumBytesPerBeamEntry uint8
	PhaseFlag         uint8
	TVGFunctionApplied uint8
	TVGOffsetDB       int8
	SampleFreqHz      float32
	SoundVelocityMS   float32
}

const mwcRxInfoSize = 2 + 2 + 1 + 1 + 1 + 1 + 4 + 4 // 16

func decodeMwcRxInfo(c *cursor) (MwcRxInfo, error) {
	b, err := c.take(mwcRxInfoSize, "MWC RX info")
	if err != nil {
		return MwcRxInfo{}, err
	}
	v := wire.View{Buf: b}
	r := MwcRxInfo{}
	r.NumBytesRxInfo, _ = v.U16(0)
	r.NumBeams, _ = v.U16(2)
	r.NumBytesPerBeamEntry, _ = v.U8(4)
	r.PhaseFlag, _ = v.U8(5)
	r.TVGFunctionApplied, _ = v.U8(6)
	tvg, _ := v.I8(7)
	r.TVGOffsetDB = tvg
	r.SampleFreqHz, _ = v.F32(8)
	r.SoundVelocityMS, _ = v.F32(12)
	return r, nil
}

// MWC is the parsed view of a water-column datagram: partition, common,
// TX-info, TX-sector-info array, RX-info, then an opaque beam-data region
// walked separately by WalkBeam.
type MWC struct {
	Partition Partition
	Common    MwcCommon
	TxInfo    MwcTxInfo
	TxSectors []MwcTxSectorInfo
	RxInfo    MwcRxInfo
	BeamData  []byte
}

func decodeMWC(body []byte) (*MWC, error) {
	c := newCursor(body)
	part, err := decodePartition(c)
	if err != nil {
		return nil, err
	}
	if !part.Single() {
		return nil, partitionError(part)
	}
	common, err := decodeMwcCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(common.NumBytesCmnPart), mwcCommonSize, "MWC common"); err != nil {
		return nil, err
	}
	txInfo, err := decodeMwcTxInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(txInfo.NumBytesTxInfo), mwcTxInfoSize, "MWC TX info"); err != nil {
		return nil, err
	}
	txSectors, err := decodeMwcTxSectorInfoArray(c, int(txInfo.NumTxSectors), int(txInfo.NumBytesPerTxSec))
	if err != nil {
		return nil, err
	}
	rx, err := decodeMwcRxInfo(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(rx.NumBytesRxInfo), mwcRxInfoSize, "MWC RX info"); err != nil {
		return nil, err
	}
	return &MWC{
		Partition: part,
		Common:    common,
		TxInfo:    txInfo,
		TxSectors: txSectors,
		RxInfo:    rx,
		BeamData:  c.rest(),
	}, nil
}
