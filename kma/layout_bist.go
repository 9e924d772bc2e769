package kma

import "github.com/sounder/dgram/internal/wire"

// BistCommon is the fixed-size header ahead of a BIST (built-in self test)
// text report: a common BIST struct followed by a variable-length BIST
// text blob.
type BistCommon struct {
	NumBytesCmnPart uint16
	BistType        uint16
	BistStatus      uint16
}

const bistCommonSize = 6

// Bist is the parsed view shared by IBE, IBR and IBS.
type Bist struct {
	Common BistCommon
	Text   []byte
}

func decodeBistCommon(c *cursor) (BistCommon, error) {
	b, err := c.take(bistCommonSize, "bist common")
	if err != nil {
		return BistCommon{}, err
	}
	v := wire.View{Buf: b}
	bc := BistCommon{}
	bc.NumBytesCmnPart, _ = v.U16(0)
	bc.BistType, _ = v.U16(2)
	bc.BistStatus, _ = v.U16(4)
	return bc, nil
}

func decodeBist(body []byte) (*Bist, error) {
	c := newCursor(body)
	bc, err := decodeBistCommon(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(bc.NumBytesCmnPart), bistCommonSize, "bist common"); err != nil {
		return nil, err
	}
	text := c.rest()
	if text == nil {
		text = []byte{}
	}
	return &Bist{Common: bc, Text: text}, nil
}
