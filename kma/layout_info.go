package kma

import "github.com/sounder/dgram/internal/wire"

// CommonPart is the fixed-size header ahead of the IIP/IOP install/runtime
// text blob: a common data struct followed by a variable-length,
// not-NUL-terminated install/runtime text blob whose length is
// numBytesCmnPart minus sizeof(common).
type CommonPart struct {
	NumBytesCmnPart uint16
	Info            uint16
	Status          uint16
}

const commonPartSize = 6

// InfoPart is the parsed view shared by IIP and IOP: a CommonPart followed
// by a variable-length, not-NUL-terminated text blob. The blob's length is
// derived from the common part's own self-declared size: advance past
// CommonPart by its declared NumBytesCmnPart, and
// whatever remains in the body is the text -- this keeps the reader
// forward-compatible with a firmware that grows CommonPart with new fields
// this reader doesn't know about.
type InfoPart struct {
	Common CommonPart
	Text   []byte
}

func decodeCommonPart(c *cursor) (CommonPart, error) {
	b, err := c.take(commonPartSize, "common part")
	if err != nil {
		return CommonPart{}, err
	}
	v := wire.View{Buf: b}
	cp := CommonPart{}
	cp.NumBytesCmnPart, _ = v.U16(0)
	cp.Info, _ = v.U16(2)
	cp.Status, _ = v.U16(4)
	return cp, nil
}

func decodeInfoPart(body []byte) (*InfoPart, error) {
	c := newCursor(body)
	cp, err := decodeCommonPart(c)
	if err != nil {
		return nil, err
	}
	if err := skipToDeclaredSize(c, int(cp.NumBytesCmnPart), commonPartSize, "common part"); err != nil {
		return nil, err
	}
	// Whatever remains is the text blob -- possibly empty, reported as an
	// empty slice rather than nil.
	text := c.rest()
	if text == nil {
		text = []byte{}
	}
	return &InfoPart{Common: cp, Text: text}, nil
}
