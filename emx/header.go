// Package emx implements the reader's per-type layout routines and typed
// view model for the legacy ("EMX") Kongsberg-style sounder datagram
// format.
package emx

import (
	"fmt"

	"github.com/sounder/dgram/internal/wire"
)

const (
	stx = 0x02
	etx = 0x03
)

// HeaderRestSize is the number of header bytes following STX and
// preceding the payload: STX(1B) then a 19-byte header rest, then the payload.
const HeaderRestSize = 19

// Header is the fixed-size header of an EMX datagram. Unlike KMA's
// 4-ASCII-byte type tag, EMX type codes are single bytes.
type Header struct {
	NumBytesDgm   uint32
	DgmType       byte
	DgmVersion    uint8
	SystemID      uint8
	EchoSounderID uint16
	TimeSec       uint32
	TimeNanosec   uint32
}

// DecodeHeader parses the leading length field, STX, and the 19-byte
// header-rest region. buf must hold at least 4 (length) + 1 (STX) +
// HeaderRestSize bytes.
func DecodeHeader(buf []byte) (Header, bool) {
	v := wire.View{Buf: buf}
	var h Header
	var ok bool
	if h.NumBytesDgm, ok = v.U32(0); !ok {
		return Header{}, false
	}
	var stxByte byte
	if stxByte, ok = v.U8(4); !ok {
		return Header{}, false
	}
	if stxByte != stx {
		return Header{}, false
	}
	rest, ok := v.Slice(5, HeaderRestSize)
	if !ok {
		return Header{}, false
	}
	if h.DgmType, ok = rest.U8(0); !ok {
		return Header{}, false
	}
	if h.DgmVersion, ok = rest.U8(1); !ok {
		return Header{}, false
	}
	if h.SystemID, ok = rest.U8(2); !ok {
		return Header{}, false
	}
	if h.EchoSounderID, ok = rest.U16(3); !ok {
		return Header{}, false
	}
	if h.TimeSec, ok = rest.U32(5); !ok {
		return Header{}, false
	}
	if h.TimeNanosec, ok = rest.U32(9); !ok {
		return Header{}, false
	}
	return h, true
}

// ValidateHeader checks that the first byte after the outer length is
// STX and that the outer length is bounded by a generous sanity ceiling.
// The trailing ETX and checksum are validated separately (VerifyFooter)
// once the whole frame has been read, since they sit at the far end of
// the payload.
func ValidateHeader(buf []byte) bool {
	const maxDeclaredLength = 1 << 30
	v := wire.View{Buf: buf}
	length, ok := v.U32(0)
	if !ok || length > maxDeclaredLength {
		return false
	}
	b, ok := v.U8(4)
	if !ok || b != stx {
		return false
	}
	return true
}

// VerifyFooter checks the trailing ETX and checksum of a fully-read EMX
// frame. frame is the whole datagram from STX (inclusive) through the
// trailing checksum byte (inclusive); checksumEnabled selects whether
// the checksum is actually compared; checksum verification can be
// disabled by a per-handle toggle.
//
// The checksum is an 8-bit sum, modulo 256, of every byte from STX
// (exclusive) through the last payload byte (inclusive) -- i.e. header
// rest plus payload, but not STX itself and not the ETX/checksum bytes
// that follow.
func VerifyFooter(frame []byte, checksumEnabled bool) error {
	if len(frame) < 3 {
		return fmt.Errorf("emx: frame too short for STX/ETX/checksum: %d bytes", len(frame))
	}
	if frame[0] != stx {
		return fmt.Errorf("emx: missing STX at frame start: got 0x%02x", frame[0])
	}
	etxByte := frame[len(frame)-2]
	sum := frame[len(frame)-1]
	if etxByte != etx {
		return fmt.Errorf("emx: missing ETX terminator: got 0x%02x", etxByte)
	}
	if !checksumEnabled {
		return nil
	}
	var computed byte
	for _, b := range frame[1 : len(frame)-2] {
		computed += b
	}
	if computed != sum {
		return fmt.Errorf("emx: checksum mismatch: computed 0x%02x, frame has 0x%02x", computed, sum)
	}
	return nil
}
