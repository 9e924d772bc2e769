// Package kma implements the reader's per-type layout routines and typed
// view model for the current-format ("KMA") Kongsberg-style sounder
// datagrams.
package kma

import (
	"github.com/sounder/dgram/internal/dbg"
	"github.com/sounder/dgram/internal/wire"
)

// HeaderSize is the fixed size in bytes of a KMA datagram header.
const HeaderSize = 20

// Header is the fixed-size header common to every KMA datagram. Time is
// reported decomposed into seconds + nanoseconds, UTC, Unix epoch, exactly
// as stored on the wire.
type Header struct {
	NumBytesDgm   uint32
	DgmType       uint32 // four ASCII bytes, little-endian; first byte '#'
	DgmVersion    uint8
	SystemID      uint8
	EchoSounderID uint16
	TimeSec       uint32
	TimeNanosec   uint32
}

// TypeString returns the four-ASCII-character type tag, e.g. "#MRZ".
func (h Header) TypeString() string {
	b := [4]byte{
		byte(h.DgmType),
		byte(h.DgmType >> 8),
		byte(h.DgmType >> 16),
		byte(h.DgmType >> 24),
	}
	return string(b[:])
}

// DecodeHeader parses the fixed 20-byte KMA header from buf. buf must be
// at least HeaderSize bytes; the caller (dgram.Handle.Read) is responsible
// for having read exactly that many bytes first.
func DecodeHeader(buf []byte) (Header, bool) {
	v := wire.View{Buf: buf}
	var h Header
	var ok bool
	if h.NumBytesDgm, ok = v.U32(0); !ok {
		return Header{}, false
	}
	if h.DgmType, ok = v.U32(4); !ok {
		return Header{}, false
	}
	var b8 byte
	if b8, ok = v.U8(8); !ok {
		return Header{}, false
	}
	h.DgmVersion = b8
	if b8, ok = v.U8(9); !ok {
		return Header{}, false
	}
	h.SystemID = b8
	if h.EchoSounderID, ok = v.U16(10); !ok {
		return Header{}, false
	}
	if h.TimeSec, ok = v.U32(12); !ok {
		return Header{}, false
	}
	if h.TimeNanosec, ok = v.U32(16); !ok {
		return Header{}, false
	}
	return h, true
}

// ValidateHeader applies the KMA header validation predicates:
//   - declared_length >= 20 + 4 (header plus trailing 4-byte length),
//   - declared_length <= 2^30 (generous sanity upper bound),
//   - the low byte of the type field equals '#' (0x23),
//   - nanoseconds <= 10^9.
//
// It intentionally does not enumerate known type codes: an unknown type
// must still be framed and skipped, not rejected.
func ValidateHeader(h Header) bool {
	const trailingLength = 4
	const maxDeclaredLength = 1 << 30
	const nanosecondCeiling = 1_000_000_000
	if h.NumBytesDgm < HeaderSize+trailingLength {
		dbg.Anomaly("numBytesDgm", h.NumBytesDgm)
		return false
	}
	if h.NumBytesDgm > maxDeclaredLength {
		dbg.Anomaly("numBytesDgm", h.NumBytesDgm)
		return false
	}
	if byte(h.DgmType) != '#' {
		dbg.Anomaly("dgmType", h.TypeString())
		return false
	}
	if h.TimeNanosec > nanosecondCeiling {
		dbg.Anomaly("timeNanosec", h.TimeNanosec)
		return false
	}
	return true
}
