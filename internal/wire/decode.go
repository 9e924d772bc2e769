package wire

import (
	"encoding/binary"
	"math"

	"github.com/klauspost/cpuid"
)

// fastUnaligned records whether the running CPU plausibly tolerates fast
// unaligned word loads. It is probed once at init via klauspost/cpuid and
// only ever read afterwards (Design Note: process-wide capability probes
// are immutable after process start). It does not select a decode path:
// there is one, below, and it always goes through encoding/binary.
//
// This module never casts a byte slice to a wider integer pointer -- no
// unsafe/reflect aliasing, see DESIGN.md. HasFastUnaligned is exposed for
// diagnostic/debug-banner purposes only (dgram.SetDebug logs it);
// encoding/binary is safe on every platform regardless of native
// alignment support.
var fastUnaligned bool

func init() {
	fastUnaligned = detectFastUnaligned()
}

func detectFastUnaligned() bool {
	// Intel and AMD (x86) CPUs tolerate unaligned loads efficiently; any
	// other vendor reported by cpuid, including every non-x86 CPU, reports
	// false.
	switch cpuid.CPU.VendorID {
	case cpuid.Intel, cpuid.AMD:
		return true
	default:
		return false
	}
}

// VendorString reports the detected CPU vendor name, for the debug banner.
func VendorString() string { return cpuid.CPU.VendorString }

// HasFastUnaligned reports the capability probed at init. Exposed so
// dgram.SetDebug can include it in its one-line startup banner.
func HasFastUnaligned() bool { return fastUnaligned }

func readU16(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func readU32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func float32FromBits(u uint32) float32 { return math.Float32frombits(u) }
func float64FromBits(u uint64) float64 { return math.Float64frombits(u) }
