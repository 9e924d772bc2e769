package dgram

import (
	"github.com/sounder/dgram/dgram/fio"
	"github.com/sounder/dgram/emx"
	"github.com/sounder/dgram/kma"
)

// Stats accumulates counters across a handle's lifetime, the
// observability surface a real deployment would want on top of the
// reader's core contract.
type Stats struct {
	Read        uint64
	Skipped     uint64
	Unknown     uint64
	Errors      uint64
}

// Handle is the reader's opaque per-file state: owned file descriptor,
// growable reused buffer, persistent error code, skip toggles, and the
// single embedded current-datagram record for whichever format it was
// opened with.
//
// A Handle is not safe for concurrent use: one sequential stream per
// handle.
type Handle struct {
	src    fio.Source
	format Format
	closed bool

	headerBuf [24]byte
	buf       []byte
	footerBuf []byte

	code Code

	ignoreWaterColumn bool
	ignoreSoundings   bool
	ignoreChecksum    bool

	kmaHeader kma.Header
	kmaDgm    kma.Datagram

	emxHeader emx.Header
	emxDgm    emx.Datagram

	stats Stats
}

// Open establishes a handle reading path under the given framing. The
// file is opened but no datagram is read yet; the file descriptor is
// live and the read buffer is allocated lazily.
func Open(path string, format Format) (*Handle, error) {
	src, err := fio.Open(path)
	if err != nil {
		return nil, openFailed("opening %s: %v", path, err)
	}
	return &Handle{src: src, format: format}, nil
}

// Close releases the file descriptor. The handle is considered closed
// regardless of whether the underlying close reports an error: Close
// always releases resources, and may report a close failure, but the
// handle is gone regardless.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.buf = nil
	h.footerBuf = nil
	if err := h.src.Close(); err != nil {
		e := closeFailed("closing: %v", err)
		h.code = e.Code
		return e
	}
	return nil
}

// Format reports which framing this handle was opened with.
func (h *Handle) Format() Format { return h.format }

// LastError returns the handle's persistent error code. It is not
// cleared by a successful Read; callers distinguish EOF (None) from a
// real failure this way.
func (h *Handle) LastError() Code { return h.code }

// Stats returns a snapshot of the handle's read counters.
func (h *Handle) Stats() Stats { return h.stats }

// SetIgnoreWaterColumn toggles whether KMA MWC / EMX water-column
// datagrams are skipped via seek rather than read and laid out. Applies
// to both formats.
func (h *Handle) SetIgnoreWaterColumn(ignore bool) { h.ignoreWaterColumn = ignore }

// SetIgnoreSoundings toggles whether KMA MRZ datagrams are skipped via
// seek. KMA-only; a no-op when the handle was opened with EMX.
func (h *Handle) SetIgnoreSoundings(ignore bool) { h.ignoreSoundings = ignore }

// SetIgnoreChecksum toggles EMX footer checksum verification. EMX-only;
// a no-op when the handle was opened with KMA.
func (h *Handle) SetIgnoreChecksum(ignore bool) { h.ignoreChecksum = ignore }

// KMA returns the current datagram's KMA view. It is only meaningful
// immediately after a successful Read on a handle opened with Format ==
// KMA, and is only valid until the next Read or Close.
func (h *Handle) KMA() *kma.Datagram { return &h.kmaDgm }

// EMX returns the current datagram's EMX view, with the same validity
// window as KMA.
func (h *Handle) EMX() *emx.Datagram { return &h.emxDgm }
