package dgram

import (
	"io"

	"github.com/sounder/dgram/emx"
	"github.com/sounder/dgram/internal/dbg"
	"github.com/sounder/dgram/kma"
)

// Read advances the handle to the next datagram. It returns (true, nil) on a
// successfully parsed datagram, retrievable via Handle.KMA or Handle.EMX;
// (false, nil) on clean end of file; and (false, err) on a structural or
// I/O failure, with LastError set to the matching Code.
//
// A successful Read does not clear a previously-set error code; callers
// distinguish EOF from failure by checking err, not by inspecting
// LastError after success.
func (h *Handle) Read() (bool, error) {
	if h.closed {
		return false, badData("read on a closed handle")
	}
	switch h.format {
	case KMA:
		return h.readKMA()
	case EMX:
		return h.readEMX()
	default:
		return false, badData("unknown format %v", h.format)
	}
}

func (h *Handle) readKMA() (bool, error) {
	for {
		n, err := h.src.ReadFull(h.headerBuf[:kma.HeaderSize])
		if err == io.EOF && n == 0 {
			return false, nil
		}
		if err != nil {
			e := badData("short read of KMA header: %v", err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		header, ok := kma.DecodeHeader(h.headerBuf[:kma.HeaderSize])
		if !ok || !kma.ValidateHeader(header) {
			e := badData("invalid KMA header")
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		h.kmaHeader = header

		remaining := int64(header.NumBytesDgm) - kma.HeaderSize
		if remaining < 0 {
			dbg.Anomaly("numBytesDgm", header.NumBytesDgm)
			e := badData("KMA header declares length %d shorter than the header itself", header.NumBytesDgm)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}

		if (h.ignoreWaterColumn && kma.IsWaterColumn(header)) || (h.ignoreSoundings && kma.IsSoundings(header)) {
			if err := h.src.SeekForward(remaining); err != nil {
				e := seekFailed("skipping %s: %v", header.TypeString(), err)
				h.code = e.Code
				h.stats.Errors++
				return false, e
			}
			h.stats.Skipped++
			continue
		}

		if err := h.growBuffer(remaining); err != nil {
			h.stats.Errors++
			return false, err
		}

		n, err = h.src.ReadFull(h.buf[:remaining])
		if err != nil {
			dbg.Anomaly("kmaPayload", err)
			e := badData("short read of KMA payload (got %d of %d bytes): %v", n, remaining, err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}

		// The last 4 bytes are the trailing repeated length field, present
		// but not relied on for framing.
		bodySize := remaining - 4
		if bodySize < 0 {
			dbg.Anomaly("numBytesDgm", header.NumBytesDgm)
			e := badData("KMA datagram too short to hold its trailing length field")
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		body := h.buf[:bodySize]

		if err := kma.Decode(header, body, &h.kmaDgm); err != nil {
			dbg.Anomaly("kmaLayout", err)
			e := badData("laying out %s: %v", header.TypeString(), err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		if h.kmaDgm.Kind == kma.KindUnknown {
			h.stats.Unknown++
		}
		h.stats.Read++
		return true, nil
	}
}

func (h *Handle) readEMX() (bool, error) {
	const emxHeaderSize = 4 + emx.HeaderRestSize + 1 // leading length + STX + rest
	for {
		n, err := h.src.ReadFull(h.headerBuf[:emxHeaderSize])
		if err == io.EOF && n == 0 {
			return false, nil
		}
		if err != nil {
			e := badData("short read of EMX header: %v", err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		if !emx.ValidateHeader(h.headerBuf[:emxHeaderSize]) {
			dbg.Anomaly("emxHeader", h.headerBuf[:emxHeaderSize])
			e := badData("invalid EMX header")
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		header, ok := emx.DecodeHeader(h.headerBuf[:emxHeaderSize])
		if !ok {
			dbg.Anomaly("emxHeader", h.headerBuf[:emxHeaderSize])
			e := badData("malformed EMX header")
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		h.emxHeader = header

		remaining := int64(header.NumBytesDgm) - emxHeaderSize
		if remaining < 2 {
			dbg.Anomaly("numBytesDgm", header.NumBytesDgm)
			e := badData("EMX header declares length %d too short for ETX/checksum", header.NumBytesDgm)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}

		if h.ignoreWaterColumn && emx.IsWaterColumn(header) {
			if err := h.src.SeekForward(remaining); err != nil {
				e := seekFailed("skipping watercolumn: %v", err)
				h.code = e.Code
				h.stats.Errors++
				return false, e
			}
			h.stats.Skipped++
			continue
		}

		if err := h.growBuffer(remaining); err != nil {
			h.stats.Errors++
			return false, err
		}

		n, err = h.src.ReadFull(h.buf[:remaining])
		if err != nil {
			dbg.Anomaly("emxPayload", err)
			e := badData("short read of EMX payload (got %d of %d bytes): %v", n, remaining, err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}

		payloadSize := remaining - 2
		payload := h.buf[:payloadSize]

		// VerifyFooter wants STX through the checksum byte: STX and the
		// header-rest region live in headerBuf, the payload/ETX/checksum
		// in buf. footerBuf is a reused scratch buffer, grown in place the
		// same way buf is, rather than allocated fresh every Read.
		footerSize := 1 + emx.HeaderRestSize + int(remaining)
		h.footerBuf = ensureCapacity(h.footerBuf, footerSize)
		h.footerBuf = h.footerBuf[:0]
		h.footerBuf = append(h.footerBuf, h.headerBuf[4])
		h.footerBuf = append(h.footerBuf, h.headerBuf[5:emxHeaderSize]...)
		h.footerBuf = append(h.footerBuf, h.buf[:remaining]...)
		if err := emx.VerifyFooter(h.footerBuf, !h.ignoreChecksum); err != nil {
			dbg.Anomaly("emxFooter", err)
			e := badData("%v", err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}

		if err := emx.Decode(header, payload, &h.emxDgm); err != nil {
			dbg.Anomaly("emxLayout", err)
			e := badData("laying out EMX type %q: %v", string(header.DgmType), err)
			h.code = e.Code
			h.stats.Errors++
			return false, e
		}
		if h.emxDgm.Kind == emx.KindUnknown {
			h.stats.Unknown++
		}
		h.stats.Read++
		return true, nil
	}
}

func (h *Handle) growBuffer(n int64) error {
	if n > 1<<30 {
		e := outOfMemory("refusing to grow buffer to %d bytes", n)
		h.code = e.Code
		return e
	}
	h.buf = ensureCapacity(h.buf, int(n))
	return nil
}
