package dgram

import (
	"io"

	"github.com/sounder/dgram/dgram/fio"
	"github.com/sounder/dgram/emx"
	"github.com/sounder/dgram/kma"
)

// Tristate is the result of Identify / IdentifyN: Positive (plausibly
// this format), Negative (plausibly not), distinct from the error return
// used for I/O faults.
type Tristate int

const (
	Negative Tristate = iota
	Positive
)

func (t Tristate) String() string {
	if t == Positive {
		return "positive"
	}
	return "negative"
}

// Identify opens path, validates exactly one header under the given
// format, and closes -- stateless: open, read one header, validate, and
// close. It is a thin wrapper around IdentifyN(path, format, 1).
//
// This is known to be loose for files with a corrupted first datagram but
// a valid stream after it; IdentifyN is the documented, explicitly
// opt-in way to widen the check.
func Identify(path string, format Format) (Tristate, error) {
	return IdentifyN(path, format, 1)
}

// IdentifyN validates up to n leading headers, returning Positive as soon
// as all examined headers validate and at least one was examined,
// Negative on the first invalid header or on immediate EOF, and an error
// on an I/O fault. This widens Identify's single-header check and
// remains opt-in rather than the default.
func IdentifyN(path string, format Format, n int) (Tristate, error) {
	if n < 1 {
		n = 1
	}
	src, err := fio.Open(path)
	if err != nil {
		return Negative, openFailed("opening %s: %v", path, err)
	}
	defer src.Close()

	examined := 0
	for i := 0; i < n; i++ {
		ok, eof, err := identifyOneHeader(src, format)
		if err != nil {
			return Negative, readFailed("reading header %d of %s: %v", i, path, err)
		}
		if eof {
			break
		}
		if !ok {
			return Negative, nil
		}
		examined++
	}
	if examined == 0 {
		return Negative, nil
	}
	return Positive, nil
}

func identifyOneHeader(src fio.Source, format Format) (ok bool, eof bool, err error) {
	switch format {
	case KMA:
		var buf [kma.HeaderSize]byte
		n, err := src.ReadFull(buf[:])
		if err == io.EOF && n == 0 {
			return false, true, nil
		}
		if err != nil {
			return false, false, err
		}
		header, decOk := kma.DecodeHeader(buf[:])
		if !decOk || !kma.ValidateHeader(header) {
			return false, false, nil
		}
		remaining := int64(header.NumBytesDgm) - kma.HeaderSize
		if remaining < 0 {
			return false, false, nil
		}
		if err := src.SeekForward(remaining); err != nil {
			return false, false, err
		}
		return true, false, nil
	case EMX:
		const emxHeaderSize = 4 + emx.HeaderRestSize + 1
		var buf [emxHeaderSize]byte
		n, err := src.ReadFull(buf[:])
		if err == io.EOF && n == 0 {
			return false, true, nil
		}
		if err != nil {
			return false, false, err
		}
		if !emx.ValidateHeader(buf[:]) {
			return false, false, nil
		}
		header, decOk := emx.DecodeHeader(buf[:])
		if !decOk {
			return false, false, nil
		}
		remaining := int64(header.NumBytesDgm) - emxHeaderSize
		if remaining < 2 {
			return false, false, nil
		}
		if err := src.SeekForward(remaining); err != nil {
			return false, false, err
		}
		return true, false, nil
	default:
		return false, false, nil
	}
}
