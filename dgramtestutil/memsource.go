// Package dgramtestutil provides test helpers shared across the module's
// test suites: a small, focused helper that registers comparators and
// builds synthetic inputs, kept out of the production import graph.
package dgramtestutil

import (
	"io"

	"github.com/sounder/dgram/dgram/fio"
)

// MemSource is an in-memory fio.Source over a byte slice, so every table
// driven test in the reader's test suites can exercise the dispatcher
// without touching a real file.
type MemSource struct {
	buf    []byte
	pos    int
	closed bool
}

// NewMemSource returns a MemSource reading from buf.
func NewMemSource(buf []byte) *MemSource {
	return &MemSource{buf: buf}
}

var _ fio.Source = (*MemSource)(nil)

// ReadFull implements fio.Source.
func (m *MemSource) ReadFull(p []byte) (int, error) {
	if m.closed {
		return 0, io.ErrClosedPipe
	}
	remaining := len(m.buf) - m.pos
	if remaining <= 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	if remaining < len(p) {
		n := copy(p, m.buf[m.pos:])
		m.pos += n
		return n, io.ErrUnexpectedEOF
	}
	n := copy(p, m.buf[m.pos:m.pos+len(p)])
	m.pos += n
	return n, nil
}

// SeekForward implements fio.Source.
func (m *MemSource) SeekForward(n int64) error {
	if n < 0 {
		return io.ErrUnexpectedEOF
	}
	m.pos += int(n)
	if m.pos > len(m.buf) {
		m.pos = len(m.buf)
	}
	return nil
}

// Close implements fio.Source.
func (m *MemSource) Close() error {
	m.closed = true
	return nil
}

// Pos reports the current read offset, useful for assertions about
// skip-via-seek behavior.
func (m *MemSource) Pos() int { return m.pos }
