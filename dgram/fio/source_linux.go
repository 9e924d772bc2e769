//go:build linux

package fio

import (
	"io"

	"golang.org/x/sys/unix"
)

// unixSource implements Source directly over a raw file descriptor using
// golang.org/x/sys/unix, retrying every syscall that can return EINTR.
type unixSource struct {
	fd     int
	closed bool
}

// Open opens path for sequential binary reading.
func Open(path string) (Source, error) {
	fd, err := retryOpen(path)
	if err != nil {
		return nil, err
	}
	return &unixSource{fd: fd}, nil
}

func retryOpen(path string) (int, error) {
	for {
		fd, err := unix.Open(path, unix.O_RDONLY, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return -1, err
		}
		return fd, nil
	}
}

func (s *unixSource) ReadFull(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := retryRead(s.fd, p[total:])
		total += n
		if n == 0 && err == nil {
			if total == 0 {
				return 0, io.EOF
			}
			return total, io.ErrUnexpectedEOF
		}
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func retryRead(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}

func (s *unixSource) SeekForward(n int64) error {
	if n == 0 {
		return nil
	}
	for {
		_, err := unix.Seek(s.fd, n, unix.SEEK_CUR)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

func (s *unixSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for {
		err := unix.Close(s.fd)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}
