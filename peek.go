package mimekit

import (
	"errors"
	"fmt"
	"io"
)

// Peek records the current offset of s, runs fn, and seeks s back to the
// recorded offset on every exit path, including errors and panics raised by
// fn. Code running after Peek observes the stream exactly where it was.
//
// Peek fails with an error wrapping [ErrNotSupported] when the offset of s
// cannot be queried.
func Peek(s io.Seeker, fn func() error) (err error) {
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: stream position: %w", ErrNotSupported, err)
	}

	defer func() {
		if _, serr := s.Seek(pos, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("restore stream position: %w", serr)
		}
	}()

	return fn()
}

// PeekBytes reads up to n bytes from the current offset of r without moving
// it. r must implement io.Seeker. A stream shorter than n yields the bytes
// that were available.
func PeekBytes(r io.Reader, n int) ([]byte, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("%w: stream is not seekable", ErrNotSupported)
	}
	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	var read int
	err := Peek(rs, func() error {
		var rerr error
		read, rerr = io.ReadFull(rs, buf)
		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			return nil
		}
		return rerr
	})
	if err != nil {
		return nil, err
	}
	return buf[:read], nil
}
