package mimekit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gobeaver/mimekit/magic"
)

// DefaultWindowSize is the number of leading bytes inspected when sniffing.
const DefaultWindowSize = 2048

// Result is the outcome of a detection.
type Result struct {
	// MIME is the detected type, or "" when nothing was determined.
	MIME string

	// Extension is a matching filename extension including the leading dot,
	// or "" when none is known.
	Extension string

	// Source names the strategy that produced MIME: "name", a sniffer name,
	// "magic:<format>", or "default".
	Source string
}

// Found reports whether a MIME type was determined.
func (r Result) Found() bool {
	return r.MIME != ""
}

// Detector resolves the MIME type and extension of files and streams.
// A Detector holds no per-call state and is safe for concurrent use.
type Detector struct {
	fs                 afero.Fs
	logger             *zap.Logger
	sniffers           []Sniffer
	formats            []magic.Format
	windowSize         int
	useContentSniffing bool
}

// Guess resolves the type of in.
//
// The name of the input is tried first; when its extension is known the
// content is never touched. Otherwise, if content sniffing is enabled, up to
// the window size of leading bytes is read and passed to [Detector.Sniff].
// With sniffing disabled an empty Result is returned.
//
// Guess fails only when the input cannot be read: a missing path yields an
// error matching [ErrNotExist], a stream without seek support one matching
// [ErrNotSupported].
func (d *Detector) Guess(in Input) (Result, error) {
	if name := in.name(); name != "" {
		if mt, ext := TypeByName(name); mt != "" {
			return Result{MIME: mt, Extension: ext, Source: SourceName}, nil
		}
	}

	if !d.useContentSniffing {
		return Result{}, nil
	}

	window, err := d.window(in)
	if err != nil {
		return Result{}, err
	}

	res := d.Sniff(window)
	res.Extension = GuessExtension(res.MIME)
	return res, nil
}

// GuessFile resolves the type of the file at path.
func (d *Detector) GuessFile(path string) (Result, error) {
	return d.Guess(Path(path))
}

// GuessReader resolves the type of r without moving its read offset.
func (d *Detector) GuessReader(r io.Reader) (Result, error) {
	return d.Guess(Stream(r))
}

func (d *Detector) window(in Input) ([]byte, error) {
	switch v := in.(type) {
	case streamInput:
		return PeekBytes(v.r, d.windowSize)
	case pathInput:
		return d.readHead(string(v))
	default:
		return nil, fmt.Errorf("%w: input type %T", ErrNotSupported, in)
	}
}

// readHead opens path read-only, reads the sniffing window and closes it.
func (d *Detector) readHead(path string) (_ []byte, err error) {
	f, err := d.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PathError{Op: "open", Path: path, Err: fmt.Errorf("%w: %w", ErrNotExist, err)}
		}
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &PathError{Op: "close", Path: path, Err: cerr}
		}
	}()

	buf := make([]byte, d.windowSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &PathError{Op: "read", Path: path, Err: err}
	}
	return buf[:n], nil
}
