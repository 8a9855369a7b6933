package mimekit

import "io"

// Input is what a Detector inspects: either a path on the configured
// filesystem or an open stream owned by the caller. Build one with [Path],
// [Stream] or [NamedStream].
type Input interface {
	// name returns the name used for extension lookup, or "".
	name() string
}

type pathInput string

func (p pathInput) name() string { return string(p) }

type streamInput struct {
	r        io.Reader
	filename string
}

func (s streamInput) name() string { return s.filename }

// Path returns an Input for a file path. Name-based lookup needs no access
// to the file; it is only opened when content sniffing is required.
func Path(path string) Input {
	return pathInput(path)
}

// Stream returns an Input for r. If r has a Name() string method, as
// *os.File does, that name is used for extension lookup. The stream is never
// closed, and when content is sniffed r must also implement io.Seeker.
func Stream(r io.Reader) Input {
	var filename string
	if n, ok := r.(interface{ Name() string }); ok {
		filename = n.Name()
	}
	return streamInput{r: r, filename: filename}
}

// NamedStream is like [Stream] but uses filename for extension lookup.
func NamedStream(r io.Reader, filename string) Input {
	return streamInput{r: r, filename: filename}
}
