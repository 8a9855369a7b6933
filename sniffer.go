package mimekit

import (
	"fmt"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// Status is the outcome of a single sniffing backend.
type Status int

const (
	// Unavailable means the backend could not run in this process.
	Unavailable Status = iota
	// Indeterminate means the backend ran but could not name a specific type.
	Indeterminate
	// Determined means the backend named a specific type.
	Determined
)

func (s Status) String() string {
	switch s {
	case Unavailable:
		return "unavailable"
	case Indeterminate:
		return "indeterminate"
	case Determined:
		return "determined"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is what a Sniffer reports for one buffer. MIME is only set when
// Status is Determined.
type Outcome struct {
	Status Status
	MIME   string
}

// DeterminedOutcome returns a Determined outcome for mimeType.
func DeterminedOutcome(mimeType string) Outcome {
	return Outcome{Status: Determined, MIME: mimeType}
}

// IndeterminateOutcome returns an Indeterminate outcome.
func IndeterminateOutcome() Outcome {
	return Outcome{Status: Indeterminate}
}

// UnavailableOutcome returns an Unavailable outcome.
func UnavailableOutcome() Outcome {
	return Outcome{Status: Unavailable}
}

// Sniffer is a pluggable content sniffing backend.
//
// Implementations must not retain buf and must never panic on short or
// malformed input.
type Sniffer interface {
	Name() string
	Sniff(buf []byte) Outcome
}

// Backend names
const (
	SnifferMimetype = "mimetype"
	SnifferFiletype = "filetype"
	SnifferNop      = "nop"
)

// ============================================================================
// Library-backed sniffers
// ============================================================================

// mimetypeSniffer is the native backend. It knows the most formats but
// reports application/octet-stream when it has no specific answer, which is
// treated as no answer at all.
type mimetypeSniffer struct{}

// NewMimetypeSniffer returns the native sniffer backed by
// github.com/gabriel-vasile/mimetype.
func NewMimetypeSniffer() Sniffer {
	return mimetypeSniffer{}
}

func (mimetypeSniffer) Name() string { return SnifferMimetype }

func (mimetypeSniffer) Sniff(buf []byte) Outcome {
	// mimetype classifies an empty buffer as text/plain
	if len(buf) == 0 {
		return IndeterminateOutcome()
	}
	mt := baseType(mimetype.Detect(buf).String())
	if mt == "" || mt == MIMEOctetStream {
		return IndeterminateOutcome()
	}
	return DeterminedOutcome(mt)
}

// filetypeSniffer is the pure fallback backend.
type filetypeSniffer struct{}

// NewFiletypeSniffer returns the fallback sniffer backed by
// github.com/h2non/filetype.
func NewFiletypeSniffer() Sniffer {
	return filetypeSniffer{}
}

func (filetypeSniffer) Name() string { return SnifferFiletype }

func (filetypeSniffer) Sniff(buf []byte) Outcome {
	kind, err := filetype.Match(buf)
	if err != nil || kind == types.Unknown || kind.MIME.Value == "" {
		return IndeterminateOutcome()
	}
	return DeterminedOutcome(baseType(kind.MIME.Value))
}

// ============================================================================
// Placeholder sniffers
// ============================================================================

type unavailableSniffer struct {
	name string
}

// NewUnavailableSniffer returns a sniffer that always reports Unavailable.
// It stands in for a backend that failed its probe or was disabled.
func NewUnavailableSniffer(name string) Sniffer {
	return unavailableSniffer{name: name}
}

func (s unavailableSniffer) Name() string { return s.name }

func (unavailableSniffer) Sniff([]byte) Outcome { return UnavailableOutcome() }

type nopSniffer struct{}

// NewNopSniffer returns a sniffer that is always available and never has an
// answer.
func NewNopSniffer() Sniffer {
	return nopSniffer{}
}

func (nopSniffer) Name() string { return SnifferNop }

func (nopSniffer) Sniff([]byte) Outcome { return IndeterminateOutcome() }

// ============================================================================
// Availability
// ============================================================================

// probeSample is a PNG signature every working backend recognises.
var probeSample = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}

// Probe reports whether s can classify a known sample. A panicking backend
// is reported as unavailable.
func Probe(s Sniffer) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	out := s.Sniff(probeSample)
	return out.Status == Determined && out.MIME == MIMETypeImagePNG
}

// probed replaces s with an unavailable placeholder if it fails its probe.
func probed(s Sniffer) Sniffer {
	if Probe(s) {
		return s
	}
	return NewUnavailableSniffer(s.Name())
}

// defaultSniffers is probed at most once per process. Concurrent first
// calls block until the single probe finishes; the result is never modified.
var defaultSniffers = sync.OnceValue(func() []Sniffer {
	return []Sniffer{
		probed(NewMimetypeSniffer()),
		probed(NewFiletypeSniffer()),
	}
})

// DefaultSniffers returns the process-wide backend chain: the native
// mimetype sniffer followed by the filetype fallback, each replaced by an
// unavailable placeholder if it failed its availability probe.
func DefaultSniffers() []Sniffer {
	s := defaultSniffers()
	out := make([]Sniffer, len(s))
	copy(out, s)
	return out
}
