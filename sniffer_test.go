package mimekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'}

// stubSniffer returns a fixed outcome and counts calls.
type stubSniffer struct {
	name  string
	out   Outcome
	calls int
}

func (s *stubSniffer) Name() string { return s.name }

func (s *stubSniffer) Sniff([]byte) Outcome {
	s.calls++
	return s.out
}

type panicSniffer struct{}

func (panicSniffer) Name() string         { return "panics" }
func (panicSniffer) Sniff([]byte) Outcome { panic("backend crashed") }

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unavailable", Unavailable.String())
	assert.Equal(t, "indeterminate", Indeterminate.String())
	assert.Equal(t, "determined", Determined.String())
	assert.Equal(t, "status(7)", Status(7).String())
}

func TestLibrarySniffers(t *testing.T) {
	sniffers := []Sniffer{NewMimetypeSniffer(), NewFiletypeSniffer()}

	for _, s := range sniffers {
		t.Run(s.Name(), func(t *testing.T) {
			assert.Equal(t, DeterminedOutcome(MIMETypeImagePNG), s.Sniff(pngHeader))
			assert.Equal(t, IndeterminateOutcome(), s.Sniff(nil))
			assert.Equal(t, IndeterminateOutcome(), s.Sniff(noise()))
		})
	}
}

func TestMimetypeSniffer_StripsParameters(t *testing.T) {
	out := NewMimetypeSniffer().Sniff([]byte("plain words of text\n"))
	require.Equal(t, Determined, out.Status)
	assert.Equal(t, MIMETypeTextPlain, out.MIME)
}

func TestPlaceholderSniffers(t *testing.T) {
	u := NewUnavailableSniffer("native")
	assert.Equal(t, "native", u.Name())
	assert.Equal(t, UnavailableOutcome(), u.Sniff(pngHeader))

	n := NewNopSniffer()
	assert.Equal(t, SnifferNop, n.Name())
	assert.Equal(t, IndeterminateOutcome(), n.Sniff(pngHeader))
}

func TestProbe(t *testing.T) {
	assert.True(t, Probe(NewMimetypeSniffer()))
	assert.True(t, Probe(NewFiletypeSniffer()))
	assert.False(t, Probe(NewNopSniffer()))
	assert.False(t, Probe(NewUnavailableSniffer("gone")))
	assert.False(t, Probe(panicSniffer{}))
	assert.False(t, Probe(&stubSniffer{name: "wrong", out: DeterminedOutcome("image/gif")}))
}

func TestProbed_ReplacesFailingBackend(t *testing.T) {
	s := probed(panicSniffer{})
	assert.Equal(t, "panics", s.Name())
	assert.Equal(t, Unavailable, s.Sniff(pngHeader).Status)

	ok := NewFiletypeSniffer()
	assert.Equal(t, ok, probed(ok))
}

func TestDefaultSniffers(t *testing.T) {
	first := DefaultSniffers()
	require.Len(t, first, 2)
	assert.Equal(t, SnifferMimetype, first[0].Name())
	assert.Equal(t, SnifferFiletype, first[1].Name())

	// Both libraries are linked in, so both probes succeed.
	for _, s := range first {
		assert.True(t, Probe(s), "%s should be available", s.Name())
	}

	// Callers get their own copy.
	first[0] = NewNopSniffer()
	assert.Equal(t, SnifferMimetype, DefaultSniffers()[0].Name())
}
