package mimekit

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gobeaver/mimekit/magic"
)

// Option configures a Detector
type Option func(*Detector)

// WithLogger sets the logger used for detection diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithFs sets the filesystem path inputs are opened from
func WithFs(fs afero.Fs) Option {
	return func(d *Detector) {
		if fs != nil {
			d.fs = fs
		}
	}
}

// WithSniffers replaces the sniffing backends. They run in the given order;
// calling it with no arguments leaves only the format predicates.
func WithSniffers(sniffers ...Sniffer) Option {
	return func(d *Detector) {
		d.sniffers = append([]Sniffer(nil), sniffers...)
	}
}

// WithFormats replaces the format predicates consulted after the backends
func WithFormats(formats ...magic.Format) Option {
	return func(d *Detector) {
		d.formats = append([]magic.Format(nil), formats...)
	}
}

// WithContentSniffing enables or disables the fallback to content inspection
// when the name gives no answer
func WithContentSniffing(enabled bool) Option {
	return func(d *Detector) {
		d.useContentSniffing = enabled
	}
}

// WithWindowSize sets how many leading bytes are sniffed. Non-positive
// values are ignored.
func WithWindowSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.windowSize = n
		}
	}
}
