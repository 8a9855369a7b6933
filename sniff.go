package mimekit

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/gobeaver/mimekit/magic"
)

// Result sources that are not backend names
const (
	SourceName    = "name"
	SourceDefault = "default"
	sourceMagic   = "magic:"
)

// Sniff determines the MIME type of buf from its content alone. It never
// fails: when no backend and no format predicate recognises the bytes it
// returns application/octet-stream.
//
// Backends run first, in the order they were configured, and the first
// Determined outcome wins without consulting later backends. The format
// predicates run next, domain formats before generic ones.
func (d *Detector) Sniff(buf []byte) Result {
	for _, s := range d.sniffers {
		out := s.Sniff(buf)
		switch out.Status {
		case Determined:
			if out.MIME == "" {
				continue
			}
			return Result{MIME: out.MIME, Source: s.Name()}
		default:
			d.logger.Debug("sniffer gave no answer",
				zap.String("sniffer", s.Name()),
				zap.Stringer("status", out.Status),
			)
		}
	}

	if f, ok := magic.Detect(d.formats, buf); ok {
		return Result{MIME: f.MIME, Source: sourceMagic + f.Name}
	}

	d.logger.Info("unable to determine MIME type from content, returning default",
		zap.String("mime", MIMEOctetStream),
		zap.Int("window", len(buf)),
		zap.String("window_xxhash", fmt.Sprintf("%016x", xxhash.Sum64(buf))),
	)
	return Result{MIME: MIMEOctetStream, Source: SourceDefault}
}
