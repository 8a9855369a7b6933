package mimekit

import (
	"fmt"
	"io"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gobeaver/mimekit/magic"
)

// Global instance
var (
	defaultDetector *Detector
	defaultOnce     sync.Once
	defaultErr      error
)

// Builder provides a way to create Detector instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Detector instance using the builder's prefix
func (b *Builder) Init(opts ...Option) error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg, opts...)
}

// New creates a new Detector instance using the builder's prefix
func (b *Builder) New(opts ...Option) (*Detector, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Init initializes the global detector. A nil cfg loads the configuration
// from the environment. Only the first call has any effect.
func Init(cfg *Config, opts ...Option) error {
	defaultOnce.Do(func() {
		if cfg == nil {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultDetector, defaultErr = New(cfg, opts...)
	})

	return defaultErr
}

// New creates a Detector from cfg. A nil cfg means [DefaultConfig].
func New(cfg *Config, opts ...Option) (*Detector, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	d := &Detector{
		fs:                 afero.NewReadOnlyFs(afero.NewOsFs()),
		logger:             zap.NewNop(),
		sniffers:           configuredSniffers(cfg),
		formats:            magic.Formats(),
		windowSize:         cfg.WindowSize,
		useContentSniffing: cfg.UseContentSniffing,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.Named("mimekit")

	return d, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive (got %d)", cfg.WindowSize)
	}
	return nil
}

// configuredSniffers returns the probed default backends with the ones
// disabled in cfg swapped for unavailable placeholders.
func configuredSniffers(cfg *Config) []Sniffer {
	sniffers := DefaultSniffers()
	for i, s := range sniffers {
		switch {
		case s.Name() == SnifferMimetype && !cfg.NativeSniffer,
			s.Name() == SnifferFiletype && !cfg.FallbackSniffer:
			sniffers[i] = NewUnavailableSniffer(s.Name())
		}
	}
	return sniffers
}

// Default returns the global instance, initializing it from the environment
// if needed
func Default() (*Detector, error) {
	if err := Init(nil); err != nil {
		return nil, err
	}
	return defaultDetector, nil
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultDetector = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Guess resolves in with the global detector
func Guess(in Input) (Result, error) {
	d, err := Default()
	if err != nil {
		return Result{}, err
	}
	return d.Guess(in)
}

// GuessFile resolves the file at path with the global detector
func GuessFile(path string) (Result, error) {
	return Guess(Path(path))
}

// GuessReader resolves r with the global detector without moving its offset
func GuessReader(r io.Reader) (Result, error) {
	return Guess(Stream(r))
}

// GuessType resolves the file at name and returns the MIME type and
// extension separately. Both are empty when nothing could be determined.
func GuessType(name string) (mimeType, ext string, err error) {
	res, err := GuessFile(name)
	if err != nil {
		return "", "", err
	}
	return res.MIME, res.Extension, nil
}

// Sniff classifies buf with the global detector. If the environment holds an
// invalid configuration the default configuration is used instead, so Sniff
// always returns a type.
func Sniff(buf []byte) string {
	d, err := Default()
	if err != nil {
		d, _ = New(nil)
	}
	return d.Sniff(buf).MIME
}
