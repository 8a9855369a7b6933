package mimekit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Fall back to content inspection when the name gives no answer
	UseContentSniffing bool `env:"MIMEKIT_USE_CONTENT_SNIFFING,default:true"`

	// Number of leading bytes read for sniffing
	WindowSize int `env:"MIMEKIT_WINDOW_SIZE,default:2048"`

	// Backend toggles. A disabled backend behaves as if it were not installed.
	NativeSniffer   bool `env:"MIMEKIT_NATIVE_SNIFFER,default:true"`
	FallbackSniffer bool `env:"MIMEKIT_FALLBACK_SNIFFER,default:true"`
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() *Config {
	return &Config{
		UseContentSniffing: true,
		WindowSize:         DefaultWindowSize,
		NativeSniffer:      true,
		FallbackSniffer:    true,
	}
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
