package mimekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want:    *DefaultConfig(),
		},
		{
			name: "content sniffing disabled",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_USE_CONTENT_SNIFFING": "false",
			},
			want: Config{
				UseContentSniffing: false,
				WindowSize:         2048,
				NativeSniffer:      true,
				FallbackSniffer:    true,
			},
		},
		{
			name: "backends and window",
			envVars: map[string]string{
				"BEAVER_MIMEKIT_WINDOW_SIZE":       "512",
				"BEAVER_MIMEKIT_NATIVE_SNIFFER":    "false",
				"BEAVER_MIMEKIT_FALLBACK_SNIFFER":  "true",
				"BEAVER_MIMEKIT_UNRELATED_SETTING": "ignored",
			},
			want: Config{
				UseContentSniffing: true,
				WindowSize:         512,
				NativeSniffer:      false,
				FallbackSniffer:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := GetConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New(&Config{UseContentSniffing: true, WindowSize: size})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestNew_Defaults(t *testing.T) {
	d, err := New(nil)
	require.NoError(t, err)

	assert.True(t, d.useContentSniffing)
	assert.Equal(t, DefaultWindowSize, d.windowSize)
	require.Len(t, d.sniffers, 2)
	assert.Equal(t, SnifferMimetype, d.sniffers[0].Name())
	assert.Equal(t, SnifferFiletype, d.sniffers[1].Name())
	assert.NotEmpty(t, d.formats)
}

func TestConfiguredSniffers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackSniffer = false

	sniffers := configuredSniffers(cfg)
	require.Len(t, sniffers, 2)
	assert.Equal(t, Determined, sniffers[0].Sniff(pngHeader).Status)
	assert.Equal(t, Unavailable, sniffers[1].Sniff(pngHeader).Status)
	assert.Equal(t, SnifferFiletype, sniffers[1].Name())

	// The process-wide chain is not affected.
	assert.Equal(t, Determined, DefaultSniffers()[1].Sniff(pngHeader).Status)
}
