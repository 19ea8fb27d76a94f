package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/blob"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, blob.DrawingSpace, cfg.ViewBox())
	assert.Equal(t, blob.DefaultFrameCount, cfg.Frames)
	assert.Equal(t, FormatAnimated, cfg.Format)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
complexity: 9
contrast: 12.5
duration: 2s
fill: "#ff0000"
format: css
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Complexity = 9
	want.Contrast = 12.5
	want.Duration = 2 * time.Second
	want.Fill = "#ff0000"
	want.Format = FormatCSS
	assert.Equal(t, want, cfg)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "complexity: 5\nwobble: 3\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"complexity", func(c *Config) { c.Complexity = 2 }, blob.ErrInvalidComplexity},
		{"contrast", func(c *Config) { c.Contrast = -1 }, blob.ErrInvalidContrast},
		{"frames", func(c *Config) { c.Frames = 0 }, blob.ErrInvalidFrameCount},
		{"duration", func(c *Config) { c.Duration = 0 }, ErrInvalidConfig},
		{"size", func(c *Config) { c.Size = -5 }, ErrInvalidConfig},
		{"format", func(c *Config) { c.Format = "gif" }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
