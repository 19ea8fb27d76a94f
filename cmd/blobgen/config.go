package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"honnef.co/go/blob"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("blobgen: invalid configuration")

// Output formats.
const (
	FormatAnimated = "animated"
	FormatStatic   = "static"
	FormatCSS      = "css"
	FormatPath     = "path"
)

// Config holds everything blobgen needs to produce one output. Its YAML keys
// mirror the command-line flags.
type Config struct {
	Complexity int           `yaml:"complexity"`
	Contrast   float64       `yaml:"contrast"`
	Frames     int           `yaml:"frames"`
	Seed       uint64        `yaml:"seed"`
	Duration   time.Duration `yaml:"duration"`
	Fill       string        `yaml:"fill"`
	Size       float64       `yaml:"size"`
	Format     string        `yaml:"format"`
	Output     string        `yaml:"output"`
}

// DefaultConfig returns the configuration used when neither a file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Complexity: 6,
		Contrast:   20,
		Frames:     blob.DefaultFrameCount,
		Duration:   blob.DefaultDuration,
		Fill:       blob.DefaultFill,
		Size:       blob.DrawingSpace.Width(),
		Format:     FormatAnimated,
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their default values, and an empty file yields the defaults. Unknown keys
// are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Validate reports the first problem with cfg. Errors wrap ErrInvalidConfig
// and, where one applies, the matching blob error.
func (cfg Config) Validate() error {
	switch {
	case cfg.Complexity < blob.MinComplexity:
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, blob.ErrInvalidComplexity, cfg.Complexity)
	case cfg.Contrast < 0 || math.IsNaN(cfg.Contrast) || math.IsInf(cfg.Contrast, 0):
		return fmt.Errorf("%w: %w: got %v", ErrInvalidConfig, blob.ErrInvalidContrast, cfg.Contrast)
	case cfg.Frames < 1:
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, blob.ErrInvalidFrameCount, cfg.Frames)
	case cfg.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConfig, cfg.Duration)
	case !(cfg.Size > 0) || math.IsInf(cfg.Size, 0):
		return fmt.Errorf("%w: size must be positive, got %v", ErrInvalidConfig, cfg.Size)
	}
	switch cfg.Format {
	case FormatAnimated, FormatStatic, FormatCSS, FormatPath:
		return nil
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, cfg.Format)
	}
}

// ViewBox returns the output view box, a square of side Size.
func (cfg Config) ViewBox() blob.Rect {
	return blob.Rect{X0: 0, Y0: 0, X1: cfg.Size, Y1: cfg.Size}
}
