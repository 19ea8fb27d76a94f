// The blobgen command generates random blob shapes and writes them as an
// animated SVG, a static SVG, CSS keyframes or raw path data.
//
// Usage:
//
//	blobgen [-config blob.yaml] [-complexity 6] [-contrast 20] [-frames 20]
//	        [-seed N] [-duration 4s] [-fill #3498db] [-size 200]
//	        [-format animated|static|css|path] [-o out.svg] [-v]
//
// Flags given on the command line override values from the configuration
// file. A seed of 0 picks a random seed, which is logged so that the output
// can be reproduced.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"honnef.co/go/blob"
)

func main() {
	cfg, verbose, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(cfg, log); err != nil {
		log.Error("generation failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// parseArgs builds the configuration from the configuration file named by
// -config, if any, and the flags in args.
func parseArgs(args []string, stderr io.Writer) (Config, bool, error) {
	fs := flag.NewFlagSet("blobgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fc := DefaultConfig()
	configPath := fs.String("config", "", "YAML configuration `file`")
	verbose := fs.Bool("v", false, "verbose logging")
	fs.IntVar(&fc.Complexity, "complexity", fc.Complexity, "number of points per blob (at least 3)")
	fs.Float64Var(&fc.Contrast, "contrast", fc.Contrast, "maximum radius perturbation")
	fs.IntVar(&fc.Frames, "frames", fc.Frames, "number of animation frames")
	fs.Uint64Var(&fc.Seed, "seed", fc.Seed, "random seed, 0 for a random one")
	fs.DurationVar(&fc.Duration, "duration", fc.Duration, "length of one animation cycle")
	fs.StringVar(&fc.Fill, "fill", fc.Fill, "fill colour")
	fs.Float64Var(&fc.Size, "size", fc.Size, "side length of the output view box")
	fs.StringVar(&fc.Format, "format", fc.Format, "output format: animated, static, css or path")
	fs.StringVar(&fc.Output, "o", fc.Output, "output `file`, stdout if empty")
	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}
	if fs.NArg() > 0 {
		return Config{}, false, fmt.Errorf("blobgen: unexpected arguments %q", fs.Args())
	}

	cfg := fc
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			return Config{}, false, err
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "complexity":
				cfg.Complexity = fc.Complexity
			case "contrast":
				cfg.Contrast = fc.Contrast
			case "frames":
				cfg.Frames = fc.Frames
			case "seed":
				cfg.Seed = fc.Seed
			case "duration":
				cfg.Duration = fc.Duration
			case "fill":
				cfg.Fill = fc.Fill
			case "size":
				cfg.Size = fc.Size
			case "format":
				cfg.Format = fc.Format
			case "o":
				cfg.Output = fc.Output
			}
		})
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, false, err
	}
	return cfg, *verbose, nil
}

// run writes the output described by cfg to its output file or stdout.
func run(cfg Config, log *zap.Logger) (err error) {
	if cfg.Output == "" {
		return generate(cfg, os.Stdout, log)
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return generate(cfg, f, log)
}

// generate produces the frames described by cfg and writes them to w in
// cfg.Format.
func generate(cfg Config, w io.Writer, log *zap.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	count := cfg.Frames
	if cfg.Format == FormatStatic {
		count = 1
	}

	g := blob.NewGenerator(blob.WithSeed(seed))
	frames, err := g.Frames(count, cfg.Complexity, cfg.Contrast)
	if err != nil {
		return err
	}
	viewBox := cfg.ViewBox()
	if viewBox != blob.DrawingSpace {
		frames = frames.Transform(blob.MapRect(blob.DrawingSpace, viewBox))
	}
	for i, f := range frames {
		box := f.ControlBox()
		log.Debug("frame",
			zap.Int("index", i),
			zap.Float64("width", box.Width()),
			zap.Float64("height", box.Height()))
	}

	style := blob.StyleOptions{ViewBox: viewBox, Fill: cfg.Fill, Path: blob.PathData}
	switch cfg.Format {
	case FormatAnimated:
		err = blob.WriteAnimatedSVG(w, frames, blob.AnimationOptions{StyleOptions: style, Duration: cfg.Duration})
	case FormatStatic:
		err = blob.WriteStaticSVG(w, frames[0], style)
	case FormatCSS:
		err = blob.WriteCSSKeyframes(w, blob.DefaultKeyframesName, frames, blob.PathData)
	case FormatPath:
		for _, d := range frames.PathData(blob.PathData) {
			if _, err = fmt.Fprintln(w, d); err != nil {
				break
			}
		}
	default:
		err = fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, cfg.Format)
	}
	if err != nil {
		return err
	}

	log.Info("generated blob",
		zap.String("format", cfg.Format),
		zap.Int("complexity", cfg.Complexity),
		zap.Float64("contrast", cfg.Contrast),
		zap.Int("frames", len(frames)),
		zap.Uint64("seed", seed),
		zap.String("output", cfg.Output))
	return nil
}
