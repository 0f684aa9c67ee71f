// Command starfield-render exports the star field headlessly as a PNG frame or an animated GIF
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/headless"
	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/starfield"
)

const logFileName = "starfield-render.log"

type options struct {
	config.Settings
	Out    string  `env:"STARFIELD_OUT"    envDefault:"starfield.gif"`
	Format string  `env:"STARFIELD_FORMAT"`
	Width  int     `env:"STARFIELD_WIDTH"  envDefault:"800"`
	Height int     `env:"STARFIELD_HEIGHT" envDefault:"600"`
	Warmup int     `env:"STARFIELD_WARMUP" envDefault:"60"`
	Frames int     `env:"STARFIELD_FRAMES" envDefault:"120"`
	Delay  int     `env:"STARFIELD_DELAY"  envDefault:"4"`
	Scale  float64 `env:"STARFIELD_SCALE"  envDefault:"1"`
}

func parseOptions(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	if err := config.ParseEnv(&opts); err != nil {
		return options{}, err
	}
	opts.RegisterFlags(fs)
	fs.StringVar(&opts.Out, "out", opts.Out, "output file, - for stdout")
	fs.StringVar(&opts.Format, "format", opts.Format, "png or gif (default from -out extension)")
	fs.IntVar(&opts.Width, "w", opts.Width, "canvas width")
	fs.IntVar(&opts.Height, "h", opts.Height, "canvas height")
	fs.IntVar(&opts.Warmup, "warmup", opts.Warmup, "frames simulated before output")
	fs.IntVar(&opts.Frames, "frames", opts.Frames, "recorded frames (gif)")
	fs.IntVar(&opts.Delay, "delay", opts.Delay, "gif frame delay in 1/100 s")
	fs.Float64Var(&opts.Scale, "scale", opts.Scale, "gif output scale (0,1]")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.Format == "" {
		opts.Format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Out)), ".")
	}
	switch opts.Format {
	case "png", "gif":
	default:
		return options{}, fmt.Errorf("invalid format %q (want png or gif)", opts.Format)
	}
	if opts.Warmup < 0 {
		return options{}, fmt.Errorf("invalid warmup %d", opts.Warmup)
	}
	if opts.Scale <= 0 || opts.Scale > 1 {
		return options{}, fmt.Errorf("invalid scale %v (want (0,1])", opts.Scale)
	}
	return opts, nil
}

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
		os.Exit(1)
	}
	opts, err := parseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if logFile := core.SetupLogging(opts.Debug, core.LogDir, logFileName); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) (err error) {
	cfg, err := opts.Starfield()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.Out != "-" {
		f, cerr := os.Create(opts.Out)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	hooks := starfield.WithHooks(starfield.LogHooks(log.Default()))
	if opts.Format == "png" {
		return headless.PNG(out, cfg, opts.Width, opts.Height, opts.Warmup, hooks)
	}
	return headless.GIF(out, cfg, opts.Width, opts.Height, headless.GIFOptions{
		Warmup: opts.Warmup,
		Frames: min(opts.Frames, parameter.GIFMaxFrames),
		Delay:  opts.Delay,
		Scale:  opts.Scale,
	}, hooks)
}
