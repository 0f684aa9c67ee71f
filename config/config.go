// Package config loads starfield host settings from .env files, STARFIELD_* environment
// variables and command-line flags, in increasing order of precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/render"
	"github.com/lixenwraith/starfield/starfield"
)

// DefaultEnvFile is loaded when LoadDotenv is called without paths
const DefaultEnvFile = ".env"

// Settings are the options shared by every starfield host
type Settings struct {
	Mode       string  `env:"STARFIELD_MODE"       envDefault:"normal"`
	Variant    string  `env:"STARFIELD_VARIANT"    envDefault:"flat"`
	Density    float64 `env:"STARFIELD_DENSITY"    envDefault:"1"`
	SpeedScale float64 `env:"STARFIELD_SPEED"      envDefault:"3"`
	Twinkle    bool    `env:"STARFIELD_TWINKLE"    envDefault:"true"`
	Glow       bool    `env:"STARFIELD_GLOW"       envDefault:"true"`
	Scatter    bool    `env:"STARFIELD_SCATTER"    envDefault:"true"`
	Palette    string  `env:"STARFIELD_PALETTE"`
	Background string  `env:"STARFIELD_BACKGROUND" envDefault:"#000000"`
	Resize     string  `env:"STARFIELD_RESIZE"     envDefault:"regenerate"`
	Seed       uint64  `env:"STARFIELD_SEED"`

	FrameInterval time.Duration `env:"STARFIELD_FRAME_INTERVAL" envDefault:"16ms"`
	Debug         bool          `env:"STARFIELD_DEBUG"`
}

// LoadDotenv exports variables from env files without overriding the process environment
// Missing files are skipped
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RegisterFlags binds every setting to fs, defaulting to the current values
func (s *Settings) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&s.Mode, "mode", s.Mode, "drift mode: normal, vertical")
	fs.StringVar(&s.Variant, "variant", s.Variant, "simulation: flat, depth")
	fs.Float64Var(&s.Density, "density", s.Density, "star count multiplier")
	fs.Float64Var(&s.SpeedScale, "speed", s.SpeedScale, "drift speed scale")
	fs.BoolVar(&s.Twinkle, "twinkle", s.Twinkle, "enable twinkle")
	fs.BoolVar(&s.Glow, "glow", s.Glow, "enable near-layer glow")
	fs.BoolVar(&s.Scatter, "scatter", s.Scatter, "randomize cross axis when a star wraps")
	fs.StringVar(&s.Palette, "palette", s.Palette, "weighted palette, e.g. \"#ffffff:70,#cad7ff:30\"")
	fs.StringVar(&s.Background, "bg", s.Background, "background color")
	fs.StringVar(&s.Resize, "resize", s.Resize, "resize policy: regenerate, keep")
	fs.Uint64Var(&s.Seed, "seed", s.Seed, "random seed (0 = time based)")
	fs.DurationVar(&s.FrameInterval, "frame", s.FrameInterval, "frame interval when not vsync driven")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "write debug log to logs/")
}

// Parse reads environment then flags into Settings and validates the result
func Parse(fs *flag.FlagSet, args []string) (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	s.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if _, err := s.Starfield(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Starfield converts settings to an effect configuration
func (s Settings) Starfield() (starfield.Config, error) {
	cfg := starfield.DefaultConfig()

	var err error
	if cfg.Mode, err = starfield.ParseMode(s.Mode); err != nil {
		return cfg, err
	}
	if cfg.Variant, err = starfield.ParseVariant(s.Variant); err != nil {
		return cfg, err
	}
	if cfg.ResizePolicy, err = starfield.ParseResizePolicy(s.Resize); err != nil {
		return cfg, err
	}
	if s.Background != "" {
		if cfg.Background, err = render.ParseHex(s.Background); err != nil {
			return cfg, fmt.Errorf("background: %w", err)
		}
	}
	if s.Palette != "" {
		if cfg.Palette, err = starfield.ParsePalette(s.Palette); err != nil {
			return cfg, fmt.Errorf("palette: %w", err)
		}
	}

	if !(s.Density > 0 && s.Density <= parameter.MaxDensity) {
		return cfg, fmt.Errorf("invalid density %v (want (0,%d])", s.Density, parameter.MaxDensity)
	}
	cfg.Density = s.Density
	if s.SpeedScale != 0 {
		cfg.SpeedScale = s.SpeedScale
	}

	cfg.Twinkle.Enabled = s.Twinkle
	if !s.Glow {
		for i := range cfg.Layers {
			cfg.Layers[i].GlowChance = 0
		}
	}
	cfg.ScatterOnWrap = s.Scatter
	cfg.Seed = s.Seed
	return cfg, nil
}

// Interval returns the host frame period, falling back to the default for non-positive values
func (s Settings) Interval() time.Duration {
	if s.FrameInterval <= 0 {
		return parameter.FrameInterval
	}
	return s.FrameInterval
}
