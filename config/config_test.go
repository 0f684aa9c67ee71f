package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/starfield/starfield"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := s.Starfield()
	if err != nil {
		t.Fatalf("Starfield: %v", err)
	}
	def := starfield.DefaultConfig()
	if cfg.Mode != def.Mode || cfg.Variant != def.Variant || cfg.ResizePolicy != def.ResizePolicy {
		t.Errorf("enum defaults differ: %+v", cfg)
	}
	if cfg.Density != 1 || cfg.SpeedScale != def.SpeedScale || !cfg.Twinkle.Enabled || !cfg.ScatterOnWrap {
		t.Errorf("numeric defaults differ: density=%v speed=%v twinkle=%v scatter=%v",
			cfg.Density, cfg.SpeedScale, cfg.Twinkle.Enabled, cfg.ScatterOnWrap)
	}
	if s.Interval() != 16*time.Millisecond {
		t.Errorf("interval = %v, want 16ms", s.Interval())
	}
}

func TestEnvAndFlagPrecedence(t *testing.T) {
	t.Setenv("STARFIELD_MODE", "vertical")
	t.Setenv("STARFIELD_DENSITY", "0.5")
	t.Setenv("STARFIELD_SEED", "9")

	s, err := Parse(newFlagSet(), []string{"-density", "2", "-variant", "depth"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Mode != "vertical" {
		t.Errorf("mode = %q, want env value vertical", s.Mode)
	}
	if s.Density != 2 {
		t.Errorf("density = %v, want flag value 2", s.Density)
	}
	if s.Seed != 9 {
		t.Errorf("seed = %d, want 9", s.Seed)
	}

	cfg, _ := s.Starfield()
	if cfg.Mode != starfield.ModeVertical || cfg.Variant != starfield.VariantDepth || cfg.Seed != 9 {
		t.Errorf("config = mode %s variant %s seed %d", cfg.Mode, cfg.Variant, cfg.Seed)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bad env number", map[string]string{"STARFIELD_DENSITY": "lots"}, nil, "parse env"},
		{"bad mode", nil, []string{"-mode", "sideways"}, "invalid mode"},
		{"bad variant", nil, []string{"-variant", "4d"}, "invalid variant"},
		{"bad resize", nil, []string{"-resize", "stretch"}, "invalid resize policy"},
		{"bad background", nil, []string{"-bg", "#zzz"}, "background"},
		{"bad palette", nil, []string{"-palette", "#fff:x"}, "palette"},
		{"negative density", nil, []string{"-density", "-1"}, "invalid density"},
		{"zero density", nil, []string{"-density", "0"}, "invalid density"},
		{"huge density", nil, []string{"-density", "1e9"}, "invalid density"},
		{"unknown flag", nil, []string{"-nope"}, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse(newFlagSet(), tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestGlowAndTwinkleToggles(t *testing.T) {
	s, err := Parse(newFlagSet(), []string{"-glow=false", "-twinkle=false", "-scatter=false"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, _ := s.Starfield()
	for _, l := range cfg.Layers {
		if l.GlowChance != 0 {
			t.Errorf("layer %s glow chance = %v, want 0", l.Name, l.GlowChance)
		}
	}
	if cfg.Twinkle.Enabled || cfg.ScatterOnWrap {
		t.Errorf("twinkle=%v scatter=%v, want both off", cfg.Twinkle.Enabled, cfg.ScatterOnWrap)
	}
}

func TestLoadDotenv(t *testing.T) {
	const key = "STARFIELD_PALETTE"
	if _, ok := os.LookupEnv(key); ok {
		t.Skipf("%s already set in environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=#ff0000:1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotenv(filepath.Join(t.TempDir(), "missing.env"), path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}

	s, err := Parse(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, _ := s.Starfield()
	if len(cfg.Palette.Entries) != 1 || cfg.Palette.Entries[0].Color.Hex() != "#ff0000" {
		t.Errorf("palette = %+v, want single red entry", cfg.Palette.Entries)
	}
}

func TestLoadDotenvKeepsProcessEnv(t *testing.T) {
	t.Setenv("STARFIELD_MODE", "vertical")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STARFIELD_MODE=normal\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if got := os.Getenv("STARFIELD_MODE"); got != "vertical" {
		t.Errorf("STARFIELD_MODE = %q, want process value vertical", got)
	}
}
