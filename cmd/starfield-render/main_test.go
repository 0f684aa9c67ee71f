package main

import (
	"flag"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parse(t *testing.T, args ...string) (options, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseOptions(fs, args)
}

func TestParseOptionsFormat(t *testing.T) {
	tests := []struct {
		args    []string
		format  string
		wantErr string
	}{
		{nil, "gif", ""},
		{[]string{"-out", "frame.PNG"}, "png", ""},
		{[]string{"-out", "-", "-format", "png"}, "png", ""},
		{[]string{"-out", "x.jpg"}, "", "invalid format"},
		{[]string{"-scale", "0"}, "", "invalid scale"},
		{[]string{"-warmup", "-2"}, "", "invalid warmup"},
		{[]string{"-mode", "up"}, "gif", ""}, // validated when converting settings
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			opts, err := parse(t, tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if opts.Format != tt.format {
				t.Errorf("format = %q, want %q", opts.Format, tt.format)
			}
		})
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "frame.png")
	opts, err := parse(t, "-out", pngPath, "-w", "64", "-h", "48", "-warmup", "3", "-seed", "4")
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts); err != nil {
		t.Fatalf("run png: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("decode png: %v", err)
	}

	gifPath := filepath.Join(dir, "anim.gif")
	opts, err = parse(t, "-out", gifPath, "-w", "64", "-h", "48", "-warmup", "0", "-frames", "3")
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts); err != nil {
		t.Fatalf("run gif: %v", err)
	}
	g, err := os.Open(gifPath)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	anim, err := gif.DecodeAll(g)
	if err != nil {
		t.Fatalf("decode gif: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("frames = %d, want 3", len(anim.Image))
	}
}

func TestRunRejectsBadMode(t *testing.T) {
	opts, err := parse(t, "-out", filepath.Join(t.TempDir(), "x.png"), "-mode", "up")
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts); err == nil || !strings.Contains(err.Error(), "invalid mode") {
		t.Errorf("run error = %v, want invalid mode", err)
	}
}
