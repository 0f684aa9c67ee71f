package raster

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"testing"

	"github.com/lixenwraith/starfield/render"
)

func red8(img image.Image, x, y int) uint32 {
	r, _, _, _ := img.At(x, y).RGBA()
	return r >> 8
}

func TestFillCircle(t *testing.T) {
	s := New(64, 48)
	defer s.Close()

	s.Clear(render.RGBBlack)
	s.FillCircle(32, 24, 5, render.RGBWhite)
	img := s.Image()

	if got := red8(img, 32, 24); got < 250 {
		t.Errorf("center red = %d, want ~255", got)
	}
	if got := red8(img, 2, 2); got != 0 {
		t.Errorf("corner red = %d, want 0", got)
	}
}

func TestGlowIsTranslucent(t *testing.T) {
	s := New(64, 64)
	defer s.Close()

	s.Clear(render.RGBBlack)
	s.Glow(32, 32, 20, render.RGBWhite)
	img := s.Image()

	center := red8(img, 32, 32)
	if center == 0 || center > 200 {
		t.Errorf("glow center red = %d, want translucent", center)
	}
	if edge := red8(img, 32, 51); edge >= center {
		t.Errorf("glow edge red %d not below center %d", edge, center)
	}
	if outside := red8(img, 2, 2); outside != 0 {
		t.Errorf("glow leaked outside radius: %d", outside)
	}
}

func TestResizeAndEncode(t *testing.T) {
	s := New(10, 10)
	defer s.Close()

	s.Resize(100, 50)
	if w, h := s.Size(); w != 100 || h != 50 {
		t.Fatalf("Size() = %dx%d, want 100x50", w, h)
	}
	s.Clear(render.RGB{R: 10, G: 20, B: 30})

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("png bounds = %v, want 100x50", b)
	}
}

func TestEmptySurface(t *testing.T) {
	s := New(0, 0)
	s.Clear(render.RGBWhite)
	s.FillCircle(1, 1, 1, render.RGBWhite)
	s.Glow(1, 1, 1, render.RGBWhite)
	s.Present()

	if s.Image() != nil {
		t.Error("empty surface returned an image")
	}
	if err := s.EncodePNG(&bytes.Buffer{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("EncodePNG error = %v, want ErrEmpty", err)
	}

	s.Resize(8, 8)
	if w, h := s.Size(); w != 8 || h != 8 {
		t.Errorf("Size() after grow = %dx%d, want 8x8", w, h)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestRecorder(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		w, h  int
	}{
		{"full", 1, 40, 30},
		{"half", 0.5, 20, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(40, 30)
			defer s.Close()
			rec := NewRecorder()
			rec.Scale = tt.scale
			rec.Attach(s)

			for i := 0; i < 3; i++ {
				s.Clear(render.RGBBlack)
				s.FillCircle(float64(10+i*5), 15, 3, render.RGBWhite)
				s.Present()
			}
			if rec.Frames() != 3 {
				t.Fatalf("frames = %d, want 3", rec.Frames())
			}

			var buf bytes.Buffer
			if err := rec.Encode(&buf); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			anim, err := gif.DecodeAll(&buf)
			if err != nil {
				t.Fatalf("decode gif: %v", err)
			}
			if len(anim.Image) != 3 {
				t.Errorf("decoded %d frames, want 3", len(anim.Image))
			}
			if b := anim.Image[0].Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("frame bounds = %v, want %dx%d", b, tt.w, tt.h)
			}
		})
	}
}

func TestRecorderEmpty(t *testing.T) {
	if err := NewRecorder().Encode(&bytes.Buffer{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("Encode error = %v, want ErrEmpty", err)
	}
}
