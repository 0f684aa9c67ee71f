// Package raster implements render.Surface on an anti-aliased gg canvas for headless
// export and previews
package raster

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/render"
)

// Surface draws into an in-memory gg context
// A zero-area surface accepts every call and draws nothing
type Surface struct {
	ctx    *gg.Context
	width  int
	height int

	onPresent func(image.Image)
}

// New creates a surface of width x height pixels
func New(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

// OnPresent installs a callback receiving a snapshot of every presented frame
func (s *Surface) OnPresent(fn func(image.Image)) {
	s.onPresent = fn
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the canvas; gg keeps the pixmap when dimensions are unchanged
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		s.width, s.height = 0, 0
		return
	}
	s.width, s.height = width, height

	if s.ctx == nil {
		s.ctx = gg.NewContext(width, height)
		return
	}
	// Dimensions are positive so Resize cannot fail
	_ = s.ctx.Resize(width, height)
}

func (s *Surface) empty() bool {
	return s.ctx == nil || s.width == 0 || s.height == 0
}

func (s *Surface) Clear(bg render.RGB) {
	if s.empty() {
		return
	}
	s.ctx.ClearWithColor(rgba(bg, 1))
}

func (s *Surface) FillCircle(x, y, r float64, c render.RGB) {
	if s.empty() || r <= 0 {
		return
	}
	cr, cg, cb := c.Floats()
	s.ctx.SetRGBA(cr, cg, cb, 1)
	s.ctx.DrawCircle(x, y, r)
	_ = s.ctx.Fill()
}

// Glow fills a disc with a radial gradient from GlowAlpha at the center to transparent
func (s *Surface) Glow(x, y, r float64, c render.RGB) {
	if s.empty() || r <= 0 {
		return
	}
	brush := gg.NewRadialGradientBrush(x, y, 0, r).
		AddColorStop(0, rgba(c, parameter.GlowAlpha)).
		AddColorStop(1, rgba(c, 0))
	s.ctx.SetFillBrush(brush)
	s.ctx.DrawCircle(x, y, r)
	_ = s.ctx.Fill()
}

// Present flushes pending work and hands a snapshot to the OnPresent callback
func (s *Surface) Present() {
	if s.empty() {
		return
	}
	_ = s.ctx.FlushGPU()
	if s.onPresent != nil {
		s.onPresent(s.ctx.Image())
	}
}

// Image returns the current canvas contents; nil for a zero-area surface
func (s *Surface) Image() image.Image {
	if s.empty() {
		return nil
	}
	return s.ctx.Image()
}

// EncodePNG writes the current canvas as PNG
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.empty() {
		return ErrEmpty
	}
	return s.ctx.EncodePNG(w)
}

// SavePNG writes the current canvas to path
func (s *Surface) SavePNG(path string) error {
	if s.empty() {
		return ErrEmpty
	}
	return s.ctx.SavePNG(path)
}

// Close releases the canvas
func (s *Surface) Close() error {
	if s.ctx == nil {
		return nil
	}
	err := s.ctx.Close()
	s.ctx = nil
	s.width, s.height = 0, 0
	return err
}

func rgba(c render.RGB, alpha float64) gg.RGBA {
	r, g, b := c.Floats()
	return gg.RGBA{R: r, G: g, B: b, A: alpha}
}
