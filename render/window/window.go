// Package window implements render.Surface on an offscreen ebiten image
// Frames are drawn during Update and composited onto the screen in Draw
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/render"
)

// GlowRings is the number of concentric translucent discs approximating a halo
const GlowRings = 4

// Surface owns an offscreen canvas sized in window pixels
type Surface struct {
	canvas *ebiten.Image
	width  int
	height int

	presented uint64
}

// New allocates a width x height canvas; zero dimensions defer allocation to Resize
func New(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize replaces the canvas when dimensions change
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.canvas != nil && width == s.width && height == s.height {
		return
	}
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = width, height
	if width > 0 && height > 0 {
		s.canvas = ebiten.NewImage(width, height)
	}
}

func (s *Surface) Clear(bg render.RGB) {
	if s.canvas == nil {
		return
	}
	s.canvas.Fill(bg.NRGBA(1))
}

func (s *Surface) FillCircle(x, y, r float64, c render.RGB) {
	if s.canvas == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(r), c.NRGBA(1), true)
}

// Glow stacks translucent discs of shrinking radius; alpha accumulates toward the center
func (s *Surface) Glow(x, y, r float64, c render.RGB) {
	if s.canvas == nil || r <= 0 {
		return
	}
	for _, ring := range glowRings(r, parameter.GlowAlpha) {
		vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(ring.radius), c.NRGBA(ring.alpha), true)
	}
}

// Present marks the canvas as holding a complete frame
func (s *Surface) Present() {
	s.presented++
}

// Presented returns the number of completed frames
func (s *Surface) Presented() uint64 {
	return s.presented
}

// Draw composites the last presented frame onto screen
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.canvas == nil || s.presented == 0 {
		return
	}
	screen.DrawImage(s.canvas, nil)
}

type ring struct {
	radius float64
	alpha  float64
}

// glowRings splits a halo into GlowRings discs from outermost to innermost
// whose stacked alpha at the center reaches roughly peak
func glowRings(r, peak float64) []ring {
	rings := make([]ring, GlowRings)
	alpha := peak / GlowRings
	for i := range rings {
		rings[i] = ring{
			radius: r * float64(GlowRings-i) / GlowRings,
			alpha:  alpha,
		}
	}
	return rings
}
