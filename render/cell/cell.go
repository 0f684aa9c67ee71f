// Package cell renders a render.Surface onto a tcell screen using upper half blocks:
// every terminal cell carries two vertically stacked pixels, top as foreground and
// bottom as background
package cell

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/render"
)

// HalfBlock is the glyph whose foreground paints the top pixel of a cell
const HalfBlock = '▀'

// PixelSize converts terminal cells to surface pixels
func PixelSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// Surface is a pixel buffer flushed to a tcell screen on Present
type Surface struct {
	screen tcell.Screen
	pixels []render.RGB
	width  int
	height int

	radiusScale float64
}

// New wraps screen; returns nil when screen is nil so callers can hand the result
// straight to starfield.Mount, which treats a nil surface as unavailable
func New(screen tcell.Screen) *Surface {
	if screen == nil {
		return nil
	}
	s := &Surface{
		screen:      screen,
		radiusScale: parameter.CellRadiusScale,
	}
	s.Resize(PixelSize(screen.Size()))
	return s
}

// Size returns pixel dimensions
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize adjusts the pixel buffer, reallocating only if capacity is insufficient
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(s.pixels) < size {
		s.pixels = make([]render.RGB, size)
	} else {
		s.pixels = s.pixels[:size]
	}
	s.width = width
	s.height = height
}

// Clear fills every pixel with bg using exponential copy
func (s *Surface) Clear(bg render.RGB) {
	if len(s.pixels) == 0 {
		return
	}
	s.pixels[0] = bg
	for filled := 1; filled < len(s.pixels); filled *= 2 {
		copy(s.pixels[filled:], s.pixels[:filled])
	}
}

// FillCircle adds c to every pixel whose center lies inside the scaled disc
// Small stars collapse to one pixel so they stay visible at terminal resolution
func (s *Surface) FillCircle(x, y, r float64, c render.RGB) {
	r *= s.radiusScale
	if r < parameter.CellPointRadius {
		s.add(int(math.Floor(x)), int(math.Floor(y)), c)
		return
	}

	r2 := r * r
	x0, x1 := int(math.Floor(x-r)), int(math.Ceil(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Ceil(y+r))
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				s.add(px, py, c)
			}
		}
	}
}

// Glow adds a quadratic falloff halo around (x, y), excluding the center pixel
func (s *Surface) Glow(x, y, r float64, c render.RGB) {
	r *= s.radiusScale
	if r < 1 {
		r = 1
	}

	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	x0, x1 := int(math.Floor(x-r)), int(math.Ceil(x+r))
	y0, y1 := int(math.Floor(y-r)), int(math.Ceil(y+r))
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px <= x1; px++ {
			if px == cx && py == cy {
				continue
			}
			dx := float64(px) + 0.5 - x
			d := math.Sqrt(dx*dx+dy*dy) / r
			if d >= 1 {
				continue
			}
			falloff := (1 - d) * (1 - d)
			s.add(px, py, render.Scale(c, falloff*parameter.CellGlowIntensity))
		}
	}
}

// Present writes every cell as a half block and shows the screen
func (s *Surface) Present() {
	rows := s.height / 2
	for cy := 0; cy < rows; cy++ {
		top := s.pixels[(cy*2)*s.width:]
		bottom := s.pixels[(cy*2+1)*s.width:]
		for cx := 0; cx < s.width; cx++ {
			style := tcell.StyleDefault.
				Foreground(color(top[cx])).
				Background(color(bottom[cx]))
			s.screen.SetContent(cx, cy, HalfBlock, nil, style)
		}
	}
	s.screen.Show()
}

// Pixel returns the buffered color at (x, y); out of range returns black
func (s *Surface) Pixel(x, y int) render.RGB {
	if !s.inBounds(x, y) {
		return render.RGBBlack
	}
	return s.pixels[y*s.width+x]
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// add blends additively so overlapping stars and halos brighten instead of overwrite
func (s *Surface) add(x, y int, c render.RGB) {
	if !s.inBounds(x, y) {
		return
	}
	i := y*s.width + x
	s.pixels[i] = render.Add(s.pixels[i], c, 1.0)
}

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
