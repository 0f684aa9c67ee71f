package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	stddraw "image/draw"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/starfield/parameter"
)

var (
	// ErrEmpty is returned when encoding a surface or recording with nothing drawn
	ErrEmpty = errors.New("raster: nothing to encode")
	// ErrFrameLimit is returned when a recording exceeds GIFMaxFrames
	ErrFrameLimit = fmt.Errorf("raster: gif frame limit %d reached", parameter.GIFMaxFrames)
)

// Recorder accumulates presented frames into an animated GIF
// Frames are optionally downscaled and dithered to the Plan 9 palette
type Recorder struct {
	Delay int     // per-frame delay in 1/100 s
	Scale float64 // output scale relative to the source frame, (0,1]

	anim gif.GIF
	err  error
}

// NewRecorder creates a recorder with the default frame delay and no scaling
func NewRecorder() *Recorder {
	return &Recorder{Delay: parameter.GIFFrameDelay, Scale: 1}
}

// Attach records every frame s presents
func (r *Recorder) Attach(s *Surface) {
	s.OnPresent(func(img image.Image) {
		if err := r.Add(img); err != nil && r.err == nil {
			r.err = err
		}
	})
}

// Add quantizes img and appends it as the next frame
func (r *Recorder) Add(img image.Image) error {
	if len(r.anim.Image) >= parameter.GIFMaxFrames {
		return ErrFrameLimit
	}
	src := Thumbnail(img, r.Scale)

	b := src.Bounds()
	frame := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	stddraw.FloydSteinberg.Draw(frame, frame.Bounds(), src, b.Min)

	r.anim.Image = append(r.anim.Image, frame)
	r.anim.Delay = append(r.anim.Delay, max(r.Delay, 0))
	return nil
}

// Frames returns the number of recorded frames
func (r *Recorder) Frames() int {
	return len(r.anim.Image)
}

// Err returns the first error raised by an attached surface
func (r *Recorder) Err() error {
	return r.err
}

// Encode writes the looping animation
func (r *Recorder) Encode(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	if len(r.anim.Image) == 0 {
		return ErrEmpty
	}
	r.anim.LoopCount = 0
	if err := gif.EncodeAll(w, &r.anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Thumbnail scales img by factor with bilinear filtering; factors outside (0,1) return img
func Thumbnail(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor >= 1 {
		return img
	}
	b := img.Bounds()
	w := max(int(float64(b.Dx())*factor), 1)
	h := max(int(float64(b.Dy())*factor), 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
