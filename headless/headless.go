// Package headless drives a Starfield without a display: the host loop is an explicit
// FrameQueue stepped back to back onto a raster surface
package headless

import (
	"fmt"
	"io"
	"time"

	"github.com/lixenwraith/starfield/parameter"
	"github.com/lixenwraith/starfield/render/raster"
	"github.com/lixenwraith/starfield/starfield"
)

// Run is one mounted offscreen starfield
type Run struct {
	Surface  *raster.Surface
	Viewport *starfield.HostViewport
	Queue    *starfield.FrameQueue
	Field    *starfield.Starfield

	clock    time.Time
	interval time.Duration
}

// Start mounts a starfield on a fresh width x height canvas; the first frame is drawn
func Start(cfg starfield.Config, width, height int, opts ...starfield.Option) (*Run, error) {
	if width <= 0 || height <= 0 || width > parameter.ExportMaxDimension || height > parameter.ExportMaxDimension {
		return nil, fmt.Errorf("invalid canvas %dx%d (1-%d)", width, height, parameter.ExportMaxDimension)
	}
	r := &Run{
		Surface:  raster.New(width, height),
		Viewport: starfield.NewHostViewport(width, height),
		Queue:    starfield.NewFrameQueue(),
		clock:    time.Now(),
		interval: parameter.FrameInterval,
	}
	r.Field = starfield.Mount(r.Surface, r.Viewport, r.Queue, cfg, opts...)
	return r, nil
}

// Step runs n frames with timestamps one frame interval apart
func (r *Run) Step(n int) {
	for i := 0; i < n; i++ {
		r.clock = r.clock.Add(r.interval)
		r.Queue.RunFrame(r.clock)
	}
}

// Close unmounts and releases the canvas
func (r *Run) Close() error {
	r.Field.Unmount()
	return r.Surface.Close()
}

// PNG renders warmup frames after the mount draw and writes the last one
func PNG(w io.Writer, cfg starfield.Config, width, height, warmup int, opts ...starfield.Option) error {
	r, err := Start(cfg, width, height, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	r.Step(warmup)
	if err := r.Surface.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// GIFOptions controls animated export
type GIFOptions struct {
	Warmup int     // frames run before recording starts
	Frames int     // recorded frames
	Delay  int     // per-frame delay, 1/100 s
	Scale  float64 // output scale (0,1]
}

// GIF records opts.Frames frames after opts.Warmup and writes a looping animation
func GIF(w io.Writer, cfg starfield.Config, width, height int, opts GIFOptions, mopts ...starfield.Option) error {
	if opts.Frames <= 0 || opts.Frames > parameter.GIFMaxFrames {
		return fmt.Errorf("invalid frame count %d (1-%d)", opts.Frames, parameter.GIFMaxFrames)
	}
	r, err := Start(cfg, width, height, mopts...)
	if err != nil {
		return err
	}
	defer r.Close()

	r.Step(opts.Warmup)

	rec := raster.NewRecorder()
	if opts.Delay > 0 {
		rec.Delay = opts.Delay
	}
	if opts.Scale > 0 {
		rec.Scale = opts.Scale
	}
	rec.Attach(r.Surface)
	r.Step(opts.Frames)
	r.Surface.OnPresent(nil)

	return rec.Encode(w)
}
