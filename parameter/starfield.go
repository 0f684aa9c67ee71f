package parameter

import (
	"time"
)

// Frame Timing
const (
	// FrameInterval is the host frame period when no vsync source drives frames (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Far Layer: many small slow stars
const (
	FarCount    = 100
	FarSizeMin  = 0.5
	FarSizeMax  = 1.0
	FarSpeedMin = 0.05
	FarSpeedMax = 0.15
	FarVelocity = 0.3
)

// Mid Layer
const (
	MidCount    = 50
	MidSizeMin  = 1.0
	MidSizeMax  = 1.5
	MidSpeedMin = 0.1
	MidSpeedMax = 0.2
	MidVelocity = 0.6
)

// Near Layer: few large fast stars, the only layer that glows by default
const (
	NearCount      = 15
	NearSizeMin    = 1.5
	NearSizeMax    = 2.2
	NearSpeedMin   = 0.3
	NearSpeedMax   = 0.5
	NearVelocity   = 1.0
	NearGlowChance = 0.35
)

// Drift
const (
	// SpeedScale multiplies every per-frame displacement (px/frame at 60 FPS)
	SpeedScale = 3.0

	// NormalDriftX/Y is the diagonal drift direction of ModeNormal
	NormalDriftX = -0.5
	NormalDriftY = 0.5

	// VerticalDriftX/Y is the straight-down drift direction of ModeVertical
	VerticalDriftX = 0.0
	VerticalDriftY = 1.0
)

// Depth Variant
const (
	// DepthFar is the far plane distance where respawned stars re-enter
	DepthFar = 1000.0
	// FocalLength is the perspective divide numerator
	FocalLength = 250.0
	// DepthSpeed multiplies drift speed when travelling along z
	DepthSpeed = 8.0
	// MaxProjectedRadius caps star radius as z approaches the viewer
	MaxProjectedRadius = 4.0
)

// Twinkle
const (
	// TwinkleStep is the time accumulator increment per frame
	TwinkleStep = 0.02
	// BlinkSpeedMin/Max bound per-star twinkle angular speed
	BlinkSpeedMin = 1.0
	BlinkSpeedMax = 4.0
	// BrightnessMin is the lower bound for per-star base brightness
	BrightnessMin = 0.6
)

// Glow
const (
	// GlowScale is halo radius relative to star radius
	GlowScale = 4.0
)

// Cell Surface (terminal half-block pixels, 1 col x 2 rows per cell)
const (
	// CellRadiusScale shrinks pixel-space radii to terminal pixels, which are far coarser
	CellRadiusScale = 0.35
	// CellPointRadius is the radius below which a star plots as a single pixel
	CellPointRadius = 0.75
	// CellGlowIntensity is the halo peak relative to the star color
	CellGlowIntensity = 0.3
)

// Raster Surface
const (
	// GlowAlpha is the halo center opacity on anti-aliased surfaces
	GlowAlpha = 0.35
)

// Export
const (
	// GIFFrameDelay is the per-frame delay of exported GIFs, in 1/100 s
	GIFFrameDelay = 4
	// GIFMaxFrames caps frame count of a single GIF export
	GIFMaxFrames = 600
	// ExportMaxDimension caps exporter and preview canvas width and height
	ExportMaxDimension = 4096
)

// MaxDensity caps the per-layer star count multiplier
const MaxDensity = 10
