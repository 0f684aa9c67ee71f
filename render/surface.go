package render

// Surface is a write-only 2D drawing target sized in pixels
// Implementations clip out-of-range drawing silently
type Surface interface {
	// Size returns the current pixel dimensions
	Size() (width, height int)

	// Resize changes the pixel dimensions; contents are undefined until the next Clear
	Resize(width, height int)

	// Clear fills the whole surface with bg
	Clear(bg RGB)

	// FillCircle draws a filled disc of radius r centered at (x, y)
	FillCircle(x, y, r float64, c RGB)

	// Glow draws a soft halo of radius r centered at (x, y), fading to transparent
	Glow(x, y, r float64, c RGB)

	// Present publishes the frame drawn since the last Clear
	Present()
}
