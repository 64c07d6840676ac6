package core

import "image"

// Align controls horizontal text placement relative to the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the drawing backend the render stage emits commands to.
// Coordinates are logical canvas units; implementations scale them to
// their own surface (terminal cells, window pixels).
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)

	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c Color)

	// Blit draws an image stretched into the given rectangle.
	// flipV mirrors the image vertically around the rectangle center.
	Blit(img image.Image, x, y, w, h float64, flipV bool)

	// Text draws a single line of text with its baseline area at y.
	Text(x, y float64, s string, c Color, align Align)

	// SetAlpha sets the opacity (0..1) for subsequent fill commands.
	SetAlpha(a float64)
}
