// Package render turns a World into draw calls on a pluggable Renderer.
// Each output target (pixel buffer, terminal cells, tcell screen) implements
// Renderer independently; the projection of entities into the viewport lives
// here and is shared by all of them.
package render

import (
	"image"
	"image/color"
)

// Renderer is the capability a backend offers to draw one frame.
// Coordinates are viewport pixels with the origin at the top-left.
type Renderer interface {
	// Size returns the viewport size in pixels.
	Size() (w, h int)

	// Clear erases the previous frame.
	Clear()

	// DrawRect fills r with c. The alpha of c is the draw opacity.
	DrawRect(r image.Rectangle, c color.Color)

	// DrawBitmap draws img scaled into r. Implementations must not retain
	// img after returning.
	DrawBitmap(r image.Rectangle, img image.Image)
}

// Placeholder colours for entities without a texture.
var (
	EntityColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	PlayerColor = color.RGBA{R: 0, G: 200, B: 255, A: 255}
)
