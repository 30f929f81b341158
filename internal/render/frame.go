package render

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Sprite is an entity projected into the viewport.
type Sprite struct {
	X, Y    float64     // Top-left corner in viewport pixels
	W, H    float64     // Scaled size
	Opacity float64     // 1 on the ground, fading with height
	Texture image.Image // nil draws a placeholder
}

// Rect returns the sprite's pixel rectangle.
func (s Sprite) Rect() image.Rectangle {
	x, y := int(s.X), int(s.Y)
	return image.Rect(x, y, x+int(s.W), y+int(s.H))
}

// Project places e in a viewport whose world origin sits at center when the
// camera offset is zero. Height grows the sprite by
// (pos.z + hitbox.start.z) / hitbox.start.z to fake a jump zoom. It reports
// false when the sprite's top-left corner falls off-screen.
func Project(e *world.Entity, center, offset world.Vec2) (Sprite, bool) {
	hb := e.Hitbox
	mult, opacity := 1.0, 1.0
	if hb.Start.Z > 0 {
		ratio := hb.Start.Z / (e.Pos.Z + hb.Start.Z)
		mult = 1 / ratio
		opacity = ratio
	}

	baseX := center.X + e.Pos.X - offset.X
	baseY := center.Y + e.Pos.Y - offset.Y

	s := Sprite{
		X:       baseX + hb.Start.X*mult,
		Y:       baseY + hb.Start.Y*mult,
		Opacity: opacity,
		Texture: e.Texture(),
	}
	s.W = baseX + hb.End.X*mult - s.X
	s.H = baseY + hb.End.Y*mult - s.Y

	if s.X < 0 || s.Y < 0 {
		return s, false
	}
	return s, true
}

// Frame recomputes the camera for r's viewport and draws the world.
func Frame(r Renderer, w *world.World) {
	Focus(r, w)
	Draw(r, w)
}

// Focus moves w's camera so the player stays inside r's viewport band.
func Focus(r Renderer, w *world.World) {
	size, center := viewport(r)
	w.Scroll(center, size)
}

// Draw draws w with its current camera: background, entities, then the
// player on top. It does not modify w, so it may run on a Clone away from
// the simulation goroutine.
func Draw(r Renderer, w *world.World) {
	width, height := r.Size()
	_, center := viewport(r)
	offset := w.Offset()

	r.Clear()
	if w.Background != nil {
		r.DrawBitmap(image.Rect(0, 0, width, height), w.Background)
	}

	w.Each(func(_ world.Handle, e *world.Entity) {
		drawEntity(r, e, center, offset, EntityColor)
	})
	drawEntity(r, w.Player.Entity, center, offset, PlayerColor)
}

// viewport returns r's size and centre in pixels.
func viewport(r Renderer) (size, center world.Vec2) {
	width, height := r.Size()
	size = world.Vec2{X: float64(width), Y: float64(height)}
	return size, world.Vec2{X: size.X / 2, Y: size.Y / 2}
}

// drawEntity draws one projected entity, skipping it when off-screen.
func drawEntity(r Renderer, e *world.Entity, center, offset world.Vec2, placeholder color.RGBA) {
	s, ok := Project(e, center, offset)
	if !ok {
		return
	}

	if s.Texture != nil {
		r.DrawBitmap(s.Rect(), s.Texture)
		return
	}

	c := color.NRGBA{R: placeholder.R, G: placeholder.G, B: placeholder.B, A: uint8(255 * s.Opacity)}
	r.DrawRect(s.Rect(), c)
}
