package render

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Cells adapts a terminal cell screen to the Renderer interface. Each cell
// stands for a CellW x CellH block of viewport pixels.
type Cells struct {
	screen *core.Screen
	cellW  int
	cellH  int
}

// NewCells wraps s. Non-positive cell sizes fall back to 8x16.
func NewCells(s *core.Screen, cellW, cellH int) *Cells {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Cells{screen: s, cellW: cellW, cellH: cellH}
}

// Screen returns the wrapped screen.
func (c *Cells) Screen() *core.Screen {
	return c.screen
}

// Size returns the viewport in pixels.
func (c *Cells) Size() (int, int) {
	return c.screen.Width() * c.cellW, c.screen.Height() * c.cellH
}

// Clear blanks the screen.
func (c *Cells) Clear() {
	c.screen.Clear()
}

// DrawRect shades every cell touched by r. Lower opacity picks a lighter
// shade character.
func (c *Cells) DrawRect(r image.Rectangle, col color.Color) {
	_, _, _, a := col.RGBA()
	cell := core.Cell{
		Rune:  Shade(float64(a) / 0xffff),
		Color: core.Nearest(Opaque(col)),
	}
	c.screen.FillRect(CellSpan(r, c.cellW, c.cellH), cell)
}

// DrawBitmap samples img once per covered cell. Mostly transparent samples
// leave the cell untouched.
func (c *Cells) DrawBitmap(r image.Rectangle, img image.Image) {
	SampleCells(r, img, c.cellW, c.cellH, c.screen.Bounds(), func(x, y int, sample color.Color) {
		c.screen.SetCell(x, y, core.Cell{Rune: '█', Color: core.Nearest(sample)})
	})
}

// SampleCells maps img, scaled into the pixel rectangle r, onto the cells
// of a cellW x cellH grid clipped to bounds. fn receives the colour at the
// centre of every covered cell whose sample is at least half opaque.
func SampleCells(r image.Rectangle, img image.Image, cellW, cellH int, bounds core.Rect, fn func(x, y int, c color.Color)) {
	span := CellSpan(r, cellW, cellH).Intersect(bounds)
	if span.Empty() || r.Empty() {
		return
	}

	src := img.Bounds()
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			// Centre of the cell in viewport pixels, mapped into img
			px := x*cellW + cellW/2
			py := y*cellH + cellH/2
			sx := src.Min.X + (px-r.Min.X)*src.Dx()/r.Dx()
			sy := src.Min.Y + (py-r.Min.Y)*src.Dy()/r.Dy()

			sample := img.At(core.Clamp(sx, src.Min.X, src.Max.X-1), core.Clamp(sy, src.Min.Y, src.Max.Y-1))
			if _, _, _, a := sample.RGBA(); a < 0x8000 {
				continue
			}
			fn(x, y, sample)
		}
	}
}

// CellSpan converts a pixel rectangle to the cells it touches.
func CellSpan(r image.Rectangle, cellW, cellH int) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	x0 := floorDiv(r.Min.X, cellW)
	y0 := floorDiv(r.Min.Y, cellH)
	x1 := floorDiv(r.Max.X+cellW-1, cellW)
	y1 := floorDiv(r.Max.Y+cellH-1, cellH)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Shade picks a block character for an opacity in [0, 1].
func Shade(opacity float64) rune {
	switch {
	case opacity >= 0.75:
		return '█'
	case opacity >= 0.5:
		return '▓'
	case opacity >= 0.25:
		return '▒'
	default:
		return '░'
	}
}

// Opaque drops the alpha channel so colour matching sees the base colour.
func Opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

var _ Renderer = (*Cells)(nil)
