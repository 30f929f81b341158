package native

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Renderer draws frames straight onto a tcell screen in true colour. Each
// cell stands for a cellW x cellH block of viewport pixels.
type Renderer struct {
	screen tcell.Screen
	cellW  int
	cellH  int
}

// NewRenderer wraps s. Non-positive cell sizes fall back to 8x16.
func NewRenderer(s tcell.Screen, cellW, cellH int) *Renderer {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Renderer{screen: s, cellW: cellW, cellH: cellH}
}

// Size returns the viewport in pixels.
func (r *Renderer) Size() (int, int) {
	w, h := r.screen.Size()
	return w * r.cellW, h * r.cellH
}

// Clear blanks the screen.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// DrawRect shades every cell touched by rect, lighter for lower opacity.
func (r *Renderer) DrawRect(rect image.Rectangle, c color.Color) {
	_, _, _, a := c.RGBA()
	ch := render.Shade(float64(a) / 0xffff)
	style := tcell.StyleDefault.Foreground(rgb(render.Opaque(c)))

	span := render.CellSpan(rect, r.cellW, r.cellH).Intersect(r.bounds())
	for y := span.Y; y < span.Bottom(); y++ {
		for x := span.X; x < span.Right(); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawBitmap samples img once per covered cell.
func (r *Renderer) DrawBitmap(rect image.Rectangle, img image.Image) {
	render.SampleCells(rect, img, r.cellW, r.cellH, r.bounds(), func(x, y int, c color.Color) {
		r.screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(rgb(c)))
	})
}

// DrawText writes a line of text at cell (x, y) over whatever is there.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) bounds() core.Rect {
	w, h := r.screen.Size()
	return core.NewRect(0, 0, w, h)
}

func rgb(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

var _ render.Renderer = (*Renderer)(nil)
