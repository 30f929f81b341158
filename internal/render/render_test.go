package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func TestProject(t *testing.T) {
	center := world.Vec2{X: 320, Y: 240}

	tests := []struct {
		name    string
		pos     world.Coord
		offset  world.Vec2
		want    Sprite
		visible bool
	}{
		{
			name:    "grounded at origin",
			pos:     world.Coord{},
			want:    Sprite{X: 304, Y: 224, W: 32, H: 32, Opacity: 1},
			visible: true,
		},
		{
			name:    "airborne doubles size",
			pos:     world.Coord{Z: 16},
			want:    Sprite{X: 288, Y: 208, W: 64, H: 64, Opacity: 0.5},
			visible: true,
		},
		{
			name:    "scrolled",
			pos:     world.Coord{X: 100},
			offset:  world.Vec2{X: 50},
			want:    Sprite{X: 354, Y: 224, W: 32, H: 32, Opacity: 1},
			visible: true,
		},
		{
			name:    "off the left edge",
			pos:     world.Coord{X: -400},
			visible: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := world.NewEntity()
			e.Pos = tc.pos

			got, ok := Project(e, center, tc.offset)
			if ok != tc.visible {
				t.Fatalf("Project() visible = %v, expected %v", ok, tc.visible)
			}
			if !ok {
				return
			}
			if got != tc.want {
				t.Errorf("Project() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestFrameBuffer(t *testing.T) {
	w := world.New()
	e := world.NewEntity()
	e.Pos = world.Coord{X: 100, Y: 0, Z: 0}
	w.Push(e)

	buf := NewBuffer(640, 480)
	Frame(buf, w)

	if got := buf.Image().RGBAAt(320, 240); got != PlayerColor {
		t.Errorf("player pixel = %v, expected %v", got, PlayerColor)
	}
	if got := buf.Image().RGBAAt(420, 240); got != EntityColor {
		t.Errorf("entity pixel = %v, expected %v", got, EntityColor)
	}
	if got := buf.Image().RGBAAt(10, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("background pixel = %v, expected black", got)
	}
}

func TestFrameSkipsOffscreen(t *testing.T) {
	w := world.New()
	e := world.NewEntity()
	e.Pos = world.Coord{X: -330, Y: 0, Z: 0} // top-left lands at x = -26
	w.Push(e)

	buf := NewBuffer(640, 480)
	Frame(buf, w)

	if got := buf.Image().RGBAAt(2, 240); got != (color.RGBA{A: 255}) {
		t.Errorf("off-screen entity was drawn: %v", got)
	}
}

func TestFrameTexture(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	tex := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tex.SetRGBA(x, y, red)
		}
	}

	w := world.New()
	w.Player.Entity.SetTexture(tex)

	buf := NewBuffer(640, 480)
	Frame(buf, w)

	if got := buf.Image().RGBAAt(320, 240); got != red {
		t.Errorf("textured pixel = %v, expected %v", got, red)
	}
	// The 4x4 texture shrank the hitbox; the old 32x32 area stays black
	if got := buf.Image().RGBAAt(310, 240); got != (color.RGBA{A: 255}) {
		t.Errorf("pixel outside texture = %v, expected black", got)
	}
}

func TestBufferWritePNG(t *testing.T) {
	buf := NewBuffer(16, 8)
	buf.DrawRect(image.Rect(0, 0, 4, 4), color.White)

	var out bytes.Buffer
	if err := buf.WritePNG(&out); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}

	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func TestFrameCells(t *testing.T) {
	screen := core.NewScreen(80, 24)
	cells := NewCells(screen, 8, 16)

	if w, h := cells.Size(); w != 640 || h != 384 {
		t.Fatalf("Size() = %dx%d, expected 640x384", w, h)
	}

	w := world.New()
	Frame(cells, w)

	// Player spans pixels 304..336 x 176..208, i.e. cells 38..41 x 11..12
	for _, p := range [][2]int{{38, 11}, {41, 12}} {
		if screen.Get(p[0], p[1]) != '█' {
			t.Errorf("cell %v = %q, expected player block", p, screen.Get(p[0], p[1]))
		}
	}
	if screen.Get(37, 11) != ' ' || screen.Get(42, 11) != ' ' {
		t.Error("player drawn outside its cells")
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		name     string
		r        image.Rectangle
		expected core.Rect
	}{
		{"aligned", image.Rect(0, 0, 16, 32), core.NewRect(0, 0, 2, 2)},
		{"partial cells", image.Rect(4, 8, 12, 20), core.NewRect(0, 0, 2, 2)},
		{"negative origin", image.Rect(-4, -4, 4, 4), core.NewRect(-1, -1, 2, 2)},
		{"empty", image.Rectangle{}, core.Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CellSpan(tc.r, 8, 16); got != tc.expected {
				t.Errorf("CellSpan() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestShade(t *testing.T) {
	tests := []struct {
		opacity  float64
		expected rune
	}{
		{1, '█'},
		{0.6, '▓'},
		{0.3, '▒'},
		{0.1, '░'},
	}
	for _, tc := range tests {
		if got := Shade(tc.opacity); got != tc.expected {
			t.Errorf("Shade(%v) = %q, expected %q", tc.opacity, got, tc.expected)
		}
	}
}

func TestDrawLeavesCameraAlone(t *testing.T) {
	w := world.New()
	w.Player.Entity.Pos.X = 600
	buf := NewBuffer(640, 480)

	Draw(buf, w)
	if w.Offset() != (world.Vec2{}) {
		t.Errorf("Draw() moved the camera to %+v", w.Offset())
	}

	Focus(buf, w)
	if w.Offset().X <= 0 {
		t.Errorf("Focus() Offset().X = %v, expected the camera to follow", w.Offset().X)
	}
}
