package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Buffer is a headless Renderer drawing into an in-memory RGBA image.
type Buffer struct {
	img        *image.RGBA
	background color.Color
}

// NewBuffer creates a black w x h pixel buffer.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: color.Black,
	}
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	bounds := b.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// Clear fills the buffer with the background colour.
func (b *Buffer) Clear() {
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
}

// DrawRect blends c over r, clipped to the buffer.
func (b *Buffer) DrawRect(r image.Rectangle, c color.Color) {
	draw.Draw(b.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawBitmap scales img into r with nearest-neighbour sampling.
func (b *Buffer) DrawBitmap(r image.Rectangle, img image.Image) {
	if r.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(b.img, r, img, img.Bounds(), xdraw.Over, nil)
}

// Image returns the underlying image. It is overwritten by the next frame.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// WritePNG encodes the current frame as PNG.
func (b *Buffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("render: cannot encode frame: %w", err)
	}
	return nil
}

// SavePNG writes the current frame to path.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: cannot create %s: %w", path, err)
	}
	if err := b.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var _ Renderer = (*Buffer)(nil)
