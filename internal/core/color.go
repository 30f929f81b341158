package core

import "image/color"

// Color is a foreground colour for a screen cell, drawn from a small
// ANSI-compatible palette.
type Color uint8

// Palette colours.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
)

// palette holds the approximate RGB value of every colour after the default.
var palette = [...]color.RGBA{
	ColorRed:           {R: 0xcd, G: 0x00, B: 0x00, A: 0xff},
	ColorGreen:         {R: 0x00, G: 0xcd, B: 0x00, A: 0xff},
	ColorYellow:        {R: 0xcd, G: 0xcd, B: 0x00, A: 0xff},
	ColorBlue:          {R: 0x00, G: 0x00, B: 0xee, A: 0xff},
	ColorMagenta:       {R: 0xcd, G: 0x00, B: 0xcd, A: 0xff},
	ColorCyan:          {R: 0x00, G: 0xcd, B: 0xcd, A: 0xff},
	ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	ColorBrightRed:     {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	ColorBrightGreen:   {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	ColorBrightYellow:  {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	ColorBrightBlue:    {R: 0x5c, G: 0x5c, B: 0xff, A: 0xff},
	ColorBrightMagenta: {R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	ColorBrightCyan:    {R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
}

// RGB returns the palette value of c. ColorDefault maps to white.
func (c Color) RGB() color.RGBA {
	if c == ColorDefault || int(c) >= len(palette) {
		return palette[ColorWhite]
	}
	return palette[c]
}

// Nearest returns the palette colour closest to c.
func Nearest(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)

	best, bestDist := ColorWhite, -1
	for i := ColorRed; int(i) < len(palette); i++ {
		p := palette[i]
		dr, dg, db := r8-int(p.R), g8-int(p.G), b8-int(p.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
