package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorRed})
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v", got)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(-2, -2, 4, 4), Cell{Rune: '#', Color: ColorBlue})

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := ' '
			if x < 2 && y < 2 {
				want = '#'
			}
			if s.Get(x, y) != want {
				t.Errorf("(%d, %d) = %q, expected %q", x, y, s.Get(x, y), want)
			}
		}
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(s.Bounds(), Cell{Rune: 'X'})
	s.Clear()
	if strings.Contains(s.String(), "X") {
		t.Error("Clear() left content behind")
	}

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("Resize() size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", ColorDefault)
	s.DrawText(1, 1, "xyz", ColorDefault) // clipped

	if got := s.String(); got != "abc\n xy" {
		t.Errorf("String() = %q, expected %q", got, "abc\n xy")
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
