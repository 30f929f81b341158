package core

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), NewRect(5, 5, 5, 5)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), Rect{}},
		{"adjacent", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), Rect{}},
		{"negative origin", NewRect(-5, -5, 10, 10), NewRect(0, 0, 80, 24), NewRect(0, 0, 5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersect(tc.b); got != tc.expected {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.expected)
			}
			if got := tc.b.Intersect(tc.a); got != tc.expected {
				t.Errorf("Intersect() (reversed) = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() = true for 20x15 rect")
	}
	if !NewRect(0, 0, 0, 5).Empty() {
		t.Error("Empty() = false for zero-width rect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		expected Color
	}{
		{"palette red", ColorRed, ColorRed},
		{"palette blue", ColorBlue, ColorBlue},
		{"palette orange", ColorOrange, ColorOrange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Nearest(tc.c.RGB()); got != tc.expected {
				t.Errorf("Nearest() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
