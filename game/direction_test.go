package game

import "testing"

// TestHeadingDelta verifies screen-coordinate step offsets
func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		h      Heading
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.h.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s.Delta() = (%d, %d), want (%d, %d)", tt.h, dx, dy, tt.dx, tt.dy)
		}
	}
}

// TestHeadingOpposite verifies reversal pairs
func TestHeadingOpposite(t *testing.T) {
	pairs := map[Heading]Heading{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for h, want := range pairs {
		if got := h.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", h, got, want)
		}
	}
}

// TestHeadingOrthogonal verifies the perpendicular pair excludes both
// the heading and its reverse
func TestHeadingOrthogonal(t *testing.T) {
	for _, h := range []Heading{Up, Down, Left, Right} {
		orth := h.Orthogonal()
		for _, o := range orth {
			if o == h || o == h.Opposite() {
				t.Errorf("%s.Orthogonal() contains %s", h, o)
			}
		}
	}
}

// TestHeadingValid verifies enum bounds checking
func TestHeadingValid(t *testing.T) {
	for _, h := range []Heading{Up, Down, Left, Right} {
		if !h.Valid() {
			t.Errorf("%s.Valid() = false", h)
		}
	}
	if Heading(4).Valid() {
		t.Error("Heading(4).Valid() = true, want false")
	}
}
