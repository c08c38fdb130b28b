// Package game implements the deterministic light-cycle simulation:
// arena grid, per-cycle trails, tick-wise movement and collision
// resolution. It performs no I/O and is safe to drive from tests at
// any tick rate.
package game

// Heading is a cycle's axis-aligned direction of travel.
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Delta returns the (dx, dy) cell offset for one step in this heading.
// Up decreases Y, Down increases Y (screen coordinates).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return h
	}
}

// Orthogonal returns the two headings perpendicular to h
func (h Heading) Orthogonal() [2]Heading {
	switch h {
	case Up, Down:
		return [2]Heading{Left, Right}
	default:
		return [2]Heading{Up, Down}
	}
}

// Valid reports whether h is one of the four defined headings
func (h Heading) Valid() bool {
	return h <= Right
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
