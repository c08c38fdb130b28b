package game

// Start describes one cycle's spawn cell and initial heading
type Start struct {
	Pos     Point
	Heading Heading
}

// DefaultStarts places the cycles on the quarter-width columns at mid
// height, facing each other
func DefaultStarts(g Grid) [2]Start {
	return [2]Start{
		{Pos: Point{g.Width / 4, g.Height / 2}, Heading: Right},
		{Pos: Point{3 * g.Width / 4, g.Height / 2}, Heading: Left},
	}
}

// World holds one round's mutable simulation state. All mutation
// happens inside Step on the caller's goroutine.
type World struct {
	grid    Grid
	cycles  [2]*Cycle
	trails  *TrailStore
	tick    uint64
	outcome Outcome
}

// NewWorld starts a round with the given spawn points. The spawn cells
// are recorded into the trails immediately, so a cycle's trail always
// includes its current cell.
func NewWorld(grid Grid, starts [2]Start) *World {
	w := &World{
		grid:   grid,
		trails: NewTrailStore(),
	}
	ids := [2]CycleID{Player1, Player2}
	for i, s := range starts {
		w.cycles[i] = NewCycle(ids[i], s.Pos, s.Heading)
		w.trails.Record(ids[i], s.Pos.X, s.Pos.Y)
	}
	return w
}

// Grid returns the arena dimensions
func (w *World) Grid() Grid {
	return w.grid
}

// Cycle returns the cycle with the given ID, or nil
func (w *World) Cycle(id CycleID) *Cycle {
	for _, c := range w.cycles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Outcome returns the current round result
func (w *World) Outcome() Outcome {
	return w.outcome
}

// Tick returns the number of completed simulation steps
func (w *World) Tick() uint64 {
	return w.tick
}

// Step advances every alive cycle one cell and resolves collisions.
// Candidate cells are computed from the pre-tick state before any trail
// is written, so the evaluation order of the cycles cannot affect the
// result. Once the outcome is decided Step becomes a no-op.
func (w *World) Step() {
	if w.outcome != Ongoing {
		return
	}
	w.tick++

	for _, c := range w.cycles {
		if c.Alive {
			c.latchHeading()
		}
	}

	var candidate [2]Point
	var crashed [2]bool
	for i, c := range w.cycles {
		if !c.Alive {
			continue
		}
		dx, dy := c.Heading.Delta()
		candidate[i] = Point{c.Pos.X + dx, c.Pos.Y + dy}
	}

	for i, c := range w.cycles {
		if !c.Alive {
			continue
		}
		p := candidate[i]
		if !w.grid.InBounds(p.X, p.Y) || w.trails.Occupied(p.X, p.Y) {
			crashed[i] = true
		}
	}

	// Head-on: both cycles claim the same cell in the same tick
	if w.cycles[0].Alive && w.cycles[1].Alive && candidate[0] == candidate[1] {
		crashed[0] = true
		crashed[1] = true
	}

	for i, c := range w.cycles {
		if !c.Alive || crashed[i] {
			continue
		}
		c.Pos = candidate[i]
		w.trails.Record(c.ID, c.Pos.X, c.Pos.Y)
	}
	for i, c := range w.cycles {
		if crashed[i] {
			c.Alive = false
		}
	}

	w.resolveOutcome()
}

func (w *World) resolveOutcome() {
	alive := 0
	var survivor *Cycle
	for _, c := range w.cycles {
		if c.Alive {
			alive++
			survivor = c
		}
	}
	switch alive {
	case 0:
		w.outcome = Draw
	case 1:
		if survivor.ID == Player1 {
			w.outcome = Player1Wins
		} else {
			w.outcome = Player2Wins
		}
	}
}
