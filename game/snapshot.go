package game

// CycleState is a cycle's published per-tick state
type CycleState struct {
	ID      CycleID
	Pos     Point
	Heading Heading
	Alive   bool
}

// Snapshot is a detached, read-only view of the world published once
// per tick. The trail map is a copy; consumers never see later
// mutations.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Cycles  [2]CycleState
	Outcome Outcome
	Trails  map[Point]TrailMask
}

// Snapshot publishes the current world state
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    w.tick,
		Width:   w.grid.Width,
		Height:  w.grid.Height,
		Outcome: w.outcome,
		Trails:  w.trails.copyCells(),
	}
	for i, c := range w.cycles {
		s.Cycles[i] = CycleState{
			ID:      c.ID,
			Pos:     c.Pos,
			Heading: c.Heading,
			Alive:   c.Alive,
		}
	}
	return s
}

// Cycle returns the state of the cycle with the given ID
func (s *Snapshot) Cycle(id CycleID) (CycleState, bool) {
	for _, c := range s.Cycles {
		if c.ID == id {
			return c, true
		}
	}
	return CycleState{}, false
}

// InBounds reports whether the cell lies inside the arena
func (s *Snapshot) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// Occupied reports whether any trail contains the cell
func (s *Snapshot) Occupied(x, y int) bool {
	return s.Trails[Point{x, y}] != 0
}

// Blocked reports whether moving into the cell crashes a cycle
func (s *Snapshot) Blocked(x, y int) bool {
	return !s.InBounds(x, y) || s.Occupied(x, y)
}
