package game

// CycleID identifies one of the two cycles
type CycleID uint8

const (
	Player1 CycleID = 1
	Player2 CycleID = 2
)

// TrailMask is a bit set of cycle IDs claiming a cell. Both cycles may
// claim the same cell independently.
type TrailMask uint8

// Has reports whether the cycle's trail includes the cell
func (m TrailMask) Has(id CycleID) bool {
	return m&(1<<id) != 0
}

// TrailStore records every cell each cycle has occupied during the
// current round, including its current cell. Cells are never removed
// mid-round; Reset clears everything for a new round.
type TrailStore struct {
	cells map[Point]TrailMask
}

// NewTrailStore creates an empty store
func NewTrailStore() *TrailStore {
	return &TrailStore{cells: make(map[Point]TrailMask)}
}

// Occupied reports whether any cycle's trail contains the cell
func (t *TrailStore) Occupied(x, y int) bool {
	return t.cells[Point{x, y}] != 0
}

// OccupiedBy returns the IDs whose trails contain the cell, ascending
func (t *TrailStore) OccupiedBy(x, y int) []CycleID {
	mask := t.cells[Point{x, y}]
	if mask == 0 {
		return nil
	}
	ids := make([]CycleID, 0, 2)
	for _, id := range []CycleID{Player1, Player2} {
		if mask.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Record appends the cell to the cycle's trail. Recording the same cell
// twice is a no-op.
func (t *TrailStore) Record(id CycleID, x, y int) {
	p := Point{x, y}
	t.cells[p] |= 1 << id
}

// Len returns the number of distinct occupied cells
func (t *TrailStore) Len() int {
	return len(t.cells)
}

// Reset discards all trails at round restart
func (t *TrailStore) Reset() {
	t.cells = make(map[Point]TrailMask)
}

// copyCells produces a detached view for snapshots
func (t *TrailStore) copyCells() map[Point]TrailMask {
	out := make(map[Point]TrailMask, len(t.cells))
	for p, m := range t.cells {
		out[p] = m
	}
	return out
}
