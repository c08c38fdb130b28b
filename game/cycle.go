package game

// Cycle is one agent's moving token. The simulation owns it exclusively;
// it is created at round start and mutated only inside Step.
type Cycle struct {
	ID      CycleID
	Pos     Point
	Heading Heading
	Alive   bool

	// pending holds the last accepted turn input, applied at the start
	// of the next tick
	pending Heading
}

// NewCycle places a cycle at its starting cell facing h
func NewCycle(id CycleID, pos Point, h Heading) *Cycle {
	return &Cycle{
		ID:      id,
		Pos:     pos,
		Heading: h,
		Alive:   true,
		pending: h,
	}
}

// SetPending buffers a turn request for the next tick. A request
// opposite to the current heading is rejected and the previous pending
// value is kept, so two quick taps inside one tick cannot reverse the
// cycle. Returns whether the request was accepted.
func (c *Cycle) SetPending(h Heading) bool {
	if !c.Alive || !h.Valid() {
		return false
	}
	if h == c.Heading.Opposite() {
		return false
	}
	c.pending = h
	return true
}

// Pending returns the buffered heading for the next tick
func (c *Cycle) Pending() Heading {
	return c.pending
}

// latchHeading commits the buffered turn at tick start
func (c *Cycle) latchHeading() {
	c.Heading = c.pending
}
