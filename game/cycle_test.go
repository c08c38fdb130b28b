package game

import "testing"

// TestSetPendingRejectsReversal verifies the no-180-degree rule keeps
// the previous pending value
func TestSetPendingRejectsReversal(t *testing.T) {
	c := NewCycle(Player1, Point{5, 5}, Up)

	if c.SetPending(Down) {
		t.Error("reversal Up -> Down accepted")
	}
	if c.Pending() != Up {
		t.Errorf("Pending() = %s after rejected reversal, want Up", c.Pending())
	}

	if !c.SetPending(Left) {
		t.Error("orthogonal turn Up -> Left rejected")
	}
	if !c.SetPending(Right) {
		t.Error("orthogonal turn Up -> Right rejected")
	}
	if !c.SetPending(Up) {
		t.Error("same-heading input rejected")
	}
}

// TestSetPendingDoubleTapNoReversal verifies two quick inputs within
// one tick cannot reverse the cycle: the check uses the heading before
// the move, not the buffered value
func TestSetPendingDoubleTapNoReversal(t *testing.T) {
	c := NewCycle(Player1, Point{5, 5}, Up)

	if !c.SetPending(Left) {
		t.Fatal("first tap Up -> Left rejected")
	}
	// Down is still opposite the live heading, not the pending Left
	if c.SetPending(Down) {
		t.Error("second tap Down accepted before the turn applied")
	}
	if c.Pending() != Left {
		t.Errorf("Pending() = %s, want Left", c.Pending())
	}
}

// TestSetPendingInvalidAndDead verifies contract rejections
func TestSetPendingInvalidAndDead(t *testing.T) {
	c := NewCycle(Player1, Point{5, 5}, Up)
	if c.SetPending(Heading(9)) {
		t.Error("out-of-enum heading accepted")
	}

	c.Alive = false
	if c.SetPending(Left) {
		t.Error("dead cycle accepted a turn")
	}
}
