package fsm

import "testing"

type ctx struct {
	log []string
}

const (
	stateA StateID = iota + 1
	stateB
	stateC
)

const (
	evGo Event = iota + 1
	evBack
	evUnknown
)

func record(s string) ActionFunc[*ctx] {
	return func(c *ctx) { c.log = append(c.log, s) }
}

// TestInitRunsEnterActions verifies Init enters the initial state
func TestInitRunsEnterActions(t *testing.T) {
	m := New[*ctx]()
	m.AddState(stateA, "a").Enter(record("enter a"))

	c := &ctx{}
	if err := m.Init(c, stateA); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if m.Active() != stateA {
		t.Errorf("Active() = %d, want stateA", m.Active())
	}
	if len(c.log) != 1 || c.log[0] != "enter a" {
		t.Errorf("log = %v, want [enter a]", c.log)
	}
}

// TestInitUnknownState verifies Init fails on an undefined state
func TestInitUnknownState(t *testing.T) {
	m := New[*ctx]()
	if err := m.Init(&ctx{}, stateA); err == nil {
		t.Error("Init on undefined state succeeded")
	}
}

// TestSendTransitionOrder verifies exit actions run before the target's
// enter actions
func TestSendTransitionOrder(t *testing.T) {
	m := New[*ctx]()
	m.AddState(stateA, "a").
		Exit(record("exit a")).
		On(evGo, stateB)
	m.AddState(stateB, "b").Enter(record("enter b"))

	c := &ctx{}
	if err := m.Init(c, stateA); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if !m.Send(c, evGo) {
		t.Fatal("Send(evGo) did not transition")
	}
	if m.Active() != stateB {
		t.Errorf("Active() = %d, want stateB", m.Active())
	}
	want := []string{"exit a", "enter b"}
	if len(c.log) != 2 || c.log[0] != want[0] || c.log[1] != want[1] {
		t.Errorf("log = %v, want %v", c.log, want)
	}
}

// TestSendUnmatchedEventIgnored verifies unknown events leave the state
// unchanged and report no transition
func TestSendUnmatchedEventIgnored(t *testing.T) {
	m := New[*ctx]()
	m.AddState(stateA, "a").On(evGo, stateB)
	m.AddState(stateB, "b")

	c := &ctx{}
	if err := m.Init(c, stateA); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if m.Send(c, evUnknown) {
		t.Error("unmatched event reported a transition")
	}
	if m.Active() != stateA {
		t.Errorf("Active() = %d after unmatched event, want stateA", m.Active())
	}
}

// TestGuardBlocksTransition verifies a failing guard skips the
// transition
func TestGuardBlocksTransition(t *testing.T) {
	open := false
	m := New[*ctx]()
	m.AddState(stateA, "a").
		OnGuarded(evGo, stateB, func(*ctx) bool { return open })
	m.AddState(stateB, "b")

	c := &ctx{}
	if err := m.Init(c, stateA); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if m.Send(c, evGo) {
		t.Error("guarded transition fired with a failing guard")
	}

	open = true
	if !m.Send(c, evGo) {
		t.Error("guarded transition did not fire with a passing guard")
	}
}

// TestRoundTrip verifies a state can be re-entered, rerunning its enter
// actions
func TestRoundTrip(t *testing.T) {
	m := New[*ctx]()
	m.AddState(stateA, "a").Enter(record("enter a")).On(evGo, stateB)
	m.AddState(stateB, "b").On(evBack, stateA)

	c := &ctx{}
	if err := m.Init(c, stateA); err != nil {
		t.Fatalf("Init: %v", err)
	}
	m.Send(c, evGo)
	m.Send(c, evBack)

	if m.Active() != stateA {
		t.Errorf("Active() = %d, want stateA", m.Active())
	}
	if len(c.log) != 2 {
		t.Errorf("enter a ran %d times, want 2", len(c.log))
	}
}
