// Package fsm provides a small generic finite state machine driven by
// explicit events. States carry enter and exit actions; transitions may
// be guarded. Events with no matching transition in the active state
// are ignored, which lets callers forward raw input without filtering.
package fsm

import "fmt"

// StateID is a unique identifier for a state
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// Event triggers transitions. Values are defined by the caller.
type Event int

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect on state entry or exit
type ActionFunc[T any] func(ctx T)

// Transition links a state to a target on an event
type Transition[T any] struct {
	Event  Event
	Target StateID
	Guard  GuardFunc[T] // nil = always
}

// Node is one state in the machine
type Node[T any] struct {
	ID   StateID
	Name string

	onEnter     []ActionFunc[T]
	onExit      []ActionFunc[T]
	transitions []Transition[T]
}

// Enter registers an action run whenever this state is entered
func (n *Node[T]) Enter(fn ActionFunc[T]) *Node[T] {
	n.onEnter = append(n.onEnter, fn)
	return n
}

// Exit registers an action run whenever this state is left
func (n *Node[T]) Exit(fn ActionFunc[T]) *Node[T] {
	n.onExit = append(n.onExit, fn)
	return n
}

// On adds an unguarded transition to target
func (n *Node[T]) On(ev Event, target StateID) *Node[T] {
	return n.OnGuarded(ev, target, nil)
}

// OnGuarded adds a transition taken only when the guard passes
func (n *Node[T]) OnGuarded(ev Event, target StateID, guard GuardFunc[T]) *Node[T] {
	n.transitions = append(n.transitions, Transition[T]{Event: ev, Target: target, Guard: guard})
	return n
}

// Machine is the FSM runtime. T is the context type passed to guards
// and actions.
type Machine[T any] struct {
	nodes  map[StateID]*Node[T]
	active StateID
}

// New creates an empty machine
func New[T any]() *Machine[T] {
	return &Machine[T]{nodes: make(map[StateID]*Node[T])}
}

// AddState adds a node to the graph. IDs must be nonzero and unique.
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{ID: id, Name: name}
	m.nodes[id] = node
	return node
}

// Init enters the initial state and runs its enter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("fsm: initial state %d not defined", initial)
	}
	m.active = node.ID
	for _, fn := range node.onEnter {
		fn(ctx)
	}
	return nil
}

// Active returns the current state ID
func (m *Machine[T]) Active() StateID {
	return m.active
}

// ActiveName returns the current state's name, or "" before Init
func (m *Machine[T]) ActiveName() string {
	if n, ok := m.nodes[m.active]; ok {
		return n.Name
	}
	return ""
}

// Send delivers an event. The first matching transition whose guard
// passes is taken; exit actions of the old state run before enter
// actions of the new one. Returns whether a transition fired.
func (m *Machine[T]) Send(ctx T, ev Event) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, t := range node.transitions {
		if t.Event != ev {
			continue
		}
		if t.Guard != nil && !t.Guard(ctx) {
			continue
		}
		target, ok := m.nodes[t.Target]
		if !ok {
			return false
		}
		for _, fn := range node.onExit {
			fn(ctx)
		}
		m.active = target.ID
		for _, fn := range target.onEnter {
			fn(ctx)
		}
		return true
	}
	return false
}
