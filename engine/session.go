// Package engine orchestrates a play session: the Menu, Playing and
// GameOver flow, per-tick simulation stepping, AI decisions and the
// published view consumed by the renderer.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/lite-cycles/ai"
	"github.com/lixenwraith/lite-cycles/engine/fsm"
	"github.com/lixenwraith/lite-cycles/game"
)

// Session states
const (
	StateMenu fsm.StateID = iota + 1
	StatePlaying
	StateGameOver
)

// Session events
const (
	eventModeSelected fsm.Event = iota + 1
	eventRoundOver
	eventRestart
	eventToMenu
)

// Mode selects the opponent type for a round
type Mode uint8

const (
	TwoPlayer Mode = iota
	VsAI
)

func (m Mode) String() string {
	switch m {
	case TwoPlayer:
		return "Two Player"
	case VsAI:
		return "Vs AI"
	default:
		return "Unknown"
	}
}

// Sounds is the audio hook surface. A nil Sounds disables audio.
type Sounds interface {
	PlayCrash()
	StartHum()
	StopHum()
}

// Config wires a session together
type Config struct {
	Grid     game.Grid
	Strategy ai.Strategy // opponent brain, nil gets the default random-safe one
	Seed     int64       // seeds the default strategy when Strategy is nil
	Sounds   Sounds      // optional
}

// Session owns one player's sitting: the state machine, the current
// round's world and the session-local win tally. All methods must be
// called from the driving loop's goroutine.
type Session struct {
	grid     game.Grid
	mode     Mode
	strategy ai.Strategy
	sounds   Sounds

	machine *fsm.Machine[*Session]
	world   *game.World
	snap    game.Snapshot

	wins  map[game.CycleID]int
	draws int
}

// NewSession validates the config and enters the Menu state
func NewSession(cfg Config) (*Session, error) {
	if _, err := game.NewGrid(cfg.Grid.Width, cfg.Grid.Height); err != nil {
		return nil, err
	}
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = ai.NewRandomSafe(rand.New(rand.NewSource(cfg.Seed)))
	}

	s := &Session{
		grid:     cfg.Grid,
		strategy: strategy,
		sounds:   cfg.Sounds,
		wins:     make(map[game.CycleID]int),
	}
	s.machine = buildMachine()
	if err := s.machine.Init(s, StateMenu); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}
	return s, nil
}

// buildMachine defines the Menu -> Playing -> GameOver graph. Events
// with no transition in the active state are ignored by the machine,
// which is how state-inappropriate inputs get dropped.
func buildMachine() *fsm.Machine[*Session] {
	m := fsm.New[*Session]()

	m.AddState(StateMenu, "menu").
		On(eventModeSelected, StatePlaying)

	m.AddState(StatePlaying, "playing").
		Enter(func(s *Session) { s.resetRound() }).
		Enter(func(s *Session) {
			if s.sounds != nil {
				s.sounds.StartHum()
			}
		}).
		Exit(func(s *Session) {
			if s.sounds != nil {
				s.sounds.StopHum()
			}
		}).
		On(eventRoundOver, StateGameOver)

	m.AddState(StateGameOver, "game over").
		Enter(func(s *Session) {
			if s.sounds != nil {
				s.sounds.PlayCrash()
			}
		}).
		On(eventRestart, StatePlaying).
		On(eventToMenu, StateMenu)

	return m
}

// resetRound rebuilds the world with fresh cycles and empty trails
func (s *Session) resetRound() {
	s.world = game.NewWorld(s.grid, game.DefaultStarts(s.grid))
	s.snap = s.world.Snapshot()
}

// State returns the active session state
func (s *Session) State() fsm.StateID {
	return s.machine.Active()
}

// Mode returns the opponent mode chosen at the menu
func (s *Session) Mode() Mode {
	return s.mode
}

// SelectMode starts a round from the Menu. Ignored elsewhere.
func (s *Session) SelectMode(m Mode) {
	if s.machine.Active() != StateMenu {
		return
	}
	s.mode = m
	s.machine.Send(s, eventModeSelected)
}

// Restart replays the finished round with the same mode. Ignored
// outside GameOver.
func (s *Session) Restart() {
	s.machine.Send(s, eventRestart)
}

// ToMenu returns to mode selection. Ignored outside GameOver.
func (s *Session) ToMenu() {
	s.machine.Send(s, eventToMenu)
}

// Turn buffers a turn request for a cycle. During VsAI rounds the
// second cycle belongs to the computer and human requests for it are
// dropped.
func (s *Session) Turn(id game.CycleID, h game.Heading) {
	if s.machine.Active() != StatePlaying {
		return
	}
	if s.mode == VsAI && id == game.Player2 {
		return
	}
	if c := s.world.Cycle(id); c != nil {
		c.SetPending(h)
	}
}

// Tick advances the simulation one step when a round is in progress.
// The AI sees the pre-tick snapshot, exactly like a human reacting to
// the last rendered frame.
func (s *Session) Tick() {
	if s.machine.Active() != StatePlaying {
		return
	}

	if s.mode == VsAI {
		pre := s.world.Snapshot()
		h := s.strategy.Decide(&pre, game.Player2)
		if c := s.world.Cycle(game.Player2); c != nil {
			c.SetPending(h)
		}
	}

	s.world.Step()
	s.snap = s.world.Snapshot()

	if out := s.world.Outcome(); out != game.Ongoing {
		s.recordOutcome(out)
		s.machine.Send(s, eventRoundOver)
	}
}

func (s *Session) recordOutcome(out game.Outcome) {
	switch out {
	case game.Draw:
		s.draws++
	default:
		if id := out.Winner(); id != 0 {
			s.wins[id]++
		}
	}
}
