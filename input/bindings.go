// Package input translates tcell key events into game actions. It does
// no game-logic filtering; the engine decides which actions apply in
// the current state.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lite-cycles/game"
)

// ActionKind classifies a decoded key press
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionSelectTwoPlayer
	ActionSelectVsAI
	ActionRestart
	ActionToMenu
	ActionTurn
)

// Action is a decoded key press. Player and Heading are set only for
// ActionTurn.
type Action struct {
	Kind    ActionKind
	Player  game.CycleID
	Heading game.Heading
}

// Bindings maps terminal keys to actions. Special keys (arrows, Esc)
// and printable runes are kept in separate tables, mirroring how tcell
// reports them.
type Bindings struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// DefaultBindings returns the standard key scheme: arrows steer player
// one, WASD steers player two, 1/2 select the mode, r restarts, m
// returns to the menu, Esc or Ctrl+C quits.
func DefaultBindings() *Bindings {
	turn := func(id game.CycleID, h game.Heading) Action {
		return Action{Kind: ActionTurn, Player: id, Heading: h}
	}
	return &Bindings{
		keys: map[tcell.Key]Action{
			tcell.KeyUp:     turn(game.Player1, game.Up),
			tcell.KeyDown:   turn(game.Player1, game.Down),
			tcell.KeyLeft:   turn(game.Player1, game.Left),
			tcell.KeyRight:  turn(game.Player1, game.Right),
			tcell.KeyEscape: {Kind: ActionQuit},
			tcell.KeyCtrlC:  {Kind: ActionQuit},
		},
		runes: map[rune]Action{
			'w': turn(game.Player2, game.Up),
			's': turn(game.Player2, game.Down),
			'a': turn(game.Player2, game.Left),
			'd': turn(game.Player2, game.Right),
			'1': {Kind: ActionSelectTwoPlayer},
			'2': {Kind: ActionSelectVsAI},
			'r': {Kind: ActionRestart},
			'm': {Kind: ActionToMenu},
		},
	}
}

// Lookup decodes a key event. Unbound keys return ActionNone. Rune
// lookups are case insensitive so a held shift does not drop inputs.
func (b *Bindings) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		if act, ok := b.runes[unicode.ToLower(ev.Rune())]; ok {
			return act
		}
		return Action{Kind: ActionNone}
	}
	if act, ok := b.keys[ev.Key()]; ok {
		return act
	}
	return Action{Kind: ActionNone}
}
