package engine

import (
	"github.com/lixenwraith/lite-cycles/engine/fsm"
	"github.com/lixenwraith/lite-cycles/game"
)

// View is the read-only frame state handed to the renderer. The
// embedded snapshot is already detached from the live world.
type View struct {
	State fsm.StateID
	Mode  Mode
	Snap  game.Snapshot

	Player1Wins int
	Player2Wins int
	Draws       int
}

// View publishes the current frame state
func (s *Session) View() View {
	return View{
		State:       s.machine.Active(),
		Mode:        s.mode,
		Snap:        s.snap,
		Player1Wins: s.wins[game.Player1],
		Player2Wins: s.wins[game.Player2],
		Draws:       s.draws,
	}
}
