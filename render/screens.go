package render

import (
	"github.com/lixenwraith/lite-cycles/engine"
	"github.com/lixenwraith/lite-cycles/game"
)

func (r *Renderer) drawMenu() {
	_, sh := r.screen.Size()
	y := sh/2 - 5

	r.drawTextCentered(y, "L I T E   C Y C L E S", styleTitle)
	r.drawTextCentered(y+2, "1 - Two Player", styleText)
	r.drawTextCentered(y+3, "2 - Vs AI", styleText)
	r.drawTextCentered(y+5, "Player 1: arrow keys    Player 2: WASD", styleDim)
	r.drawTextCentered(y+6, "Don't hit a wall or a light trail", styleDim)
	r.drawTextCentered(y+8, "ESC - Quit", styleDim)
}

func (r *Renderer) drawGameOver(v engine.View) {
	_, sh := r.screen.Size()
	y := sh / 2

	var banner string
	var style = styleText
	switch v.Snap.Outcome {
	case game.Draw:
		banner = "T I E   G A M E"
	case game.Player1Wins:
		banner = "P L A Y E R  1   W I N S"
		style = styleP1
	case game.Player2Wins:
		if v.Mode == engine.VsAI {
			banner = "A I   W I N S"
		} else {
			banner = "P L A Y E R  2   W I N S"
		}
		style = styleP2
	}

	r.drawTextCentered(y-1, banner, style.Bold(true))
	r.drawTextCentered(y+1, "R - Restart    M - Menu", styleDim)
}
