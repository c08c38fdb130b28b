// Package render draws session views onto a tcell screen. It is a pure
// consumer of the engine's published state and holds no game logic.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lite-cycles/engine"
	"github.com/lixenwraith/lite-cycles/game"
)

// Neon palette
var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleBorder  = styleDefault.Foreground(tcell.NewRGBColor(20, 20, 80))
	styleP1      = styleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
	styleP2      = styleDefault.Foreground(tcell.NewRGBColor(255, 128, 0))
	styleOverlap = styleDefault.Foreground(tcell.ColorWhite)
	styleDead    = styleDefault.Foreground(tcell.ColorRed)
	styleText    = styleDefault.Foreground(tcell.ColorWhite)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
	styleTitle   = styleDefault.Foreground(tcell.NewRGBColor(0, 255, 255)).Bold(true)
)

// Renderer draws frames onto a screen
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer for the screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame for the view's state and shows it
func (r *Renderer) Draw(v engine.View) {
	r.screen.Clear()

	switch v.State {
	case engine.StateMenu:
		r.drawMenu()
	case engine.StatePlaying:
		r.drawArena(v)
		r.drawHUD(v)
	case engine.StateGameOver:
		r.drawArena(v)
		r.drawHUD(v)
		r.drawGameOver(v)
	}

	r.screen.Show()
}

// arenaOrigin centers the playfield, leaving the top row for the HUD
func (r *Renderer) arenaOrigin(snap *game.Snapshot) (ox, oy int) {
	sw, sh := r.screen.Size()
	ox = (sw - snap.Width - 2) / 2
	oy = (sh - snap.Height - 2 + 1) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 1 {
		oy = 1
	}
	return ox, oy
}

func (r *Renderer) drawArena(v engine.View) {
	snap := &v.Snap
	ox, oy := r.arenaOrigin(snap)

	// Border one cell outside the grid
	for x := -1; x <= snap.Width; x++ {
		r.screen.SetContent(ox+x+1, oy, '▄', nil, styleBorder)
		r.screen.SetContent(ox+x+1, oy+snap.Height+1, '▀', nil, styleBorder)
	}
	for y := 0; y < snap.Height; y++ {
		r.screen.SetContent(ox, oy+y+1, '█', nil, styleBorder)
		r.screen.SetContent(ox+snap.Width+1, oy+y+1, '█', nil, styleBorder)
	}

	for p, mask := range snap.Trails {
		r.screen.SetContent(ox+p.X+1, oy+p.Y+1, '█', nil, trailStyle(mask))
	}

	for _, c := range snap.Cycles {
		style := styleP1
		if c.ID == game.Player2 {
			style = styleP2
		}
		head := '█'
		if !c.Alive {
			head = 'X'
			style = styleDead
		}
		r.screen.SetContent(ox+c.Pos.X+1, oy+c.Pos.Y+1, head, nil, style.Bold(true))
	}
}

// trailStyle picks the owner's color, white where both trails overlap
func trailStyle(mask game.TrailMask) tcell.Style {
	p1 := mask.Has(game.Player1)
	p2 := mask.Has(game.Player2)
	switch {
	case p1 && p2:
		return styleOverlap
	case p2:
		return styleP2
	default:
		return styleP1
	}
}

func (r *Renderer) drawHUD(v engine.View) {
	hud := fmt.Sprintf(" %s   P1 %d : %d P2   Draws %d ",
		v.Mode, v.Player1Wins, v.Player2Wins, v.Draws)
	sw, _ := r.screen.Size()
	r.drawText((sw-len([]rune(hud)))/2, 0, hud, styleDim)
}

// drawText writes a string starting at (x, y)
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawTextCentered writes a string centered on the given row
func (r *Renderer) drawTextCentered(y int, text string, style tcell.Style) {
	sw, _ := r.screen.Size()
	r.drawText((sw-len([]rune(text)))/2, y, text, style)
}
