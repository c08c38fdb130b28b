// Package ai implements the computer opponent. Strategies are pure
// decision functions over a world snapshot; randomness comes from an
// injected source so behavior is reproducible under a fixed seed.
package ai

import (
	"github.com/lixenwraith/lite-cycles/game"
)

// Strategy proposes a heading for the given cycle each tick
type Strategy interface {
	Decide(snap *game.Snapshot, self game.CycleID) game.Heading
}

// candidates returns the headings a cycle may turn to this tick:
// straight ahead plus the two orthogonals. Reversal is excluded by
// construction, matching the human input rule.
func candidates(h game.Heading) [3]game.Heading {
	orth := h.Orthogonal()
	return [3]game.Heading{h, orth[0], orth[1]}
}

// safeHeadings filters candidates whose immediate next cell is inside
// the arena and free of every trail
func safeHeadings(snap *game.Snapshot, self game.CycleState) []game.Heading {
	var safe []game.Heading
	for _, h := range candidates(self.Heading) {
		dx, dy := h.Delta()
		if !snap.Blocked(self.Pos.X+dx, self.Pos.Y+dy) {
			safe = append(safe, h)
		}
	}
	return safe
}
