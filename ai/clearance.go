package ai

import (
	"math/rand"

	"github.com/lixenwraith/lite-cycles/constants"
	"github.com/lixenwraith/lite-cycles/game"
)

// Clearance scores each safe candidate by the free distance to the
// nearest wall or trail along that heading and keeps the candidates
// with the greatest clearance. Ties go to the current heading when it
// is among them, otherwise to a random choice.
type Clearance struct {
	rng *rand.Rand
}

// NewClearance creates the lookahead strategy with the given source
func NewClearance(rng *rand.Rand) *Clearance {
	return &Clearance{rng: rng}
}

// Decide implements Strategy
func (c *Clearance) Decide(snap *game.Snapshot, self game.CycleID) game.Heading {
	me, ok := snap.Cycle(self)
	if !ok {
		return game.Up
	}

	safe := safeHeadings(snap, me)
	if len(safe) == 0 {
		return me.Heading
	}

	best := -1
	var winners []game.Heading
	for _, h := range safe {
		d := clearance(snap, me.Pos, h)
		if d > best {
			best = d
			winners = winners[:0]
		}
		if d == best {
			winners = append(winners, h)
		}
	}

	for _, h := range winners {
		if h == me.Heading {
			return h
		}
	}
	return winners[c.rng.Intn(len(winners))]
}

// clearance walks from pos along h and counts free cells before the
// first obstruction, capped at AIMaxLookahead
func clearance(snap *game.Snapshot, pos game.Point, h game.Heading) int {
	dx, dy := h.Delta()
	x, y := pos.X, pos.Y
	dist := 0
	for dist < constants.AIMaxLookahead {
		x += dx
		y += dy
		if snap.Blocked(x, y) {
			break
		}
		dist++
	}
	return dist
}
