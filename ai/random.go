package ai

import (
	"math/rand"

	"github.com/lixenwraith/lite-cycles/constants"
	"github.com/lixenwraith/lite-cycles/game"
)

// RandomSafe picks uniformly among the safe candidate headings, with
// the current heading entered multiple times so the cycle prefers to
// keep going straight. With no safe candidate it holds course; the
// crash is unavoidable either way.
type RandomSafe struct {
	rng *rand.Rand
}

// NewRandomSafe creates the default strategy with the given source
func NewRandomSafe(rng *rand.Rand) *RandomSafe {
	return &RandomSafe{rng: rng}
}

// Decide implements Strategy
func (r *RandomSafe) Decide(snap *game.Snapshot, self game.CycleID) game.Heading {
	me, ok := snap.Cycle(self)
	if !ok {
		return game.Up
	}

	safe := safeHeadings(snap, me)
	if len(safe) == 0 {
		return me.Heading
	}

	pool := make([]game.Heading, 0, len(safe)+constants.AIStraightBias-1)
	for _, h := range safe {
		if h == me.Heading {
			for i := 0; i < constants.AIStraightBias; i++ {
				pool = append(pool, h)
			}
		} else {
			pool = append(pool, h)
		}
	}
	return pool[r.rng.Intn(len(pool))]
}
