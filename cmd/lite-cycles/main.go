package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lite-cycles/ai"
	"github.com/lixenwraith/lite-cycles/audio"
	"github.com/lixenwraith/lite-cycles/constants"
	"github.com/lixenwraith/lite-cycles/engine"
	"github.com/lixenwraith/lite-cycles/game"
	"github.com/lixenwraith/lite-cycles/input"
	"github.com/lixenwraith/lite-cycles/render"
)

var (
	widthFlag  = flag.Int("width", 0, "Arena width in cells (0 = fit terminal)")
	heightFlag = flag.Int("height", 0, "Arena height in cells (0 = fit terminal)")
	tickFlag   = flag.Duration("tick", constants.DefaultTickInterval, "Simulation tick interval")
	seedFlag   = flag.Int64("seed", 0, "AI random seed (0 = time-based)")
	aiFlag     = flag.String("ai", "random", "AI strategy: random, clearance")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "lite-cycles crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	grid, err := arenaSize(screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var strategy ai.Strategy
	switch *aiFlag {
	case "clearance":
		strategy = ai.NewClearance(rng)
	default:
		strategy = ai.NewRandomSafe(rng)
	}

	cfg := audio.LoadAudioConfig()
	if *muteFlag {
		cfg.Enabled = false
	}
	sounds := audio.NewSoundManager(cfg)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		sounds = audio.NewSoundManager(&audio.AudioConfig{Enabled: false})
	}
	defer sounds.Cleanup()

	session, err := engine.NewSession(engine.Config{
		Grid:     grid,
		Strategy: strategy,
		Sounds:   sounds,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		os.Exit(1)
	}

	run(screen, session)
}

// arenaSize derives the grid from flags or the terminal dimensions,
// reserving rows for the HUD and border
func arenaSize(screen tcell.Screen) (game.Grid, error) {
	w, h := *widthFlag, *heightFlag
	if w == 0 || h == 0 {
		sw, sh := screen.Size()
		if sw > 0 && sh > 0 {
			w = sw - 4
			h = sh - 5
		} else {
			w = constants.DefaultGridWidth
			h = constants.DefaultGridHeight
		}
	}
	if w < constants.MinGridWidth {
		w = constants.MinGridWidth
	}
	if h < constants.MinGridHeight {
		h = constants.MinGridHeight
	}
	return game.NewGrid(w, h)
}

// run owns the event and tick loop. Key events arrive on a goroutine
// channel and are applied between ticks; the simulation itself steps
// only from the ticker.
func run(screen tcell.Screen, session *engine.Session) {
	interval := *tickFlag
	if interval < constants.MinTickInterval {
		interval = constants.MinTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bindings := input.DefaultBindings()
	renderer := render.New(screen)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	renderer.Draw(session.View())

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !apply(session, bindings.Lookup(ev)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Draw(session.View())
			}

		case <-ticker.C:
			session.Tick()
			renderer.Draw(session.View())
		}
	}
}

// apply forwards a decoded action to the session. Returns false on quit.
func apply(session *engine.Session, act input.Action) bool {
	switch act.Kind {
	case input.ActionQuit:
		return false
	case input.ActionSelectTwoPlayer:
		session.SelectMode(engine.TwoPlayer)
	case input.ActionSelectVsAI:
		session.SelectMode(engine.VsAI)
	case input.ActionRestart:
		session.Restart()
	case input.ActionToMenu:
		session.ToMenu()
	case input.ActionTurn:
		session.Turn(act.Player, act.Heading)
	}
	return true
}
