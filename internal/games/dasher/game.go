package dasher

import (
	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// Game adapts a World to the terminal driver: it turns input frames into
// ticks, handles pausing, and renders into a character screen.
type Game struct {
	cfg    config.DasherConfig
	world  *World
	paused bool
}

// New creates a game for the given (validated) configuration.
// Reset must be called before the first Step.
func New(cfg config.DasherConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dasher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dapper Dasher"
}

// Reset starts a new run. The world is laid out in window pixels, so the
// terminal size does not affect it.
func (g *Game) Reset(core.RuntimeConfig) {
	g.world = NewWorld(g.cfg)
	g.paused = false
}

// Step advances the game by one driver tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Pausing an ended run would only freeze the scenery.
	if in.Has(core.ActionPause) && !g.world.Outcome().Terminal() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Tick(in.DT(), in.Has(core.ActionJump))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Outcome:  g.world.Outcome(),
		Paused:   g.paused,
		Elapsed:  g.world.Elapsed(),
		Progress: g.world.Progress(),
	}
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}
