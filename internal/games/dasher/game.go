// Package dasher implements a side-scrolling runner: the player jumps over
// three drifting nebulae while the skyline scrolls, until a collision or the
// finish line decides the run.
package dasher

import (
	"math"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

// Game implements core.Game for the runner.
type Game struct {
	cfg     config.DasherConfig
	runtime core.RuntimeConfig
	world   World
	layers  []Layer
	verdict Verdict
	paused  bool

	elapsed    float64 // seconds of unpaused play before the verdict
	bannerTime float64 // seconds since the verdict
}

// New creates a runner using the given configuration.
func New(cfg config.DasherConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dasher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Window.Title != "" {
		return g.cfg.Window.Title
	}
	return "Dapper Dasher!"
}

// Reset starts a fresh run. The world is defined in pixels, so the screen
// size only affects rendering.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg)
	g.layers = NewLayers(g.cfg.Parallax)
	g.verdict = VerdictPlaying
	g.paused = false
	g.elapsed = 0
	g.bannerTime = 0
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && g.verdict == VerdictPlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The skyline keeps scrolling behind the verdict banner.
	for i := range g.layers {
		g.layers[i] = g.layers[i].Advance(dt)
	}

	if g.verdict != VerdictPlaying {
		g.bannerTime += dt
		return core.StepResult{State: g.State()}
	}

	out := g.world.Step(in.Has(core.ActionJump), dt)
	g.elapsed += dt
	g.verdict = Decide(out)

	return core.StepResult{State: g.State()}
}

// score is the distance the world has scrolled, in whole pixels.
func (g *Game) score() int {
	return int(math.Abs(g.world.Physics.ObstacleVelocity) * g.elapsed)
}

// Verdict returns the current render decision.
func (g *Game) Verdict() Verdict {
	return g.verdict
}

// World returns a copy of the simulation state.
func (g *Game) World() World {
	return g.world
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.verdict != VerdictPlaying,
		Won:      g.verdict == VerdictWin,
		Paused:   g.paused,
		Elapsed:  g.elapsed,
	}
}

var _ core.Game = (*Game)(nil)
