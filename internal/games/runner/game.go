// Package runner implements the Desert Runner endless runner game.
// The runner jumps over tree clusters scrolling in from the right while a
// bird flies overhead; the score grows with survival time.
package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sim"
)

// Smallest terminal the game is drawn in. Smaller screens pause the world.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Game adapts the simulation to the platform game contract.
type Game struct {
	state   *sim.State
	clock   sim.Clock
	latch   sim.Latch
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	scroll  float64 // Ground texture offset in world units
}

// New creates a Desert Runner game with the given tuning.
func New(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Desert Runner"
}

// Reset discards the world and waits for the first run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.clock = sim.Clock{}
	g.latch.Take()
	g.state = sim.New(g.cfg, sim.NewRand(runtime.Seed))
	g.scroll = 0
}

// Resize adapts the game to a new screen size without touching the world.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// ready reports whether the screen can show the game.
func (g *Game) ready() bool {
	return g.runtime.ScreenW >= MinScreenW && g.runtime.ScreenH >= MinScreenH
}

// Step advances the game by one frame lasting dt.
//
// Input outside a run starts one. While the screen is too small the world
// is frozen and input stays latched for the first usable frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.latch.RequestRestart()
	}
	if in.Has(core.ActionJump) {
		if g.state.Running() {
			g.latch.RequestJump()
		} else {
			g.latch.RequestRestart()
		}
	}

	delta := dt.Seconds()
	if !g.ready() {
		g.clock.Advance(delta)
		return g.result(sim.Step(g.state, sim.Frame{Pending: true}))
	}

	jump, restart := g.latch.Take()
	res := sim.Step(g.state, g.clock.Frame(delta, jump, restart))
	if g.state.Running() && !res.Restarted {
		g.scroll -= g.cfg.Physics.FloorSpeed * delta
	}
	return g.result(res)
}

func (g *Game) result(res sim.Result) core.StepResult {
	return core.StepResult{
		State:     g.State(),
		Spawned:   res.Spawned,
		Collided:  res.Collided(),
		Restarted: res.Restarted,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     int(math.Floor(g.state.Score)),
		ScoreText: g.state.ScoreText(),
		Running:   g.state.Running(),
		GameOver:  g.state.GameOver(),
	}
}
