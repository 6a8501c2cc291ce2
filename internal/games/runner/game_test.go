package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/sim"
)

const frame = time.Second / 60

func newTestGame(seed int64) *Game {
	g := New(config.DefaultRunnerConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameStartsOnAnyInput(t *testing.T) {
	g := newTestGame(1)

	if g.State().Running {
		t.Fatal("game should wait for input before running")
	}

	res := g.Step(input(), frame)
	if res.State.Running {
		t.Fatal("game started without input")
	}

	res = g.Step(input(core.ActionJump), frame)
	if !res.Restarted || !res.State.Running {
		t.Errorf("jump key should start the run: %+v", res)
	}
	if g.state.Player.Y != 0 {
		t.Error("the starting key press must not also jump")
	}
}

func TestGameJumpWhileRunning(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionRestart), frame)

	g.Step(input(core.ActionJump), frame)

	if g.state.Player.Y <= 0 {
		t.Errorf("runner should be airborne, Y=%v", g.state.Player.Y)
	}
}

func TestGamePendingWhileScreenTooSmall(t *testing.T) {
	g := New(config.DefaultRunnerConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 3})

	res := g.Step(input(core.ActionJump), frame)
	if res.State.Running || res.Restarted {
		t.Fatalf("game must not start on a screen it cannot draw: %+v", res)
	}

	// The key press is held until the screen is usable
	g.Resize(80, 24)
	res = g.Step(input(), frame)
	if !res.Restarted || !res.State.Running {
		t.Errorf("latched start request should fire once ready: %+v", res)
	}
}

func TestGameOverThenRestart(t *testing.T) {
	g := newTestGame(4)
	g.Step(input(core.ActionJump), frame)
	for i := 0; i < 30; i++ {
		g.Step(input(), frame)
	}

	g.state.Obstacles = append(g.state.Obstacles, sim.Obstacle{X: -0.5, Scale: 1})
	res := g.Step(input(), frame)
	if !res.Collided || !res.State.GameOver {
		t.Fatalf("tree on the runner should end the run: %+v", res)
	}
	if res.State.Score == 0 {
		t.Error("score should have accumulated before the crash")
	}

	res = g.Step(input(core.ActionJump), frame)
	if !res.Restarted {
		t.Fatalf("any key after game over should restart: %+v", res)
	}
	if res.State.Score != 0 || res.State.ScoreText != "00000" {
		t.Errorf("restart should zero the score, got %d (%q)", res.State.Score, res.State.ScoreText)
	}
	if len(g.state.Obstacles) != 0 {
		t.Errorf("restart should clear trees, %d left", len(g.state.Obstacles))
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() core.GameState {
		g := newTestGame(12345)
		var state core.GameState
		for i := 0; i < 1500; i++ {
			in := input()
			if i%35 == 0 {
				in.Set(core.ActionJump)
			}
			state = g.Step(in, frame).State
			if state.GameOver {
				break
			}
		}
		return state
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("same seed and input diverged: %+v vs %+v", s1, s2)
	}
}

func TestResizeKeepsWorld(t *testing.T) {
	g := newTestGame(2)
	g.Step(input(core.ActionJump), frame)
	for i := 0; i < 20; i++ {
		g.Step(input(), frame)
	}
	before := g.State()

	g.Resize(120, 40)

	if g.State() != before {
		t.Errorf("resize changed the game: %+v -> %+v", before, g.State())
	}
}

func TestRenderStartPrompt(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Press any key to start!") {
		t.Errorf("start prompt missing:\n%s", out)
	}
	if row := screen.Row(21); row != strings.Repeat(string(GroundChar), 80) {
		t.Errorf("ground row = %q", row)
	}
	// Runner box [-1,0]x[0,2] lands on columns 9..12, rows 17..20
	if got := screen.Get(11, 17); got != RunnerHead {
		t.Errorf("runner head = %q, expected %q", got, RunnerHead)
	}
	if got := screen.Get(10, 18); got != RunnerBody {
		t.Errorf("runner body = %q, expected %q", got, RunnerBody)
	}
}

func TestRenderTreesAndScore(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionJump), frame)
	g.state.Obstacles = []sim.Obstacle{{X: 10, Scale: 1}}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Tree box [9.5,10.5]x[0,2] covers columns 44..48, rows 17..20
	crown := screen.GetCell(45, 17)
	if crown.Rune != TreeCrown || crown.Color != core.ColorGreen {
		t.Errorf("tree crown = %+v, expected green %q", crown, TreeCrown)
	}
	if got := screen.Get(45, 19); got != TreeTrunk {
		t.Errorf("tree trunk = %q, expected %q", got, TreeTrunk)
	}
	if !strings.Contains(screen.Row(0), "00000") {
		t.Errorf("HUD row missing score: %q", screen.Row(0))
	}
	if strings.Contains(screen.String(), "Press any key") {
		t.Error("prompt should be hidden while running")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(1)
	g.Step(input(core.ActionJump), frame)
	g.state.Obstacles = []sim.Obstacle{{X: -0.5, Scale: 1}}
	g.Step(input(), frame)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("game over message missing:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(30, 8)

	g.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected a size warning:\n%s", screen.String())
	}
}
