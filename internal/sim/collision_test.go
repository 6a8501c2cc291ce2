package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestPlayerBoxFollowsJump(t *testing.T) {
	s := runningState(config.DefaultRunnerConfig())
	s.Player.Y = 1.5

	box := s.PlayerBox()

	if box.Min != (mgl64.Vec3{-1, 1.5, 0}) {
		t.Errorf("Min = %v, expected [-1 1.5 0]", box.Min)
	}
	if box.Max != (mgl64.Vec3{0, 3.5, 0}) {
		t.Errorf("Max = %v, expected [0 3.5 0]", box.Max)
	}
}

func TestCollisionDeterminism(t *testing.T) {
	tests := []struct {
		name    string
		playerY float64
		tree    Obstacle
		wantHit bool
	}{
		{"tree on the runner", 0, Obstacle{X: -0.5, Scale: 1}, true},
		{"tree ahead", 0, Obstacle{X: 5, Scale: 1}, false},
		{"tree behind", 0, Obstacle{X: -3, Scale: 1}, false},
		{"jumping over", 2.5, Obstacle{X: -0.5, Scale: 1}, false},
		{"clipping the top", 1.5, Obstacle{X: -0.5, Scale: 1}, true},
		{"feet touching the crown", 2, Obstacle{X: -0.5, Scale: 1}, true},
		{"small tree under a low jump", 1.2, Obstacle{X: -0.5, Scale: 0.5}, false},
		{"edge touching the runner", 0, Obstacle{X: 0.5, Scale: 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := runningState(config.DefaultRunnerConfig())
			s.Player.Y = tc.playerY
			s.Obstacles = []Obstacle{tc.tree}

			if got := s.firstHit() >= 0; got != tc.wantHit {
				t.Errorf("hit = %v, expected %v", got, tc.wantHit)
			}
		})
	}
}

func TestFirstHitShortCircuits(t *testing.T) {
	s := runningState(config.DefaultRunnerConfig())
	s.Obstacles = []Obstacle{
		{X: 10, Scale: 1},
		{X: -0.2, Scale: 1},
		{X: -0.8, Scale: 1},
	}

	if got := s.firstHit(); got != 1 {
		t.Errorf("firstHit() = %d, expected the first overlapping tree (1)", got)
	}
}

func TestBirdNeverCollides(t *testing.T) {
	s := runningState(config.DefaultRunnerConfig())
	s.Bird = Bird{X: -0.5, Y: 1, NextReset: 100}

	res := Step(s, Frame{Delta: 0.01, Elapsed: 1})

	if res.Collided() || s.GameOver() {
		t.Error("the bird is scenery and must not end the run")
	}
}
