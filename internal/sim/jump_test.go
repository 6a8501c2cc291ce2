package sim

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestGroundedSnap(t *testing.T) {
	phys := config.DefaultRunnerConfig().Physics

	for _, delta := range []float64{0.001, 1.0 / 60, 0.1, 1} {
		p := Player{}
		integrate(&p, false, delta, phys)

		if p.Y != 0 {
			t.Errorf("delta %v: grounded runner moved to Y=%v", delta, p.Y)
		}
		if p.VelY != 0 {
			t.Errorf("delta %v: grounded runner gained velocity %v", delta, p.VelY)
		}
	}
}

func TestJumpTrigger(t *testing.T) {
	phys := config.DefaultRunnerConfig().Physics

	for _, delta := range []float64{1.0 / 60, 0.05, 0.1} {
		p := Player{}
		integrate(&p, true, delta, phys)

		if p.VelY != phys.JumpSpeed {
			t.Errorf("delta %v: VelY = %v, expected %v", delta, p.VelY, phys.JumpSpeed)
		}
		if p.Y != phys.JumpSpeed*delta {
			t.Errorf("delta %v: Y = %v, expected %v", delta, p.Y, phys.JumpSpeed*delta)
		}
	}
}

func TestGravityIntegration(t *testing.T) {
	phys := config.DefaultRunnerConfig().Physics
	const delta = 0.1

	p := Player{Y: 1, VelY: 5}
	integrate(&p, false, delta, phys)

	wantVel := 5 + phys.Gravity*delta
	wantY := 1 + wantVel*delta
	if p.VelY != wantVel {
		t.Errorf("VelY = %v, expected %v", p.VelY, wantVel)
	}
	if p.Y != wantY {
		t.Errorf("Y = %v, expected %v", p.Y, wantY)
	}
}

func TestNoDoubleJump(t *testing.T) {
	phys := config.DefaultRunnerConfig().Physics
	const delta = 0.05

	withJump := Player{Y: 2, VelY: 3}
	without := withJump

	integrate(&withJump, true, delta, phys)
	integrate(&without, false, delta, phys)

	if withJump != without {
		t.Errorf("mid-air jump changed the arc: with=%+v without=%+v", withJump, without)
	}
}

func TestLandingClampsToGround(t *testing.T) {
	phys := config.DefaultRunnerConfig().Physics

	p := Player{Y: 0.1, VelY: -10}
	integrate(&p, false, 0.1, phys)

	if p.Y != 0 {
		t.Errorf("landing should clamp Y to 0, got %v", p.Y)
	}
	if p.VelY != 0 {
		t.Errorf("landing should stop the runner, VelY = %v", p.VelY)
	}
}

func TestJumpArcLands(t *testing.T) {
	phys := config.DefaultRunnerConfig().Physics
	const delta = 1.0 / 60

	p := Player{}
	integrate(&p, true, delta, phys)

	apex := p.Y
	frames := 1
	for ; p.Y > 0 && frames < 600; frames++ {
		integrate(&p, false, delta, phys)
		if p.Y < 0 {
			t.Fatalf("frame %d: runner sank below the floor (Y=%v)", frames, p.Y)
		}
		apex = max(apex, p.Y)
	}

	if p.Y != 0 || p.VelY != 0 {
		t.Fatalf("runner never landed: %+v", p)
	}

	// Analytic apex v^2 / 2|g| is about 3.85 for the defaults
	wantApex := phys.JumpSpeed * phys.JumpSpeed / (-2 * phys.Gravity)
	if apex < wantApex*0.9 || apex > wantApex*1.1 {
		t.Errorf("apex = %v, expected about %v", apex, wantApex)
	}

	// Air time 2v/|g| is about 0.77s, i.e. ~46 frames
	wantFrames := int(2 * phys.JumpSpeed / -phys.Gravity / delta)
	if frames < wantFrames-4 || frames > wantFrames+4 {
		t.Errorf("air time = %d frames, expected about %d", frames, wantFrames)
	}
}
