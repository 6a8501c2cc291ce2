package sim

import "github.com/vovakirdan/tui-runner/internal/config"

// integrate advances the jump arc by delta seconds.
// A jump request only fires from the ground; mid-air requests are dropped.
// The takeoff frame moves the runner by the fresh velocity without gravity.
func integrate(p *Player, jump bool, delta float64, phys config.RunnerPhysics) {
	switch {
	case jump && p.Grounded():
		p.VelY = phys.JumpSpeed
		p.Y = p.VelY * delta
	case p.Y > 0:
		p.VelY += phys.Gravity * delta
		p.Y += p.VelY * delta
		if p.Y <= 0 {
			p.Y = 0
			p.VelY = 0
		}
	default:
		p.Y = 0
		p.VelY = 0
	}
}
