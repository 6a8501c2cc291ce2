package sim

// Frame is everything the step consumes for one rendered frame.
type Frame struct {
	Delta   float64 // Seconds since the previous frame
	Elapsed float64 // Seconds since the clock started
	Jump    bool    // Edge-triggered jump request
	Restart bool    // Edge-triggered start request, ignored while running
	// Pending reports that the presentation side is not ready yet.
	// The step then leaves the state untouched.
	Pending bool
}

// Result describes what a step changed.
type Result struct {
	Phase         Phase
	Score         float64
	Spawned       int  // Trees created
	Culled        int  // Trees dropped behind the runner
	Hit           int  // Index of the tree that ended the run, or -1
	BirdRespawned bool // The bird went back to its spawn column
	Restarted     bool // A new run began; nothing else was simulated
}

// Collided reports whether this step ended the run.
func (r Result) Collided() bool {
	return r.Hit >= 0
}

// Step advances the game by one frame.
//
// Order: jump integration, spawning, scrolling, culling, collision, bird,
// score. A collision ends the run immediately, so the bird and score keep
// their previous values for that frame. A start request outside a run
// resets the run and consumes the frame.
func Step(s *State, f Frame) (res Result) {
	res.Hit = -1
	defer func() {
		res.Phase = s.Phase
		res.Score = s.Score
	}()

	if f.Pending {
		return res
	}

	if !s.Running() {
		if f.Restart {
			s.restart(f.Elapsed)
			res.Restarted = true
		}
		return res
	}

	integrate(&s.Player, f.Jump, f.Delta, s.cfg.Physics)

	res.Spawned = s.spawn(f.Elapsed)
	s.scroll(f.Delta)
	res.Culled = s.cull()

	if hit := s.firstHit(); hit >= 0 {
		s.Phase = PhaseGameOver
		res.Hit = hit
		return res
	}

	res.BirdRespawned = s.flyBird(f.Elapsed, f.Delta)
	s.Score += f.Delta * s.cfg.Score.Rate

	return res
}
