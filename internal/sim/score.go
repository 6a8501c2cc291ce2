package sim

import (
	"fmt"
	"math"
)

// FormatScore floors a score and zero-pads it to digits characters.
// Scores wider than digits are shown in full.
func FormatScore(score float64, digits int) string {
	return fmt.Sprintf("%0*d", digits, int64(math.Floor(score)))
}

// respawnBird moves the bird back to its spawn column at a random height.
func (s *State) respawnBird(elapsed float64) {
	b := s.cfg.Bird
	s.Bird.X = b.SpawnX
	s.Bird.Y = s.rng.Float(b.MinY, b.MaxY)
	s.Bird.NextReset = elapsed + b.RespawnInterval
}

// flyBird either respawns the bird when its time is up or moves it along.
// Returns true on respawn.
func (s *State) flyBird(elapsed, delta float64) bool {
	if elapsed > s.Bird.NextReset {
		s.respawnBird(elapsed)
		return true
	}
	s.Bird.X += delta * s.cfg.Bird.Speed
	return false
}
