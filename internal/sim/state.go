// Package sim implements the runner's per-frame simulation step.
//
// A State is advanced by Step once per rendered frame. The step integrates
// the jump arc, spawns and scrolls tree clusters, checks the runner against
// every tree, then moves the bird and accrues score. Presentation code only
// reads State between steps.
package sim

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// Phase is the run state machine: NotStarted -> Running -> GameOver -> Running.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Player is the runner's vertical degree of freedom.
// Y is never negative and VelY is zero whenever Y is zero.
type Player struct {
	Y    float64
	VelY float64
}

// Grounded reports whether the runner stands on the floor.
func (p Player) Grounded() bool {
	return p.Y == 0
}

// Obstacle is a single tree, scrolling toward the runner.
type Obstacle struct {
	X     float64 // Horizontal center
	Scale float64
}

// Bird is the flying obstacle. It is only scenery: collisions ignore it.
type Bird struct {
	X, Y      float64
	NextReset float64 // Elapsed time after which the bird is respawned
}

// State is the whole game. Step is its only writer.
type State struct {
	Player    Player
	Obstacles []Obstacle // Spawn order
	Bird      Bird
	Score     float64
	Phase     Phase
	NextSpawn float64 // Elapsed time after which the next cluster spawns

	cfg config.RunnerConfig
	rng Random
}

// New creates a game waiting for its first run. The bird is placed as if
// respawned at elapsed time 0 and the first cluster is due immediately.
func New(cfg config.RunnerConfig, rng Random) *State {
	s := &State{
		Obstacles: make([]Obstacle, 0, 16),
		Phase:     PhaseNotStarted,
		cfg:       cfg,
		rng:       rng,
	}
	s.respawnBird(0)
	return s
}

// Config returns the configuration the state was created with.
func (s *State) Config() config.RunnerConfig {
	return s.cfg
}

// Running reports whether a run is in progress.
func (s *State) Running() bool {
	return s.Phase == PhaseRunning
}

// GameOver reports whether the last run ended in a collision.
func (s *State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// ScoreText returns the score as displayed on the HUD.
func (s *State) ScoreText() string {
	return FormatScore(s.Score, s.cfg.Score.Digits)
}

// restart begins a new run. The runner keeps its current arc and the spawn
// schedule is left as is.
func (s *State) restart(elapsed float64) {
	s.Phase = PhaseRunning
	s.Score = 0
	s.Obstacles = s.Obstacles[:0]
	s.respawnBird(elapsed)
}
