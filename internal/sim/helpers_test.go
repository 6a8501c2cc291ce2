package sim

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// fixedRand returns lo + frac*(hi-lo) for floats and clamps n into [lo, hi).
type fixedRand struct {
	frac float64
	n    int
}

func (r fixedRand) Float(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.frac*(hi-lo)
}

func (r fixedRand) Int(lo, hi int) int {
	if hi <= lo || r.n < lo {
		return lo
	}
	if r.n >= hi {
		return hi - 1
	}
	return r.n
}

// runningState returns a state in the middle of a run with no cluster due
// for a long time.
func runningState(cfg config.RunnerConfig) *State {
	s := New(cfg, fixedRand{frac: 0.5, n: 3})
	s.Phase = PhaseRunning
	s.NextSpawn = 1e9
	return s
}
