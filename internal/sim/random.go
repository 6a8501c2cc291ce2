package sim

import "math/rand"

// Random is the source of randomness consumed by the step.
// Tests swap in a scripted implementation.
type Random interface {
	// Float returns a uniform value in [lo, hi). Returns lo when hi <= lo.
	Float(lo, hi float64) float64
	// Int returns a uniform integer in [lo, hi). Returns lo when hi <= lo.
	Int(lo, hi int) int
}

// Rand is a seeded Random backed by math/rand.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a deterministic random source.
func NewRand(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Float implements Random.
func (r *Rand) Float(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Float64()*(hi-lo)
}

// Int implements Random.
func (r *Rand) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}
