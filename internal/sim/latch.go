package sim

import "sync/atomic"

// Latch collects edge-triggered input between frames. Any number of
// requests before the next Take collapse into one. Request methods may be
// called from any goroutine.
type Latch struct {
	jump    atomic.Bool
	restart atomic.Bool
}

// RequestJump records a jump request.
func (l *Latch) RequestJump() {
	l.jump.Store(true)
}

// RequestRestart records a start/restart request.
func (l *Latch) RequestRestart() {
	l.restart.Store(true)
}

// Take returns the pending requests and clears them.
func (l *Latch) Take() (jump, restart bool) {
	return l.jump.Swap(false), l.restart.Swap(false)
}
