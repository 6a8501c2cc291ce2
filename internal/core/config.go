package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only view of a game handed to the platform.
type GameState struct {
	Score     int    // Whole points accumulated in the current run
	ScoreText string // Score as shown on the HUD
	Running   bool   // A run is in progress
	GameOver  bool   // The last run ended in a collision
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State     GameState
	Spawned   int  // Obstacles created this frame
	Collided  bool // The run ended this frame
	Restarted bool // A new run began this frame
}
