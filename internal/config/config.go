// Package config provides YAML-based configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunables of the runner simulation.
// Distances are world units, times are seconds, speeds are units per second.
type RunnerConfig struct {
	Physics   RunnerPhysics   `yaml:"physics"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Bird      RunnerBird      `yaml:"bird"`
	Player    RunnerPlayer    `yaml:"player"`
	Score     RunnerScore     `yaml:"score"`
}

// RunnerPhysics defines the jump arc and scroll speed.
type RunnerPhysics struct {
	JumpSpeed  float64 `yaml:"jump_speed"`  // Upward velocity set on takeoff
	Gravity    float64 `yaml:"gravity"`     // Vertical acceleration, negative
	FloorSpeed float64 `yaml:"floor_speed"` // Horizontal obstacle velocity, negative
}

// RunnerObstacles defines tree cluster spawning.
type RunnerObstacles struct {
	SpawnX      float64 `yaml:"spawn_x"`
	Stagger     float64 `yaml:"stagger"` // Horizontal gap between trees of one cluster
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`
	MinCount    int     `yaml:"min_count"` // Inclusive
	MaxCount    int     `yaml:"max_count"` // Exclusive
	MinScale    float64 `yaml:"min_scale"`
	MaxScale    float64 `yaml:"max_scale"`
	Width       float64 `yaml:"width"`  // Tree extent at scale 1
	Height      float64 `yaml:"height"` // Tree extent at scale 1
	Depth       float64 `yaml:"depth"`  // Tree extent at scale 1
	Culling     bool    `yaml:"culling"`
	CullX       float64 `yaml:"cull_x"` // Trees wholly left of this are dropped
}

// RunnerBird defines the decorative flying obstacle.
type RunnerBird struct {
	SpawnX          float64 `yaml:"spawn_x"`
	MinY            float64 `yaml:"min_y"`
	MaxY            float64 `yaml:"max_y"`
	RespawnInterval float64 `yaml:"respawn_interval"`
	Speed           float64 `yaml:"speed"`
}

// RunnerPlayer defines the runner's collision box.
// The box spans [X-Width, X] horizontally and [y, y+Height] vertically.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerScore defines score accumulation and display.
type RunnerScore struct {
	Rate   float64 `yaml:"rate"`   // Points per second survived
	Digits int     `yaml:"digits"` // Zero-padded display width
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds the multipliers applied by a preset.
type presetScale struct {
	speed    float64 // Multiplies FloorSpeed
	interval float64 // Multiplies spawn intervals
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, interval: 1.25},
	DifficultyNormal: {speed: 1.0, interval: 1.0},
	DifficultyHard:   {speed: 1.3, interval: 0.8},
}
