package config

import (
	"errors"
	"fmt"
)

// Validate checks that the config describes a playable game.
// All problems are reported together.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.JumpSpeed > 0, "physics.jump_speed must be positive, got %v", p.JumpSpeed)
	check(p.Gravity < 0, "physics.gravity must be negative, got %v", p.Gravity)
	check(p.FloorSpeed < 0, "physics.floor_speed must be negative, got %v", p.FloorSpeed)

	o := c.Obstacles
	check(o.MinInterval > 0, "obstacles.min_interval must be positive, got %v", o.MinInterval)
	check(o.MinInterval <= o.MaxInterval, "obstacles.min_interval %v exceeds max_interval %v", o.MinInterval, o.MaxInterval)
	check(o.MinCount >= 1, "obstacles.min_count must be at least 1, got %d", o.MinCount)
	check(o.MinCount < o.MaxCount, "obstacles.max_count %d must exceed min_count %d", o.MaxCount, o.MinCount)
	check(o.MinScale > 0, "obstacles.min_scale must be positive, got %v", o.MinScale)
	check(o.MinScale <= o.MaxScale, "obstacles.min_scale %v exceeds max_scale %v", o.MinScale, o.MaxScale)
	check(o.Stagger >= 0, "obstacles.stagger must not be negative, got %v", o.Stagger)
	check(o.Width > 0 && o.Height > 0 && o.Depth >= 0,
		"obstacles extent must be positive, got %vx%vx%v", o.Width, o.Height, o.Depth)
	check(!o.Culling || o.CullX < c.Player.X-c.Player.Width,
		"obstacles.cull_x %v must lie behind the player", o.CullX)

	b := c.Bird
	check(b.MinY <= b.MaxY, "bird.min_y %v exceeds max_y %v", b.MinY, b.MaxY)
	check(b.RespawnInterval > 0, "bird.respawn_interval must be positive, got %v", b.RespawnInterval)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player extent must be positive, got %vx%v", c.Player.Width, c.Player.Height)

	check(c.Score.Rate >= 0, "score.rate must not be negative, got %v", c.Score.Rate)
	check(c.Score.Digits >= 1, "score.digits must be at least 1, got %d", c.Score.Digits)

	return errors.Join(errs...)
}
