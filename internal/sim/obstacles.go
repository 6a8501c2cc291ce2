package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// spawn creates a tree cluster once elapsed passes NextSpawn and schedules
// the next one. Returns the number of trees created.
func (s *State) spawn(elapsed float64) int {
	if elapsed <= s.NextSpawn {
		return 0
	}

	o := s.cfg.Obstacles
	s.NextSpawn = elapsed + s.rng.Float(o.MinInterval, o.MaxInterval)

	n := s.rng.Int(o.MinCount, o.MaxCount)
	for i := 0; i < n; i++ {
		s.Obstacles = append(s.Obstacles, Obstacle{
			X:     o.SpawnX + float64(i)*o.Stagger,
			Scale: s.rng.Float(o.MinScale, o.MaxScale),
		})
	}
	return n
}

// scroll moves every tree toward the runner.
func (s *State) scroll(delta float64) {
	dx := s.cfg.Physics.FloorSpeed * delta
	for i := range s.Obstacles {
		s.Obstacles[i].X += dx
	}
}

// cull drops trees that are wholly behind the cull line, keeping spawn
// order. Returns the number removed.
func (s *State) cull() int {
	if !s.cfg.Obstacles.Culling {
		return 0
	}

	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if s.ObstacleBox(o).Max.X() >= s.cfg.Obstacles.CullX {
			kept = append(kept, o)
		}
	}
	removed := len(s.Obstacles) - len(kept)
	s.Obstacles = kept
	return removed
}

// ObstacleBox returns the bounding box of a tree: centered on X and in
// depth, standing on the floor, sized by the tree extent times its scale.
func (s *State) ObstacleBox(o Obstacle) core.Box {
	ext := s.cfg.Obstacles
	halfW := ext.Width * o.Scale / 2
	halfD := ext.Depth * o.Scale / 2
	return core.NewBox(
		mgl64.Vec3{o.X - halfW, 0, -halfD},
		mgl64.Vec3{o.X + halfW, ext.Height * o.Scale, halfD},
	)
}
