package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// PlayerBox returns the runner's bounding box. It follows the jump
// vertically but never moves horizontally; it is flat in depth.
func (s *State) PlayerBox() core.Box {
	p := s.cfg.Player
	y := s.Player.Y
	return core.NewBox(
		mgl64.Vec3{p.X - p.Width, y, 0},
		mgl64.Vec3{p.X, y + p.Height, 0},
	)
}

// firstHit returns the index of the first tree, in spawn order, touching
// the runner, or -1 when there is none.
func (s *State) firstHit() int {
	player := s.PlayerBox()
	for i, o := range s.Obstacles {
		if s.ObstacleBox(o).Intersects(player) {
			return i
		}
	}
	return -1
}
