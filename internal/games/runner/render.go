package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	RunnerHead  = '◉'
	RunnerBody  = '█'
	RunnerLeg1  = '╱'
	RunnerLeg2  = '╲'
	TreeCrown   = '▲'
	TreeTrunk   = '█'
	GroundChar  = '═'
	BirdBody    = 'v'
	BirdWingUp  = '^'
	BirdWingLow = '-'
)

// sand is the scrolling texture below the ground line.
const sand = ".  ,   `  .    ' ,  .     `   "

// layout maps world units onto screen cells.
// World x=0 is the runner's front edge; y=0 is the ground line.
type layout struct {
	originX int // Column of world x=0
	groundY int // Row of the ground line
	cols    float64
	rows    float64
}

func (g *Game) layout(w, h int) layout {
	l := layout{
		originX: core.Clamp(w/6, 4, 20),
		groundY: h - 3,
	}

	// Trees enter at the right edge
	l.cols = float64(w-l.originX) / math.Max(g.cfg.Obstacles.SpawnX, 1)

	// Leave room for the bird and the top of the jump
	p := g.cfg.Physics
	apex := p.JumpSpeed*p.JumpSpeed/(-2*p.Gravity) + g.cfg.Player.Height
	top := math.Max(g.cfg.Bird.MaxY, apex) + 0.5
	l.rows = math.Min(2, float64(l.groundY-2)/top)
	return l
}

// rect converts a world box to the cells it covers. Never empty.
func (l layout) rect(b core.Box) core.Rect {
	left := l.originX + int(math.Floor(b.Min.X()*l.cols))
	right := l.originX + int(math.Ceil(b.Max.X()*l.cols))
	top := l.groundY - int(math.Ceil(b.Max.Y()*l.rows))
	bottom := l.groundY - int(math.Floor(b.Min.Y()*l.rows))
	return core.NewRect(left, top, max(right-left, 1), max(bottom-top, 1))
}

// point converts a world position to a cell.
func (l layout) point(x, y float64) (int, int) {
	return l.originX + int(math.Round(x*l.cols)), l.groundY - int(math.Round(y*l.rows))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	l := g.layout(dst.Width(), dst.Height())

	g.drawGround(dst, l)
	for _, o := range g.state.Obstacles {
		g.drawTree(dst, l.rect(g.state.ObstacleBox(o)))
	}
	g.drawRunner(dst, l.rect(g.state.PlayerBox()))
	g.drawBird(dst, l)

	// HUD
	dst.DrawTextColored(2, 0, g.Title(), core.ColorOrange)
	score := g.state.ScoreText()
	dst.DrawTextColored(dst.Width()-len(score)-2, 0, score, core.ColorBrightWhite)

	switch {
	case g.state.GameOver():
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score %s  |  Press any key", score))
	case !g.state.Running():
		g.drawCenteredMessage(dst, "Press any key to start!", "Space/Up jumps, Q quits")
	}
}

// drawGround draws the ground line and the scrolling sand beneath it.
func (g *Game) drawGround(dst *core.Screen, l layout) {
	offset := int(g.scroll * l.cols)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, l.groundY, GroundChar, core.ColorBrown)
		for row := 1; row <= 2; row++ {
			i := (x + offset + row*7) % len(sand)
			dst.SetColored(x, l.groundY+row, rune(sand[i]), core.ColorYellow)
		}
	}
}

// drawTree renders a tree filling the given cells.
func (g *Game) drawTree(dst *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		ch := TreeTrunk
		if y == r.Y {
			ch = TreeCrown
		}
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, core.ColorGreen)
		}
	}
}

// drawRunner renders the runner: head on top, legs below, body between.
// Legs alternate while on the ground.
func (g *Game) drawRunner(dst *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, RunnerBody, core.ColorOrange)
		}
	}

	mid := r.X + r.W/2
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, r.Y, ' ')
	}
	dst.SetColored(mid, r.Y, RunnerHead, core.ColorBrightYellow)

	if r.H < 3 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, legs, ' ')
	}
	left, right := RunnerLeg1, RunnerLeg2
	if g.state.Player.Grounded() && int(g.clock.Elapsed()*8)%2 == 1 {
		left, right = right, left
	}
	dst.SetColored(r.X, legs, left, core.ColorOrange)
	dst.SetColored(r.Right()-1, legs, right, core.ColorOrange)
}

// drawBird renders the bird with flapping wings.
func (g *Game) drawBird(dst *core.Screen, l layout) {
	x, y := l.point(g.state.Bird.X, g.state.Bird.Y)
	wing := BirdWingUp
	if int(g.clock.Elapsed()*6)%2 == 1 {
		wing = BirdWingLow
	}
	dst.SetColored(x-1, y, wing, core.ColorGray)
	dst.SetColored(x, y, BirdBody, core.ColorBrightWhite)
	dst.SetColored(x+1, y, wing, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 3

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
