package dasher

import (
	"fmt"
	"math"

	"github.com/fogleman/ease"

	"github.com/vovakirdan/tui-dasher/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '═'

	loseText   = "GAME OVER!"
	winText    = "YOU WIN!"
	bannerDrop = 0.6 // seconds for the verdict banner to settle
)

// viewport maps world pixels onto screen cells. Row 0 is the HUD, the last
// row is the ground line; the world sits between them.
type viewport struct {
	sx, sy  float64
	top     int
	groundY int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	playH := dst.Height() - 2
	if playH < 1 {
		playH = 1
	}
	return viewport{
		sx:      float64(dst.Width()) / worldW,
		sy:      float64(playH) / worldH,
		top:     1,
		groundY: 1 + playH,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := newViewport(dst, g.world.Physics.WindowWidth, g.world.Physics.FloorHeight)

	for i, l := range g.layers {
		g.drawLayer(dst, vp, i, l)
	}
	dst.DrawHLine(0, vp.groundY, dst.Width(), GroundChar, core.ColorGray)

	switch g.verdict {
	case VerdictLose:
		g.drawBanner(dst, loseText, core.ColorRed)
	case VerdictWin:
		g.drawBanner(dst, winText, core.ColorGreen)
	default:
		for _, o := range g.world.Obstacles {
			drawSprite(dst, vp, o, nebulaSheet)
		}
		drawSprite(dst, vp, g.world.Actor.Sprite, runnerSheet)
	}

	g.drawHUD(dst)
}

// drawLayer tiles a skyline across the screen, bottom-aligned on the ground.
func (g *Game) drawLayer(dst *core.Screen, vp viewport, depth int, l Layer) {
	art := skylineArt[depth%len(skylineArt)]
	color := skylineColors[min(depth, len(skylineColors)-1)]
	period := l.Period()
	if period <= 0 || len(art) == 0 {
		return
	}

	rows := make([][]rune, len(art))
	for i, line := range art {
		rows[i] = []rune(line)
	}
	baseY := vp.groundY - len(rows)

	for cx := 0; cx < dst.Width(); cx++ {
		// World x at the cell centre, relative to the layer's first copy.
		x := (float64(cx)+0.5)/vp.sx - l.Offset
		phase := math.Mod(x, period) / period
		if phase < 0 {
			phase++
		}
		for ry, line := range rows {
			if len(line) == 0 {
				continue
			}
			r := line[int(phase*float64(len(line)))%len(line)]
			if r != ' ' {
				dst.SetColored(cx, baseY+ry, r, color)
			}
		}
	}
}

// drawSprite places a glyph frame bottom-centred inside the sprite's scaled
// bounds. The frame shown is the one the frame rectangle points at.
func drawSprite(dst *core.Screen, vp viewport, s Sprite, sheet GlyphSheet) {
	b := s.Bounds()
	w, h := sheet.Size()
	left, right := vp.col(b.X), vp.col(b.Right())
	bottom := vp.row(b.Bottom())

	x := left + (right-left-w)/2
	y := bottom - h
	sheet.Draw(dst, s.DisplayedFrame(), x, y)
}

// drawBanner drops the verdict text in from the top and settles it at a
// quarter of the width, half the height.
func (g *Game) drawBanner(dst *core.Screen, text string, color core.Color) {
	targetY := dst.Height() / 2
	t := core.ClampF(g.bannerTime/bannerDrop, 0, 1)
	y := 1 + int(math.Round(ease.OutBounce(t)*float64(targetY-1)))
	x := dst.Width() / 4

	dst.DrawTextColored(x, y, text, color)
	if t >= 1 {
		dst.DrawTextColored(x, y+2, "R to run again  |  Q to quit", core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %d ", g.score()))

	remaining := max(0, g.world.FinishX-g.world.Actor.Pos.X)
	finishText := fmt.Sprintf(" Finish: %.0fpx ", remaining)
	dst.DrawText(dst.Width()-len(finishText)-2, 0, finishText)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - P to resume ")
	}
}
