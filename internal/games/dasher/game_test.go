package dasher

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

const frameDT = 1.0 / 60.0

func newTestGame() *Game {
	g := New(config.DefaultDasherConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// autopilot jumps when an obstacle's hitbox is about to reach the actor.
func autopilot(g *Game) core.InputFrame {
	w := g.World()
	if !IsOnGround(w.Actor.Pos, w.Actor.Frame.H, w.Physics.FloorHeight) {
		return core.NewInputFrame()
	}
	actorRight := w.Actor.Bounds().Right()
	for _, o := range w.Obstacles {
		probe := o.Bounds().Inset(w.Physics.CollisionPadding).Center().X
		if probe > actorRight && probe <= actorRight+40 {
			return jumpFrame()
		}
	}
	return core.NewInputFrame()
}

func TestGameRunIntoObstacleLoses(t *testing.T) {
	g := newTestGame()

	var state core.GameState
	for i := 0; i < 600 && !state.GameOver; i++ {
		state = g.Step(core.NewInputFrame(), frameDT).State
	}

	if !state.GameOver {
		t.Fatal("standing still should end in a collision")
	}
	if state.Won {
		t.Error("a collision must not be reported as a win")
	}
	if g.Verdict() != VerdictLose {
		t.Errorf("Verdict() = %v, expected lose", g.Verdict())
	}
}

func TestGameJumpingOverEverythingWins(t *testing.T) {
	g := newTestGame()

	var state core.GameState
	jumps := 0
	for i := 0; i < 600 && !state.GameOver; i++ {
		in := autopilot(g)
		if in.Has(core.ActionJump) {
			jumps++
		}
		state = g.Step(in, frameDT).State
	}

	if !state.GameOver || !state.Won {
		t.Fatalf("autopilot run ended with %+v after %d jumps, expected a win", state, jumps)
	}
	if jumps != NumObstacles {
		t.Errorf("autopilot jumped %d times, expected %d", jumps, NumObstacles)
	}
	// The finish line starts 920px away and scrolls at 200px/s.
	if state.Score < 900 || state.Score > 940 {
		t.Errorf("Score = %d, expected about 920", state.Score)
	}
}

func TestGameVerdictLatches(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 600 && g.Verdict() == VerdictPlaying; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}
	if g.Verdict() != VerdictLose {
		t.Fatalf("Verdict() = %v, expected lose", g.Verdict())
	}

	frozen := g.World()
	score := g.State().Score
	offset := g.layers[0].Offset

	for i := 0; i < 30; i++ {
		g.Step(jumpFrame(), frameDT)
	}

	if g.World() != frozen {
		t.Error("world should not advance after the verdict")
	}
	if g.State().Score != score {
		t.Errorf("Score changed after verdict: %d -> %d", score, g.State().Score)
	}
	if g.layers[0].Offset == offset {
		t.Error("parallax should keep scrolling after the verdict")
	}
	if g.bannerTime <= 0 {
		t.Error("banner timer should run after the verdict")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame()
	g.Step(core.NewInputFrame(), frameDT)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	state := g.Step(pause, frameDT).State
	if !state.Paused {
		t.Fatal("ActionPause should pause the game")
	}

	frozen := g.World()
	elapsed := state.Elapsed
	for i := 0; i < 10; i++ {
		g.Step(jumpFrame(), frameDT)
	}
	if g.World() != frozen {
		t.Error("paused game should not advance the world")
	}
	if g.State().Elapsed != elapsed {
		t.Error("paused game should not accumulate play time")
	}

	state = g.Step(pause, frameDT).State
	if state.Paused {
		t.Error("second ActionPause should resume the game")
	}
	if g.World() == frozen {
		t.Error("resumed game should advance the world")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 600 && g.Verdict() == VerdictPlaying; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	state := g.State()
	if state.GameOver || state.Won || state.Paused {
		t.Errorf("Reset should clear flags, got %+v", state)
	}
	if state.Score != 0 || state.Elapsed != 0 {
		t.Errorf("Reset should clear score and time, got %+v", state)
	}
	if g.World() != NewWorld(config.DefaultDasherConfig()) {
		t.Error("Reset should rebuild the starting world")
	}
}

func TestGameScore(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 4; i++ {
		g.Step(core.NewInputFrame(), 0.25)
	}
	if got := g.State().Score; got != 200 {
		t.Errorf("Score after 1s = %d, expected 200", got)
	}
}

func TestGameIdentity(t *testing.T) {
	g := newTestGame()
	if g.ID() != "dasher" {
		t.Errorf("ID() = %q, expected \"dasher\"", g.ID())
	}
	if g.Title() != "Dapper Dasher!" {
		t.Errorf("Title() = %q, expected \"Dapper Dasher!\"", g.Title())
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame()
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	out := dst.String()
	if !strings.Contains(out, "Distance: 0") {
		t.Error("HUD should show the distance")
	}
	if !strings.ContainsRune(out, 'o') {
		t.Error("the runner should be drawn")
	}
	if !strings.ContainsRune(dst.Row(dst.Height()-1), GroundChar) {
		t.Error("the ground line should be on the last row")
	}
	if strings.Contains(out, loseText) || strings.Contains(out, winText) {
		t.Error("no verdict banner while playing")
	}
}

func TestRenderDrawsObstaclesOnScreen(t *testing.T) {
	g := newTestGame()
	// Bring the first nebula on screen without reaching the actor.
	g.Step(core.NewInputFrame(), 0.5)

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	found := false
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if c := dst.GetCell(x, y); c.Color == nebulaSheet.Color && c.Rune == 'O' {
				found = true
			}
		}
	}
	if !found {
		t.Error("an on-screen nebula should be drawn")
	}
}

func TestRenderLoseBanner(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 600 && g.Verdict() == VerdictPlaying; i++ {
		g.Step(core.NewInputFrame(), frameDT)
	}
	// Let the banner settle.
	g.Step(core.NewInputFrame(), bannerDrop)

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	row := dst.Row(dst.Height() / 2)
	if !strings.Contains(row, loseText) {
		t.Errorf("row %d = %q, expected %q", dst.Height()/2, row, loseText)
	}
	if idx := strings.Index(row, loseText); idx != dst.Width()/4 {
		t.Errorf("banner at column %d, expected %d", idx, dst.Width()/4)
	}
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if c := dst.GetCell(x, y).Color; c == nebulaSheet.Color || c == runnerSheet.Color {
				t.Fatalf("sprite cell at (%d, %d): sprites should not be drawn on the verdict screen", x, y)
			}
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame()
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}, {10, 3}} {
		dst := core.NewScreen(size[0], size[1])
		g.Render(dst) // must not panic
	}
}
