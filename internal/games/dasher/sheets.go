package dasher

import "github.com/vovakirdan/tui-dasher/internal/core"

// GlyphSheet is the terminal stand-in for a sprite sheet: one block of text
// per animation frame, all frames the same size. Spaces are transparent.
type GlyphSheet struct {
	Frames [][]string
	Color  core.Color
}

// Size returns the width and height of a frame in cells.
func (g GlyphSheet) Size() (w, h int) {
	if len(g.Frames) == 0 || len(g.Frames[0]) == 0 {
		return 0, 0
	}
	return len([]rune(g.Frames[0][0])), len(g.Frames[0])
}

// Draw paints frame idx (wrapped into range) with its top-left at (x, y).
func (g GlyphSheet) Draw(dst *core.Screen, idx, x, y int) {
	if len(g.Frames) == 0 {
		return
	}
	idx %= len(g.Frames)
	if idx < 0 {
		idx += len(g.Frames)
	}
	for dy, line := range g.Frames[idx] {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(x+dx, y+dy, r, g.Color)
			}
			dx++
		}
	}
}

// runnerSheet has six frames, matching the actor's frame range.
var runnerSheet = GlyphSheet{
	Frames: [][]string{
		{" o ", "/|\\", "/ \\"},
		{" o ", "-|\\", " |\\"},
		{" o ", "\\|-", " | "},
		{" o ", "/|\\", "/| "},
		{" o ", "-|/", "/ >"},
		{" o ", "\\|\\", " |>"},
	},
	Color: core.ColorBrightWhite,
}

// nebulaSheet has eight frames: a bright spark circling the core.
var nebulaSheet = GlyphSheet{
	Frames: nebulaFrames(),
	Color:  core.ColorMagenta,
}

func nebulaFrames() [][]string {
	// Ring positions on a 5x3 grid, clockwise from the top-left.
	ring := [8][2]int{{1, 0}, {2, 0}, {3, 0}, {4, 1}, {3, 2}, {2, 2}, {1, 2}, {0, 1}}

	frames := make([][]string, len(ring))
	for k := range ring {
		grid := [3][]rune{[]rune("     "), []rune("  O  "), []rune("     ")}
		for i, p := range ring {
			ch := '*'
			switch i {
			case k:
				ch = '@'
			case (k + 4) % len(ring):
				ch = 'o'
			}
			grid[p[1]][p[0]] = ch
		}
		frames[k] = []string{string(grid[0]), string(grid[1]), string(grid[2])}
	}
	return frames
}

// skylineArt holds one tile per parallax depth, farthest first. Each tile is
// stretched across one layer period.
var skylineArt = [][]string{
	{
		"    ▄▄         ▄       ",
		"   ▐██▌   ▄▄  ▐█▌  ▄   ",
		" ▄ ▐██▌  ▐██▌ ▐█▌ ▐█▌  ",
		"▐█▌▐██▌▄ ▐██▌▄▐█▌▄▐█▌▄ ",
		"▐█▌▐██▌█▌▐██▌█▐█▌█▐█▌█▌",
	},
	{
		"  ▄▄▄      ▄▄   ",
		" ▐▒▒▒▌ ▄  ▐▒▒▌  ",
		" ▐▒▒▒▌▐▒▌ ▐▒▒▌▄ ",
		"▄▐▒▒▒▌▐▒▌▄▐▒▒▌▒▌",
	},
	{
		"  ╻     ╻ ╻    ╻  ",
		"╺━╋━━┳━━╋━╋━┳━━╋━╸",
	},
}

var skylineColors = []core.Color{
	core.ColorSkylineFar,
	core.ColorSkylineMid,
	core.ColorSkylineNear,
}
