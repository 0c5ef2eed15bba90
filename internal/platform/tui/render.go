package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-dasher/internal/core"
)

// Skyline endpoints: the far layer fades into the night sky, the near layer
// is the brightest.
const (
	skyHex      = "#1b1035"
	skylineHex  = "#8fb8ff"
	skylineFar  = 0.35
	skylineMid  = 0.6
	skylineNear = 0.9
)

// skylineShade blends the sky colour towards the skyline colour in Lab space.
func skylineShade(t float64) lipgloss.Color {
	sky, err := colorful.Hex(skyHex)
	if err != nil {
		return lipgloss.Color("245")
	}
	lit, err := colorful.Hex(skylineHex)
	if err != nil {
		return lipgloss.Color("245")
	}
	return lipgloss.Color(sky.BlendLab(lit, t).Clamped().Hex())
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSkylineFar:  lipgloss.NewStyle().Foreground(skylineShade(skylineFar)),
	core.ColorSkylineMid:  lipgloss.NewStyle().Foreground(skylineShade(skylineMid)),
	core.ColorSkylineNear: lipgloss.NewStyle().Foreground(skylineShade(skylineNear)),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
