package core

// Color represents a foreground color for a screen cell.
// The platform layer decides how each value is drawn.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray

	// Skyline shades, from the most distant layer to the nearest.
	ColorSkylineFar
	ColorSkylineMid
	ColorSkylineNear
)
