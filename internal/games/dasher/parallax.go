package dasher

import "github.com/vovakirdan/tui-dasher/internal/config"

// Layer is one horizontally scrolling background strip.
type Layer struct {
	Name   string
	Speed  float64 // px/s, scrolls left
	Width  float64 // texture width before scaling
	Scale  float64
	Offset float64 // x of the first copy, in (-Width*Scale, 0]
}

// Period returns the on-screen width of one copy of the layer.
func (l Layer) Period() float64 {
	return l.Width * l.Scale
}

// Advance scrolls the layer left by Speed*dt, snapping back to 0 once a full
// copy has scrolled past.
func (l Layer) Advance(dt float64) Layer {
	l.Offset -= l.Speed * dt
	if l.Offset <= -l.Period() {
		l.Offset = 0
	}
	return l
}

// NewLayers builds the parallax layers, farthest first.
func NewLayers(cfg config.ParallaxConfig) []Layer {
	layers := make([]Layer, 0, len(cfg.Layers))
	for _, lc := range cfg.Layers {
		layers = append(layers, Layer{
			Name:  lc.Name,
			Speed: lc.Speed,
			Width: lc.Width,
			Scale: lc.Scale,
		})
	}
	return layers
}
