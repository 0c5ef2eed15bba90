package dasher

import "github.com/vovakirdan/tui-dasher/internal/core"

// Sprite is an animated sprite-sheet instance placed in the world.
type Sprite struct {
	Frame         core.Rect // Sub-rectangle of the sheet currently displayed
	Pos           core.Vec2 // World-space top-left corner
	CurrentFrame  int       // Logical frame index, 0..maxFrame
	FrameDuration float64   // Seconds each frame is held
	Elapsed       float64   // Time accumulated since the last frame switch
}

// Bounds returns the sprite's world-space rectangle.
func (s Sprite) Bounds() core.Rect {
	return core.RectAt(s.Pos, s.Frame.W, s.Frame.H)
}

// DisplayedFrame returns the sheet column the frame rectangle points at.
// It trails CurrentFrame by one switch.
func (s Sprite) DisplayedFrame() int {
	if s.Frame.W <= 0 {
		return 0
	}
	return int(s.Frame.X / s.Frame.W)
}

// Animate advances the sprite's animation by dt seconds.
//
// When the accumulator reaches FrameDuration it resets to zero, the frame
// rectangle moves to the current (pre-increment) frame, and the frame index
// advances, wrapping to 0 past maxFrame. Otherwise only the accumulator moves.
func Animate(s Sprite, dt float64, maxFrame int) Sprite {
	s.Elapsed += dt
	if s.Elapsed >= s.FrameDuration {
		s.Elapsed = 0
		s.Frame.X = float64(s.CurrentFrame) * s.Frame.W
		s.CurrentFrame++
		if s.CurrentFrame > maxFrame {
			s.CurrentFrame = 0
		}
	}
	return s
}
