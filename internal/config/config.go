// Package config provides YAML-based game configuration loading for the
// dasher runtime.
package config

// DasherConfig contains all configuration for the runner.
// Distances are world pixels, times are seconds.
type DasherConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Parallax  ParallaxConfig  `yaml:"parallax"`
	Runtime   RuntimeSettings `yaml:"runtime"`
}

// WindowConfig defines the world dimensions. The bottom edge is the floor.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines the actor's vertical motion and collision tolerance.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // px/s^2
	JumpImpulse      float64 `yaml:"jump_impulse"`      // px/s, added to velocity
	CollisionPadding float64 `yaml:"collision_padding"` // inward padding of obstacle hitboxes
}

// SheetConfig describes a sprite sheet laid out as a grid of equal frames.
type SheetConfig struct {
	Width   int `yaml:"width"`   // sheet width in pixels
	Height  int `yaml:"height"`  // sheet height in pixels
	Columns int `yaml:"columns"` // frames per row
	Rows    int `yaml:"rows"`    // frame rows
}

// FrameSize returns the size of a single frame. Pixel sizes are divided with
// integer truncation, as texture metadata is integral.
func (s SheetConfig) FrameSize() (w, h float64) {
	if s.Columns <= 0 || s.Rows <= 0 {
		return 0, 0
	}
	return float64(s.Width / s.Columns), float64(s.Height / s.Rows)
}

// ActorConfig defines the controllable character.
type ActorConfig struct {
	Sheet         SheetConfig `yaml:"sheet"`
	FrameDuration float64     `yaml:"frame_duration"`
	MaxFrame      int         `yaml:"max_frame"`
}

// ObstacleConfig defines the scrolling obstacles.
type ObstacleConfig struct {
	Sheet         SheetConfig `yaml:"sheet"`
	Count         int         `yaml:"count"`
	Spacing       float64     `yaml:"spacing"`  // horizontal gap between spawn points
	Velocity      float64     `yaml:"velocity"` // px/s, negative scrolls left
	FrameDuration float64     `yaml:"frame_duration"`
	MaxFrame      int         `yaml:"max_frame"`
}

// ParallaxConfig lists background layers from farthest to nearest.
type ParallaxConfig struct {
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig defines one scrolling background layer.
type LayerConfig struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"` // px/s, scrolls left
	Width float64 `yaml:"width"` // texture width before scaling
	Scale float64 `yaml:"scale"`
}

// RuntimeSettings configures the frame loop driving the simulation.
type RuntimeSettings struct {
	MaxFrameTime float64 `yaml:"max_frame_time"` // upper bound on a single frame's dt
}
