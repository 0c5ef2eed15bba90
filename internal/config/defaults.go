package config

import (
	_ "embed"
)

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultDasherConfig returns the built-in configuration.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		Window: WindowConfig{
			Width:  512,
			Height: 380,
			Title:  "Dapper Dasher!",
		},
		Physics: PhysicsConfig{
			Gravity:          1000,
			JumpImpulse:      -600,
			CollisionPadding: 50,
		},
		Actor: ActorConfig{
			Sheet:         SheetConfig{Width: 768, Height: 128, Columns: 6, Rows: 1},
			FrameDuration: 1.0 / 12.0,
			MaxFrame:      5,
		},
		Obstacles: ObstacleConfig{
			Sheet:         SheetConfig{Width: 800, Height: 800, Columns: 8, Rows: 8},
			Count:         3,
			Spacing:       300,
			Velocity:      -200,
			FrameDuration: 1.0 / 16.0,
			MaxFrame:      7,
		},
		Parallax: ParallaxConfig{
			Layers: []LayerConfig{
				{Name: "far", Speed: 20, Width: 256, Scale: 2},
				{Name: "mid", Speed: 40, Width: 256, Scale: 2},
				{Name: "near", Speed: 80, Width: 352, Scale: 2},
			},
		},
		Runtime: RuntimeSettings{
			MaxFrameTime: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultDasherYAML
}
