package config

import (
	"errors"
	"fmt"
)

// ObstacleCount is the fixed number of obstacles in a run.
const ObstacleCount = 3

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable world.
// All problems are reported together.
func (c DasherConfig) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window", "size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.JumpImpulse > 0 {
		add("physics.jump_impulse", "must point up (<= 0), got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.CollisionPadding < 0 {
		add("physics.collision_padding", "must not be negative, got %v", c.Physics.CollisionPadding)
	}

	validateSheet("actor.sheet", c.Actor.Sheet, add)
	validateSheet("obstacles.sheet", c.Obstacles.Sheet, add)

	if c.Actor.FrameDuration < 0 {
		add("actor.frame_duration", "must not be negative, got %v", c.Actor.FrameDuration)
	}
	if c.Actor.MaxFrame < 0 {
		add("actor.max_frame", "must not be negative, got %d", c.Actor.MaxFrame)
	}
	if c.Obstacles.FrameDuration < 0 {
		add("obstacles.frame_duration", "must not be negative, got %v", c.Obstacles.FrameDuration)
	}
	if c.Obstacles.MaxFrame < 0 {
		add("obstacles.max_frame", "must not be negative, got %d", c.Obstacles.MaxFrame)
	}
	if c.Obstacles.Count != ObstacleCount {
		add("obstacles.count", "must be %d, got %d", ObstacleCount, c.Obstacles.Count)
	}

	for i, l := range c.Parallax.Layers {
		if l.Width <= 0 || l.Scale <= 0 {
			add(fmt.Sprintf("parallax.layers[%d]", i), "width and scale must be positive")
		}
	}

	if c.Runtime.MaxFrameTime <= 0 {
		add("runtime.max_frame_time", "must be positive, got %v", c.Runtime.MaxFrameTime)
	}

	return errors.Join(errs...)
}

func validateSheet(field string, s SheetConfig, add func(field, format string, args ...any)) {
	if s.Width <= 0 || s.Height <= 0 {
		add(field, "size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Columns <= 0 || s.Rows <= 0 {
		add(field, "grid must be positive, got %dx%d", s.Columns, s.Rows)
	}
}
