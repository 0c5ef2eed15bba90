package dasher

import (
	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/core"
)

// NewWorld builds the starting world. Frame sizes come from the sprite sheet
// metadata; the actor stands centred on the floor and the obstacles queue up
// off the right edge, the last one marking the finish line.
func NewWorld(cfg config.DasherConfig) World {
	winW := float64(cfg.Window.Width)
	winH := float64(cfg.Window.Height)

	actorW, actorH := cfg.Actor.Sheet.FrameSize()
	w := World{
		Actor: Actor{
			Sprite: Sprite{
				Frame:         core.NewRect(0, 0, actorW, actorH),
				Pos:           core.Vec2{X: winW/2 - actorW/2, Y: winH - actorH},
				FrameDuration: cfg.Actor.FrameDuration,
			},
		},
		Physics: Physics{
			Gravity:          cfg.Physics.Gravity,
			JumpImpulse:      cfg.Physics.JumpImpulse,
			ObstacleVelocity: cfg.Obstacles.Velocity,
			FloorHeight:      winH,
			WindowWidth:      winW,
			CollisionPadding: cfg.Physics.CollisionPadding,
			ActorMaxFrame:    cfg.Actor.MaxFrame,
			ObstacleMaxFrame: cfg.Obstacles.MaxFrame,
		},
	}

	obsW, obsH := cfg.Obstacles.Sheet.FrameSize()
	for i := range w.Obstacles {
		w.Obstacles[i] = Sprite{
			Frame:         core.NewRect(0, 0, obsW, obsH),
			Pos:           core.Vec2{X: winW + float64(i)*cfg.Obstacles.Spacing, Y: winH - obsH},
			FrameDuration: cfg.Obstacles.FrameDuration,
		}
	}
	w.FinishX = w.Obstacles[NumObstacles-1].Pos.X

	return w
}
