package dasher

import "github.com/vovakirdan/tui-dasher/internal/core"

// NumObstacles is the fixed number of obstacles in a run.
const NumObstacles = 3

// Physics holds the constants of the motion and collision step.
type Physics struct {
	Gravity          float64 // px/s^2, positive pulls down
	JumpImpulse      float64 // px/s added to velocity on a grounded jump
	ObstacleVelocity float64 // px/s, negative scrolls left
	FloorHeight      float64 // y of the ground line
	WindowWidth      float64
	CollisionPadding float64 // inward padding of obstacle hitboxes
	ActorMaxFrame    int
	ObstacleMaxFrame int
}

// Actor is the controllable character.
type Actor struct {
	Sprite
	Velocity float64 // vertical, px/s, negative is up
}

// World is the complete simulation state of a run.
type World struct {
	Actor     Actor
	Obstacles [NumObstacles]Sprite
	FinishX   float64 // scrolls with the obstacles
	Collided  bool    // sticky for the rest of the run
	Physics   Physics
}

// StepOutcome reports the flags produced by one World.Step.
type StepOutcome struct {
	Collided bool
	Won      bool
	Grounded bool // actor was grounded at the start of the step
}

// Verdict is the three-way render decision for a frame.
type Verdict int

const (
	VerdictPlaying Verdict = iota
	VerdictLose
	VerdictWin
)

// String returns a lowercase name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictLose:
		return "lose"
	case VerdictWin:
		return "win"
	default:
		return "playing"
	}
}

// Decide maps a step outcome to what should be shown. Collision wins over
// reaching the finish line.
func Decide(o StepOutcome) Verdict {
	switch {
	case o.Collided:
		return VerdictLose
	case o.Won:
		return VerdictWin
	default:
		return VerdictPlaying
	}
}

// IsOnGround reports whether a sprite of the given height at pos rests on or
// below the floor line.
func IsOnGround(pos core.Vec2, rectHeight, floorHeight float64) bool {
	return pos.Y+rectHeight >= floorHeight
}

// Step advances the world by dt seconds.
//
// Order matters and is fixed: actor physics, obstacle and finish line
// scrolling, animation, then collision.
func (w *World) Step(jump bool, dt float64) StepOutcome {
	p := w.Physics
	a := &w.Actor

	grounded := IsOnGround(a.Pos, a.Frame.H, p.FloorHeight)
	if grounded {
		a.Velocity = 0
	} else {
		a.Velocity += p.Gravity * dt
	}

	// Additive: a jump on a grounded frame stacks onto whatever velocity is left.
	if jump && grounded {
		a.Velocity += p.JumpImpulse
	}

	a.Pos.Y += a.Velocity * dt

	for i := range w.Obstacles {
		w.Obstacles[i].Pos.X += p.ObstacleVelocity * dt
	}
	w.FinishX += p.ObstacleVelocity * dt

	if grounded {
		a.Sprite = Animate(a.Sprite, dt, p.ActorMaxFrame)
	}
	for i := range w.Obstacles {
		w.Obstacles[i] = Animate(w.Obstacles[i], dt, p.ObstacleMaxFrame)
	}

	actorRect := a.Bounds()
	for _, o := range w.Obstacles {
		if o.Bounds().Inset(p.CollisionPadding).Intersects(actorRect) {
			w.Collided = true
		}
	}

	return StepOutcome{
		Collided: w.Collided,
		Won:      !w.Collided && a.Pos.X >= w.FinishX,
		Grounded: grounded,
	}
}
