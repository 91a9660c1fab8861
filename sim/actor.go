package sim

import "github.com/jakecoffman/cp"

// Actor is the pose of the controllable actor: top-left position, fixed
// collision size, velocity in units/s, and the contact flags produced by the
// previous resolution step. Facing tracks the last nonzero horizontal input
// and exists only for presentation.
type Actor struct {
	X, Y float64
	W, H float64

	VX, VY float64

	OnGround bool
	Facing   int
}

func NewActor(x, y float64, tn Tuning) Actor {
	return Actor{
		X:      x,
		Y:      y,
		W:      tn.ActorWidth,
		H:      tn.ActorHeight,
		Facing: 1,
	}
}

// Bounds returns the actor's AABB at its current position.
func (a *Actor) Bounds() cp.BB {
	return cp.BB{L: a.X, B: a.Y, R: a.X + a.W, T: a.Y + a.H}
}
