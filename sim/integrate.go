package sim

import (
	"math"

	"github.com/milk9111/platformer/common"
)

// integrate advances the actor to its tentative pose for this tick: control
// acceleration, speed clamp, gravity, jump, then position. The collision
// resolver may override either axis afterwards.
//
// A zero or non-finite dt leaves the actor untouched. The non-finite guard
// keeps a pathological frame delta from poisoning position state with NaN.
func integrate(a *Actor, in Snapshot, dt float64, tn Tuning) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}

	switch {
	case in.Left && !in.Right:
		a.VX -= tn.MoveAccel * dt
		a.Facing = -1
	case in.Right && !in.Left:
		a.VX += tn.MoveAccel * dt
		a.Facing = 1
	default:
		// No (or contradictory) horizontal input: decelerate toward zero.
		// Grounded friction must not push velocity past zero.
		if a.OnGround {
			d := tn.GroundFriction * dt
			switch {
			case a.VX > d:
				a.VX -= d
			case a.VX < -d:
				a.VX += d
			default:
				a.VX = 0
			}
		} else {
			a.VX *= math.Pow(tn.AirDamping, dt*60)
		}
	}

	a.VX = common.Clamp(a.VX, -tn.MaxSpeed, tn.MaxSpeed)

	// Unconditional gravity, no terminal velocity. The resolver's sweep
	// still catches arbitrarily fast falls within a clamped dt.
	a.VY += tn.Gravity * dt

	// The edge fires a jump only from the ground; an airborne press was
	// already consumed by the latch and is dropped, not queued.
	if in.JumpEdge && a.OnGround {
		a.VY = -tn.JumpSpeed
		a.OnGround = false
	}

	a.X += a.VX * dt
	a.Y += a.VY * dt
}
