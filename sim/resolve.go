package sim

import "github.com/jakecoffman/cp"

// resolve corrects the actor's tentative pose against the level's platforms.
// prev is the actor's top-left position before this tick's motion.
//
// Each platform is tested in a fixed order: landing, head bump, left-side
// block, right-side block. Vertical resolution runs before horizontal so a
// rising or falling actor does not grab a corner it merely sweeps past.
// Overlap on the opposite axis is always taken from the previous pose, not
// the tentative one. Platforms are tested independently; when several are
// touched in the same tick, later ones override earlier corrections. For a
// sparse static level that is adequate.
func resolve(a *Actor, prev cp.Vector, cands []cp.BB) {
	prevBox := cp.BB{L: prev.X, B: prev.Y, R: prev.X + a.W, T: prev.Y + a.H}
	tentX, tentY := a.X, a.Y
	grounded := false

	for _, p := range cands {
		// y grows downward: p.B is the platform's top edge, p.T its bottom.
		overlapX := prevBox.L < p.R && prevBox.R > p.L
		overlapY := prevBox.B < p.T && prevBox.T > p.B

		if overlapX {
			if prevBox.T <= p.B && tentY+a.H >= p.B {
				// Landing: bottom edge crossed the platform top this tick.
				a.Y = p.B - a.H
				a.VY = 0
				grounded = true
			} else if prevBox.B >= p.T && tentY <= p.T {
				// Head bump against the underside.
				a.Y = p.T
				a.VY = 0
			}
		}

		if overlapY {
			if prevBox.R <= p.L && tentX+a.W > p.L {
				a.X = p.L - a.W
				a.VX = 0
			} else if prevBox.L >= p.R && tentX < p.R {
				a.X = p.R
				a.VX = 0
			}
		}
	}

	// Ground contact is re-detected every tick; no persistence, no coyote
	// time at this layer.
	a.OnGround = grounded
}
