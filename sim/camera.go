package sim

import "github.com/milk9111/platformer/common"

// Camera is the horizontally scrolling view offset. X is the world
// coordinate of the viewport's left edge; Y stays zero, there is no
// vertical scrolling.
type Camera struct {
	X float64
	Y float64

	// minX/maxX clamp the offset when bounds are set (maxX > minX).
	minX, maxX float64
	bounded    bool
}

// SetBounds clamps the camera offset to [minX, maxX]. Used when the level
// has a known pixel width so the view never shows past its edges.
func (c *Camera) SetBounds(minX, maxX float64) {
	if maxX <= minX {
		c.bounded = false
		return
	}
	c.minX = minX
	c.maxX = maxX
	c.bounded = true
}

// Update moves the camera toward the actor's center, exponentially smoothed.
// The min(1, rate*dt) clamp is what keeps a large dt from overshooting the
// target and oscillating.
func (c *Camera) Update(actorCenterX, dt float64, tn Tuning) {
	target := actorCenterX - tn.CameraLead
	step := tn.CameraRate * dt
	if step > 1 {
		step = 1
	}
	c.X = common.Lerp(c.X, target, step)
	if c.bounded {
		if c.X < c.minX {
			c.X = c.minX
		} else if c.X > c.maxX {
			c.X = c.maxX
		}
	}
}

// SnapTo places the camera immediately, e.g. after a level load or respawn.
func (c *Camera) SnapTo(actorCenterX float64, tn Tuning) {
	c.X = actorCenterX - tn.CameraLead
	if c.bounded {
		if c.X < c.minX {
			c.X = c.minX
		} else if c.X > c.maxX {
			c.X = c.maxX
		}
	}
}
