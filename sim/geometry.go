package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Level is the immutable set of static platforms for one session. Platforms
// are cp.BB boxes in world coordinates with y growing downward, so B is a
// platform's top edge and T its bottom edge.
type Level struct {
	Platforms []cp.BB

	SpawnX float64
	SpawnY float64

	// Width/Height are the world size in units. Zero means unbounded on
	// that axis; a positive Height enables the fall-out respawn.
	Width  float64
	Height float64
}

// NewLevel validates the platform set. A degenerate platform (zero or
// negative extent on either axis) is a level-authoring defect and is
// rejected here rather than surfacing as collision misbehavior later.
func NewLevel(platforms []cp.BB, spawnX, spawnY, width, height float64) (*Level, error) {
	for i, p := range platforms {
		if p.R <= p.L || p.T <= p.B {
			return nil, fmt.Errorf("level: platform %d is degenerate (w=%g h=%g)", i, p.R-p.L, p.T-p.B)
		}
	}
	return &Level{
		Platforms: append([]cp.BB(nil), platforms...),
		SpawnX:    spawnX,
		SpawnY:    spawnY,
		Width:     width,
		Height:    height,
	}, nil
}

// Candidates appends the platforms within the broad-phase radius of center
// to out and returns it. The filter is an optimization only; exhaustive
// checking would behave identically for levels of bounded size.
func (l *Level) Candidates(center cp.Vector, radius float64, out []cp.BB) []cp.BB {
	for _, p := range l.Platforms {
		c := p.Center()
		dx := c.X - center.X
		dy := c.Y - center.Y
		if dx < -radius || dx > radius || dy < -radius || dy > radius {
			continue
		}
		out = append(out, p)
	}
	return out
}
