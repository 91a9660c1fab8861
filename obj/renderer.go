package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/sim"
)

// Renderer draws the level and actor as flat rectangles offset by the
// camera. It reads resolved snapshots only; it never mutates simulation
// state.
type Renderer struct {
	unit *ebiten.Image
}

func NewRenderer() *Renderer {
	unit := ebiten.NewImage(1, 1)
	unit.Fill(color.White)
	return &Renderer{unit: unit}
}

func (r *Renderer) Draw(screen *ebiten.Image, a sim.Actor, lvl *sim.Level, camX, camY float64) {
	screen.Fill(colornames.Darkslategray)

	for _, p := range lvl.Platforms {
		r.fillRect(screen, p.L-camX, p.B-camY, p.R-p.L, p.T-p.B, colornames.Darkolivegreen)
	}

	r.fillRect(screen, a.X-camX, a.Y-camY, a.W, a.H, colornames.Crimson)

	// thin strip on the leading edge so facing is visible on a flat rect
	stripW := 4.0
	stripX := a.X - camX
	if a.Facing >= 0 {
		stripX += a.W - stripW
	}
	r.fillRect(screen, stripX, a.Y-camY, stripW, a.H, colornames.Mistyrose)
}

func (r *Renderer) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(r.unit, op)
}
