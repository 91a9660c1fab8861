package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/platformer/sim"
)

// Input polls the keyboard and, when present, the first standard gamepad
// into a per-tick snapshot. Jump presses go through the world's latch so a
// press landing between ticks is kept until the tick consumes it and never
// fires twice.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update(latch *sim.JumpLatch) sim.Snapshot {
	var in sim.Snapshot

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Left = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Right = true
	}

	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace)

	ids := ebiten.GamepadIDs()
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			in.Left = true
			in.Right = false
		} else if leftX > 0.3 {
			in.Right = true
			in.Left = false
		}

		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		jumpHeld = jumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	if jumpPressed {
		latch.Press()
	}
	if !jumpHeld {
		latch.Release()
	}
	in.JumpHeld = latch.Held()
	return in
}
