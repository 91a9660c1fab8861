// Package sim is the renderer-independent movement core: one actor under
// gravity and control acceleration, a static platform set, and a scrolling
// camera. A World is advanced one tick at a time by an external frame
// driver; nothing in this package touches the display, the clock, or the
// input devices.
package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// World owns the mutable simulation state. Only Tick mutates the actor and
// camera; collaborators receive value snapshots.
type World struct {
	tn    Tuning
	level *Level

	actor Actor
	cam   Camera
	latch JumpLatch

	scratch []cp.BB
}

func NewWorld(level *Level, tn Tuning) *World {
	w := &World{
		tn:    tn,
		level: level,
		actor: NewActor(level.SpawnX, level.SpawnY, tn),
	}
	w.cam.SnapTo(w.actor.X+w.actor.W/2, tn)
	return w
}

// Latch exposes the jump-edge latch to input pollers. Pollers press and
// release it; consumption happens exactly once per tick inside Tick.
func (w *World) Latch() *JumpLatch {
	return &w.latch
}

// Tuning returns the active world constants.
func (w *World) Tuning() Tuning {
	return w.tn
}

// Level returns the immutable platform set.
func (w *World) Level() *Level {
	return w.level
}

// Actor returns the current pose by value.
func (w *World) Actor() Actor {
	return w.actor
}

// Tick advances the simulation by dt seconds: integrate, resolve, camera,
// in that order. dt is clamped to Tuning.MaxDT; a zero or non-finite dt is
// a no-op that does not consume a pending jump press. The resolved pose is
// returned by value for the renderer.
func (w *World) Tick(in Snapshot, dt float64) Actor {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return w.actor
	}
	if dt > w.tn.MaxDT {
		dt = w.tn.MaxDT
	}

	in.JumpHeld = in.JumpHeld || w.latch.Held()
	in.JumpEdge = in.JumpEdge || w.latch.Consume()

	prev := cp.Vector{X: w.actor.X, Y: w.actor.Y}
	integrate(&w.actor, in, dt, w.tn)

	prevBox := cp.BB{L: prev.X, B: prev.Y, R: prev.X + w.actor.W, T: prev.Y + w.actor.H}
	w.scratch = w.level.Candidates(prevBox.Center(), w.tn.BroadPhaseRadius, w.scratch[:0])
	resolve(&w.actor, prev, w.scratch)

	if w.level.Height > 0 && w.actor.Y > w.level.Height {
		w.respawn()
	}

	w.cam.Update(w.actor.X+w.actor.W/2, dt, w.tn)
	return w.actor
}

// CameraOffset returns the scroll offset for the renderer. y is always 0.
func (w *World) CameraOffset() (x, y float64) {
	return w.cam.X, w.cam.Y
}

// SetCameraBounds forwards viewport clamping bounds to the camera.
func (w *World) SetCameraBounds(minX, maxX float64) {
	w.cam.SetBounds(minX, maxX)
}

func (w *World) respawn() {
	w.actor.X = w.level.SpawnX
	w.actor.Y = w.level.SpawnY
	w.actor.VX = 0
	w.actor.VY = 0
	w.actor.OnGround = false
	w.cam.SnapTo(w.actor.X+w.actor.W/2, w.tn)
}
