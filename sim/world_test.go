package sim

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// settle ticks the world until the actor reports ground contact.
func settle(t *testing.T, w *World) {
	t.Helper()
	for i := 0; i < 240; i++ {
		if w.Tick(Snapshot{}, 1.0/60.0).OnGround {
			return
		}
	}
	t.Fatalf("actor never settled on ground")
}

func TestWorldJumpEdgeFiresOncePerPress(t *testing.T) {
	tn := DefaultTuning()
	w := NewWorld(groundLevel(t), tn)
	settle(t, w)

	w.Latch().Press()

	launches := 0
	for i := 0; i < 300; i++ {
		before := w.Actor()
		a := w.Tick(Snapshot{}, 1.0/60.0)
		if before.OnGround && a.VY == -tn.JumpSpeed {
			launches++
		}
	}
	// The key is never released: one launch, then the actor lands and sits
	// there, the held edge spent.
	if launches != 1 {
		t.Fatalf("expected exactly 1 launch, got %d", launches)
	}
	if a := w.Actor(); !a.OnGround {
		t.Fatalf("actor should have landed again")
	}
}

func TestWorldAirbornePressIsDroppedNotQueued(t *testing.T) {
	tn := DefaultTuning()
	lvl := groundLevel(t)
	w := NewWorld(lvl, tn)
	w.actor.Y = 100 // high above the floor, falling

	w.Latch().Press() // pressed mid-air

	for i := 0; i < 300; i++ {
		a := w.Tick(Snapshot{}, 1.0/60.0)
		if a.VY == -tn.JumpSpeed {
			t.Fatalf("tick %d: airborne press fired a jump after landing", i)
		}
		if a.OnGround && i > 0 {
			break
		}
	}
	// A few more grounded ticks; the stale press must stay spent.
	for i := 0; i < 60; i++ {
		if a := w.Tick(Snapshot{}, 1.0/60.0); !a.OnGround {
			t.Fatalf("late jump fired from a dropped press")
		}
	}
}

func TestWorldTickClampsDT(t *testing.T) {
	tn := DefaultTuning()
	a := NewWorld(groundLevel(t), tn)
	b := NewWorld(groundLevel(t), tn)
	a.actor.Y = 100
	b.actor.Y = 100

	pa := a.Tick(Snapshot{}, 10)
	pb := b.Tick(Snapshot{}, tn.MaxDT)

	if pa != pb {
		t.Fatalf("dt=10 should behave as dt=MaxDT: %+v vs %+v", pa, pb)
	}
}

func TestWorldDegenerateDTKeepsPendingPress(t *testing.T) {
	tn := DefaultTuning()
	w := NewWorld(groundLevel(t), tn)
	settle(t, w)
	before := w.Actor()

	w.Latch().Press()

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if a := w.Tick(Snapshot{}, dt); a != before {
			t.Fatalf("dt=%v mutated the world: %+v", dt, a)
		}
	}

	// The paused ticks must not have eaten the press: the next real tick
	// still launches.
	a := w.Tick(Snapshot{}, 1.0/60.0)
	if a.VY != -tn.JumpSpeed {
		t.Fatalf("press lost across degenerate-dt ticks: vy=%g", a.VY)
	}
}

func TestWorldRespawnAfterFallingOut(t *testing.T) {
	tn := DefaultTuning()
	lvl := groundLevel(t)
	w := NewWorld(lvl, tn)
	w.actor.X = 40
	w.actor.Y = lvl.Height + 50
	w.actor.VY = 900

	a := w.Tick(Snapshot{}, 1.0/60.0)

	if a.X != lvl.SpawnX || a.Y != lvl.SpawnY {
		t.Fatalf("expected respawn at (%g,%g), got (%g,%g)", lvl.SpawnX, lvl.SpawnY, a.X, a.Y)
	}
	if a.VX != 0 || a.VY != 0 {
		t.Fatalf("respawn should zero velocity, got (%g,%g)", a.VX, a.VY)
	}
}

func TestWorldCameraOffsetYIsZero(t *testing.T) {
	tn := DefaultTuning()
	w := NewWorld(groundLevel(t), tn)
	for i := 0; i < 120; i++ {
		w.Tick(Snapshot{Right: true}, 1.0/60.0)
		if _, y := w.CameraOffset(); y != 0 {
			t.Fatalf("camera y must stay 0, got %g", y)
		}
	}
}

func TestWorldCameraFollowsResolvedActor(t *testing.T) {
	tn := DefaultTuning()
	w := NewWorld(groundLevel(t), tn)
	settle(t, w)

	for i := 0; i < 600; i++ {
		w.Tick(Snapshot{Right: true}, 1.0/60.0)
	}
	a := w.Actor()
	target := a.X + a.W/2 - tn.CameraLead
	x, _ := w.CameraOffset()
	// The actor is still moving, so the camera trails the target; it must
	// be between its start and the target, on the target's side of spawn.
	if x <= 0 || x > target {
		t.Fatalf("camera x=%g not trailing target %g", x, target)
	}
}
