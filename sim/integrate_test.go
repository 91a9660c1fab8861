package sim

import (
	"math"
	"testing"
)

func TestIntegrateGravityMonotonic(t *testing.T) {
	tn := DefaultTuning()
	a := NewActor(100, 100, tn)

	prev := a.VY
	for i := 0; i < 120; i++ {
		integrate(&a, Snapshot{}, 1.0/60.0, tn)
		if a.VY <= prev {
			t.Fatalf("tick %d: vy did not increase: prev=%g now=%g", i, prev, a.VY)
		}
		prev = a.VY
	}
}

func TestIntegrateSpeedClamp(t *testing.T) {
	tn := DefaultTuning()

	cases := []struct {
		name string
		in   func(tick int) Snapshot
	}{
		{"hold_right", func(int) Snapshot { return Snapshot{Right: true} }},
		{"hold_left", func(int) Snapshot { return Snapshot{Left: true} }},
		{"alternate", func(tick int) Snapshot {
			if tick%7 < 4 {
				return Snapshot{Left: true}
			}
			return Snapshot{Right: true}
		}},
		{"both_keys", func(int) Snapshot { return Snapshot{Left: true, Right: true} }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewActor(0, 0, tn)
			a.OnGround = true
			for i := 0; i < 300; i++ {
				integrate(&a, c.in(i), 1.0/60.0, tn)
				if math.Abs(a.VX) > tn.MaxSpeed {
					t.Fatalf("tick %d: |vx|=%g exceeds max speed %g", i, math.Abs(a.VX), tn.MaxSpeed)
				}
			}
		})
	}
}

func TestIntegrateDegenerateDTIsNoOp(t *testing.T) {
	tn := DefaultTuning()

	cases := []struct {
		name string
		dt   float64
	}{
		{"zero", 0},
		{"negative", -1.0 / 60.0},
		{"nan", math.NaN()},
		{"pos_inf", math.Inf(1)},
		{"neg_inf", math.Inf(-1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewActor(10, 20, tn)
			a.VX = 120
			a.VY = -300
			before := a
			integrate(&a, Snapshot{Right: true, JumpEdge: true}, c.dt, tn)
			if a != before {
				t.Fatalf("dt=%v mutated actor: before=%+v after=%+v", c.dt, before, a)
			}
		})
	}
}

func TestIntegrateJumpLaunch(t *testing.T) {
	tn := DefaultTuning()
	a := NewActor(100, 356, tn)
	a.OnGround = true

	integrate(&a, Snapshot{JumpEdge: true, JumpHeld: true}, 1.0/60.0, tn)

	if a.VY != -tn.JumpSpeed {
		t.Fatalf("expected launch vy=%g, got %g", -tn.JumpSpeed, a.VY)
	}
	if a.OnGround {
		t.Fatalf("onGround should clear on launch")
	}
}

func TestIntegrateAirborneJumpEdgeDropped(t *testing.T) {
	tn := DefaultTuning()
	a := NewActor(100, 100, tn)

	integrate(&a, Snapshot{JumpEdge: true, JumpHeld: true}, 1.0/60.0, tn)

	want := tn.Gravity / 60.0
	if !almostEqual(a.VY, want, 1e-9) {
		t.Fatalf("airborne edge should not launch: vy=%g want %g", a.VY, want)
	}
}

func TestIntegrateGroundFriction(t *testing.T) {
	tn := DefaultTuning()
	dt := 1.0 / 60.0
	decel := tn.GroundFriction * dt

	cases := []struct {
		name   string
		vx     float64
		wantVX float64
	}{
		{"stops_without_crossing_pos", decel / 2, 0},
		{"stops_without_crossing_neg", -decel / 2, 0},
		{"decelerates_pos", 200, 200 - decel},
		{"decelerates_neg", -200, -200 + decel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewActor(0, 0, tn)
			a.OnGround = true
			a.VX = c.vx
			integrate(&a, Snapshot{}, dt, tn)
			if !almostEqual(a.VX, c.wantVX, 1e-9) {
				t.Fatalf("vx=%g want %g", a.VX, c.wantVX)
			}
		})
	}
}

func TestIntegrateAirDamping(t *testing.T) {
	tn := DefaultTuning()
	a := NewActor(0, 0, tn)
	a.VX = 200

	integrate(&a, Snapshot{}, 1.0/60.0, tn)

	want := 200 * tn.AirDamping
	if !almostEqual(a.VX, want, 1e-9) {
		t.Fatalf("air damping: vx=%g want %g", a.VX, want)
	}
	if a.VX == 0 {
		t.Fatalf("air damping should not hard-stop")
	}
}

func TestIntegrateFacing(t *testing.T) {
	tn := DefaultTuning()

	cases := []struct {
		name string
		in   Snapshot
		want int
	}{
		{"left", Snapshot{Left: true}, -1},
		{"right", Snapshot{Right: true}, 1},
		{"none_keeps_previous", Snapshot{}, 1},
		{"both_keeps_previous", Snapshot{Left: true, Right: true}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewActor(0, 0, tn)
			integrate(&a, c.in, 1.0/60.0, tn)
			if a.Facing != c.want {
				t.Fatalf("facing=%d want %d", a.Facing, c.want)
			}
		})
	}
}
