// Package script runs tengo input scripts: deterministic, replayable input
// sequences for the headless runner and for scenario tests. A script defines
//
//	update := func(tick) {
//	    return { left: false, right: tick < 120, jump: tick == 30 }
//	}
//
// and is invoked once per tick with the tick index.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/platformer/sim"
)

const dispatchScript = `
__out = update(__tick)
`

type Driver struct {
	compiled *tengo.Compiled
	prevJump bool
}

func New(src []byte) (*Driver, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), []byte(dispatchScript)...))
	if err := s.Add("__tick", 0); err != nil {
		return nil, fmt.Errorf("script: add __tick: %w", err)
	}
	if err := s.Add("__out", map[string]any{}); err != nil {
		return nil, fmt.Errorf("script: add __out: %w", err)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Driver{compiled: compiled}, nil
}

// Snapshot evaluates the script for one tick. The jump value is level-style
// (held); the driver derives the edge so holding jump across ticks fires
// exactly once, matching the keyboard latch.
func (d *Driver) Snapshot(tick int) (sim.Snapshot, error) {
	if err := d.compiled.Set("__tick", tick); err != nil {
		return sim.Snapshot{}, fmt.Errorf("script: set tick: %w", err)
	}
	if err := d.compiled.Run(); err != nil {
		return sim.Snapshot{}, fmt.Errorf("script: tick %d: %w", tick, err)
	}

	out := d.compiled.Get("__out").Map()
	jump := boolAt(out, "jump")

	in := sim.Snapshot{
		Left:     boolAt(out, "left"),
		Right:    boolAt(out, "right"),
		JumpHeld: jump,
		JumpEdge: jump && !d.prevJump,
	}
	d.prevJump = jump
	return in, nil
}

func boolAt(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
