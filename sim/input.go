package sim

// Snapshot is the per-tick input state the world reads. The poller owns it;
// the world never writes back into the poller's copy.
type Snapshot struct {
	Left     bool
	Right    bool
	JumpHeld bool
	// JumpEdge is true only on the tick a jump press is consumed. Pollers
	// normally leave it false and press the world's JumpLatch instead;
	// scripted drivers may set it directly.
	JumpEdge bool
}

type latchState int

const (
	latchReleased latchState = iota
	latchPressedUnconsumed
	latchHeld
)

// JumpLatch is the edge-trigger state machine for the jump key. A press
// between ticks latches until the next tick consumes it, so a press is never
// lost to frame pacing and never fires twice. Pollers call Press/Release
// from key transitions; only the world tick calls Consume.
type JumpLatch struct {
	state latchState
}

// Press records a released-to-held transition. Pressing while already held
// or pending is a no-op.
func (l *JumpLatch) Press() {
	if l.state == latchReleased {
		l.state = latchPressedUnconsumed
	}
}

// Release returns the latch to its rest state.
func (l *JumpLatch) Release() {
	l.state = latchReleased
}

// Consume reports whether an unconsumed press is pending and moves it to
// held. It returns true at most once per press.
func (l *JumpLatch) Consume() bool {
	if l.state == latchPressedUnconsumed {
		l.state = latchHeld
		return true
	}
	return false
}

// Held reports whether the key is down, consumed or not.
func (l *JumpLatch) Held() bool {
	return l.state != latchReleased
}
