package core

import "time"

// slipCap bounds how many ticks of backlog we will try to catch up on. Past
// that the machine is too slow and we drop the excess instead of spiraling.
const slipCap = 10

// FixedStep accumulates elapsed wall-clock time and doles it out as a whole
// number of fixed-duration simulation steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	slipped     bool
	now         func() time.Time
}

// NewFixedStep constructs a controller for the given step duration.
func NewFixedStep(step time.Duration) *FixedStep {
	if step <= 0 {
		step = time.Second / 30
	}
	return &FixedStep{step: step, accumulator: step, now: time.Now}
}

// Steps reports how many simulation ticks are due since the last call.
// A backlog past slipCap ticks is truncated to a single tick.
func (f *FixedStep) Steps() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	if now.Before(f.last) {
		// Clock went backwards; stutter rather than compute a bogus delta.
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator > f.step*slipCap {
		f.accumulator = f.step
		f.slipped = true
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Slipped reports whether the backlog cap has ever been hit, so the caller
// can warn once about running too slow.
func (f *FixedStep) Slipped() bool { return f.slipped }
