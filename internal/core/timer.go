package core

import "time"

// FixedStep paces sequence steps so each one stays on screen for a fixed
// delay before the next is computed.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per delay. The first
// call to ShouldStep fires immediately.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetDelay(delay)
	fs.accumulator = fs.step
	return fs
}

// SetDelay changes the pause between steps. Non-positive delays step on
// every call.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	f.step = delay
}

// Delay returns the configured pause.
func (f *FixedStep) Delay() time.Duration { return f.step }

// Reset rearms the pacer so the next call fires immediately.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the sequence should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}
