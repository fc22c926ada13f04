package clock

import "time"

// Clock is the single source of "now" for every lifecycle and lock-window
// decision. Injecting it keeps time-gated logic deterministic under test.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

// NewSystem returns the production clock.
func NewSystem() System {
	return System{}
}

// Now returns the current wall-clock time.
func (System) Now() time.Time {
	return time.Now()
}

// Fake is a manually controlled clock for tests.
type Fake struct {
	now time.Time
}

// NewFake returns a fake clock frozen at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the frozen instant.
func (f *Fake) Now() time.Time {
	return f.now
}

// Set moves the clock to t.
func (f *Fake) Set(t time.Time) {
	f.now = t
}

// Advance moves the clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
