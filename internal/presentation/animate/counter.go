package animate

import (
	"time"
)

// Animation parameters: a fixed wall-clock duration split into a fixed
// number of discrete steps (a 33.3ms cadence).
const (
	Duration = 2000 * time.Millisecond
	Steps    = 60
)

// Counter interpolates a set of displayed integers from zero to their
// targets. It is an explicit finite-state loop {step, targets, ticker}
// driven from the owner's event loop: the owner selects on Tick(), calls
// Advance() per tick, and must call Stop() on teardown so the ticker can
// never fire against a torn-down view. A counter runs once; a data reload
// creates a fresh one.
//
// Counter is not safe for concurrent use; it is owned by a single event
// loop.
type Counter struct {
	targets []int
	values  []int
	step    int
	ticker  *time.Ticker
	stopped bool
}

// NewCounter creates a counter for the given targets. Negative targets are
// clamped to zero.
func NewCounter(targets []int) *Counter {
	clamped := make([]int, len(targets))
	for i, t := range targets {
		if t > 0 {
			clamped[i] = t
		}
	}
	return &Counter{
		targets: clamped,
		values:  make([]int, len(targets)),
	}
}

// Start begins ticking. Starting an already started or stopped counter is
// a no-op.
func (c *Counter) Start() {
	if c.ticker == nil && !c.stopped {
		c.ticker = time.NewTicker(Duration / Steps)
	}
}

// Tick returns the step channel. Before Start (and after Stop) it returns
// nil, which never fires in a select.
func (c *Counter) Tick() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}

// Advance moves the animation one step forward and reports whether the
// values changed. Once progress reaches 1 the ticker is released and all
// further calls return false; no updates are emitted past the final step.
func (c *Counter) Advance() bool {
	if c.stopped || c.step >= Steps {
		return false
	}

	c.step++
	for i, target := range c.targets {
		c.values[i] = ValueAt(c.step, target)
	}

	if c.step >= Steps {
		c.Stop()
	}
	return true
}

// Values returns a copy of the currently displayed values.
func (c *Counter) Values() []int {
	out := make([]int, len(c.values))
	copy(out, c.values)
	return out
}

// Done reports whether the animation has reached its final step.
func (c *Counter) Done() bool {
	return c.step >= Steps
}

// Stop releases the ticker. It is idempotent and mandatory on teardown.
func (c *Counter) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.stopped = true
}

// ValueAt computes the displayed value at a given step:
// floor(progress x target) with progress = step/Steps clamped to [0,1].
func ValueAt(step, target int) int {
	progress := float64(step) / float64(Steps)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return int(progress * float64(target))
}
