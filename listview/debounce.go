package listview

import "time"

// DefaultSettleDelay is how long search input must stay quiet before the
// pending value is committed.
const DefaultSettleDelay = 500 * time.Millisecond

// Debouncer is an explicit Idle -> Pending -> Committed machine over caller
// supplied timestamps, so it can be unit-tested without fake timers.
type Debouncer struct {
	delay    time.Duration
	value    string
	deadline time.Time
	pending  bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Debouncer{delay: delay}
}

// Input records a keystroke: the pending value is replaced and the settle
// deadline pushed out.
func (d *Debouncer) Input(value string, now time.Time) {
	d.value = value
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Poll reports the settled value exactly once after the delay has elapsed
// with no further input.
func (d *Debouncer) Poll(now time.Time) (string, bool) {
	if !d.pending || now.Before(d.deadline) {
		return "", false
	}
	d.pending = false
	return d.value, true
}

// Pending reports whether input is waiting to settle.
func (d *Debouncer) Pending() bool { return d.pending }
