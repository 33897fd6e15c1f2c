package presenter

import "time"

// Debouncer coalesces rapid triggers into one firing after a quiet period.
// It is tick-driven: Trigger restarts the quiet window and Fire reports, at
// most once per window, that the window has elapsed. All methods run on the
// UI thread; the zero value never fires.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	armed    bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger restarts the quiet window from now.
func (d *Debouncer) Trigger(now time.Time) {
	if d == nil {
		return
	}
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// Fire reports whether the quiet window has elapsed, disarming on success.
func (d *Debouncer) Fire(now time.Time) bool {
	if d == nil || !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	return true
}

// Armed reports whether a firing is pending.
func (d *Debouncer) Armed() bool {
	return d != nil && d.armed
}

// Cancel drops any pending firing.
func (d *Debouncer) Cancel() {
	if d == nil {
		return
	}
	d.armed = false
}
