package session

// Timer is the per-question countdown owned by a Session.
//
// Every Start or Stop issues a new tag. Tick messages carry the tag they
// were armed with; a tick whose tag no longer matches is stale and is
// ignored, so a tick left over from a previous question, a restart, or a
// disposed screen can never advance the session.
type Timer struct {
	allowance int
	remaining int
	tag       int
	running   bool
}

// NewTimer creates a stopped timer with the given allowance in seconds.
func NewTimer(allowance int) Timer {
	return Timer{allowance: allowance, remaining: allowance}
}

// Start resets the countdown to the full allowance and runs it under a new tag.
func (t *Timer) Start() {
	t.tag++
	t.remaining = t.allowance
	t.running = true
}

// Stop halts the countdown and invalidates any outstanding tick.
// The remaining time is kept for display.
func (t *Timer) Stop() {
	t.tag++
	t.running = false
}

// Tick consumes one second if tag is current. It reports whether the tick
// was applied and whether the countdown reached zero.
func (t *Timer) Tick(tag int) (applied, expired bool) {
	if !t.running || tag != t.tag {
		return false, false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.Stop()
		return true, true
	}
	return true, false
}

// Tag returns the current generation tag.
func (t *Timer) Tag() int { return t.tag }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() int { return t.remaining }

// Allowance returns the full per-question allowance in seconds.
func (t *Timer) Allowance() int { return t.allowance }

// Fraction returns remaining/allowance in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.allowance <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.allowance)
}
