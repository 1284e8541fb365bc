package sim

import "math"

// TimerMode selects whether a timer fires once or wraps around.
type TimerMode int

const (
	// TimerOnce fires a single time and then stays finished.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps its elapsed time each period and reports
	// JustFinished on the tick the period elapses.
	TimerRepeating
)

// Timer is a countdown advanced by explicit Tick calls. Repeating timers
// wrap automatically, so the firing opportunity lasts exactly one tick;
// callers that want to delay the next firing call Reset.
type Timer struct {
	duration     float64
	elapsed      float64
	mode         TimerMode
	finished     bool
	justFinished bool
}

// NewTimer creates a timer with the given period in seconds.
func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{duration: seconds, mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if t.mode == TimerOnce && t.finished {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return
	}
	t.justFinished = true
	if t.mode == TimerRepeating {
		t.elapsed = math.Mod(t.elapsed, t.duration)
	} else {
		t.elapsed = t.duration
		t.finished = true
	}
}

// Reset rewinds the timer to the start of its period.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// JustFinished reports whether the period elapsed during the last Tick.
func (t Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether the timer has elapsed. For repeating timers
// this is true only on the tick the period wraps.
func (t Timer) Finished() bool {
	if t.mode == TimerRepeating {
		return t.justFinished
	}
	return t.finished
}

// Remaining returns the seconds left until the timer elapses.
func (t Timer) Remaining() float64 {
	rem := t.duration - t.elapsed
	if rem < 0 {
		return 0
	}
	return rem
}

// Duration returns the timer's period in seconds.
func (t Timer) Duration() float64 {
	return t.duration
}
