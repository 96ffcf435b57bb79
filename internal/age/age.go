// Package age computes how long a session has been under way.
package age

import "time"

// Elapsed returns the time spent in a session at now. Once the session is
// over the result stops at end. ok is false when there is no start time.
func Elapsed(start, end, now time.Time) (time.Duration, bool) {
	if start.IsZero() {
		return 0, false
	}

	stop := now
	if !end.IsZero() && end.Before(now) {
		stop = end
	}

	elapsed := stop.Sub(start)
	if elapsed < 0 {
		return 0, true
	}
	return elapsed, true
}

// Overrun returns how long ago a session ended, or zero while it is still
// running.
func Overrun(end, now time.Time) time.Duration {
	if end.IsZero() || !now.After(end) {
		return 0
	}
	return now.Sub(end)
}
