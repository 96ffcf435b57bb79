package pomodoro

import (
	"time"

	statestore "github.com/amonks/pomo/internal/state"
)

// StatusType is the kind of the current session.
type StatusType = statestore.StatusType

const (
	// StatusIdle indicates no session is running.
	StatusIdle StatusType = statestore.StatusIdle
	// StatusFocus indicates a focus session.
	StatusFocus StatusType = statestore.StatusFocus
	// StatusBreak indicates a break.
	StatusBreak StatusType = statestore.StatusBreak
)

// Status is the persisted session record.
type Status = statestore.Status

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the local timezone.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// IdleStatus returns the record written when a session is cleared.
func IdleStatus(now time.Time) Status {
	return statestore.IdleStatus(now)
}
