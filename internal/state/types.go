// Package state manages the pomo status file.
//
// The status file (~/.config/pomo/status.json) holds the single current
// session. Writes replace the whole file atomically; there is no locking, so
// concurrent invocations resolve as last writer wins.
package state

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/pomo/internal/validation"
)

// ErrInvalidStatusType indicates a status file with an unknown session type.
var ErrInvalidStatusType = errors.New("invalid status type")

// StatusType is the kind of the current session.
type StatusType string

const (
	// StatusIdle indicates no session is running.
	StatusIdle StatusType = "idle"
	// StatusFocus indicates a focus session.
	StatusFocus StatusType = "focus"
	// StatusBreak indicates a break.
	StatusBreak StatusType = "break"
)

// ValidStatusTypes returns all valid status type values.
func ValidStatusTypes() []StatusType {
	return []StatusType{StatusIdle, StatusFocus, StatusBreak}
}

// IsValid returns true if the type is a known value.
func (t StatusType) IsValid() bool {
	for _, valid := range ValidStatusTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// UnmarshalText accepts any letter case, so older files written as "Focus"
// still decode.
func (t *StatusType) UnmarshalText(text []byte) error {
	value := StatusType(strings.ToLower(string(text)))
	if !value.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidStatusType, StatusType(text), ValidStatusTypes())
	}
	*t = value
	return nil
}

// Status is the persisted session record.
type Status struct {
	Type         StatusType `json:"type"`
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	LastNotified *time.Time `json:"last_notified"`
	OneShot      bool       `json:"one_shot"`
}

// IdleStatus returns the canonical cleared record.
func IdleStatus(now time.Time) Status {
	return Status{Type: StatusIdle, Start: now, End: now}
}

// Running reports whether the session has not yet reached its end.
func (s Status) Running(now time.Time) bool {
	return s.Type != StatusIdle && s.End.After(now)
}

// record is the on-disk shape, including fields only older files carry.
type record struct {
	Type         StatusType `json:"type"`
	Start        *time.Time `json:"start"`
	End          time.Time  `json:"end"`
	LastNotified *time.Time `json:"last_notified"`
	OneShot      bool       `json:"one_shot"`
	Notified     *bool      `json:"notified,omitempty"`
}

// status converts a decoded record, migrating the older shape that had a
// boolean notified flag and no start time.
func (r record) status() (Status, error) {
	if r.Type == "" {
		return Status{}, fmt.Errorf("missing status type")
	}
	if r.End.IsZero() {
		return Status{}, fmt.Errorf("missing end time")
	}

	st := Status{
		Type:         r.Type,
		End:          r.End,
		LastNotified: r.LastNotified,
		OneShot:      r.OneShot,
	}
	if r.Start != nil {
		st.Start = *r.Start
	} else {
		st.Start = r.End
	}
	if r.Notified != nil && *r.Notified && st.LastNotified == nil {
		notified := r.End
		st.LastNotified = &notified
	}
	return st, nil
}
