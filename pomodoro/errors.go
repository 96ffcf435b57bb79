package pomodoro

import "errors"

var (
	// ErrNoSession indicates no session is currently running.
	ErrNoSession = errors.New("no session in progress")
	// ErrInvalidDuration indicates duration text could not be parsed.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrNoStore indicates a Timer was built without a status store.
	ErrNoStore = errors.New("status store is required")
)
