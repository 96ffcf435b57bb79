// Package pomodoro implements the pomo session state machine.
//
// A Timer owns a single Status record, persisted through a Store, and moves
// it between idle, focus and break. Expiry is not a state: a focus session
// whose end has passed is still a focus session until something replaces it.
// Display is where expiry is acted on: it sends the transition
// notification (at most once every five minutes), clears one-shot sessions,
// and applies the working-hours rules that start a session when the work day
// begins and clear it when the work day ends.
//
// The Timer never reads the wall clock directly; tests supply a Clock.
// Working-hours transitions happen on the first call after a boundary, so a
// status bar polling Display every few seconds sees them promptly.
package pomodoro
