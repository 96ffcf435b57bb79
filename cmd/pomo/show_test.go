package main

import (
	"testing"
	"time"

	"github.com/amonks/pomo/internal/state"
	"github.com/amonks/pomo/pomodoro"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func newShowTimer(t *testing.T, now time.Time) *pomodoro.Timer {
	t.Helper()
	timer, err := pomodoro.New(pomodoro.Options{
		Store: state.NewStore(t.TempDir()),
		Clock: fixedClock(now),
	})
	if err != nil {
		t.Fatalf("new timer: %v", err)
	}
	return timer
}

func TestFormatStatusDetails_Running(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.Local)
	timer := newShowTimer(t, now)

	got := formatStatusDetails(timer, pomodoro.Status{
		Type:  pomodoro.StatusFocus,
		Start: now.Add(-5 * time.Minute),
		End:   now.Add(20 * time.Minute),
	}, false)

	want := "Focus session\n" +
		"Type       focus\n" +
		"Started    09:55:00\n" +
		"Ends       10:20:00\n" +
		"Remaining  🍅 20m\n" +
		"One-shot   no\n" +
		"Notified   never\n" +
		"Elapsed    5m\n"
	if got != want {
		t.Fatalf("unexpected details:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatStatusDetails_Expired(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.Local)
	timer := newShowTimer(t, now)
	notified := now.Add(-time.Minute)

	got := formatStatusDetails(timer, pomodoro.Status{
		Type:         pomodoro.StatusBreak,
		Start:        now.Add(-7 * time.Minute),
		End:          now.Add(-2 * time.Minute),
		LastNotified: &notified,
		OneShot:      true,
	}, false)

	want := "Break\n" +
		"Type       break\n" +
		"Started    09:53:00\n" +
		"Ends       09:58:00\n" +
		"Remaining  🔴 -2m\n" +
		"One-shot   yes\n" +
		"Notified   09:59:00\n" +
		"Elapsed    5m\n" +
		"Overdue    2m\n"
	if got != want {
		t.Fatalf("unexpected details:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatStatusDetails_Idle(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.Local)
	timer := newShowTimer(t, now)

	got := formatStatusDetails(timer, pomodoro.IdleStatus(now.Add(-time.Hour)), false)
	want := "Idle\nType   idle\nSince  09:00:00\n"
	if got != want {
		t.Fatalf("unexpected details:\n%s\nwant:\n%s", got, want)
	}
}
