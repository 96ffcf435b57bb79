package pomodoro

import (
	"context"
	"errors"
	"time"

	"github.com/amonks/pomo/internal/notify"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type memoryStore struct {
	status   *Status
	writes   int
	readErr  error
	writeErr error
}

func (s *memoryStore) Read() (*Status, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	if s.status == nil {
		return nil, nil
	}
	copied := *s.status
	if s.status.LastNotified != nil {
		at := *s.status.LastNotified
		copied.LastNotified = &at
	}
	return &copied, nil
}

func (s *memoryStore) Write(st Status) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.status = &st
	return nil
}

func (s *memoryStore) Clear(now time.Time) error {
	return s.Write(IdleStatus(now))
}

type recordingNotifier struct {
	sent []notify.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, notification notify.Notification) error {
	n.sent = append(n.sent, notification)
	return n.err
}

func (n *recordingNotifier) messages() []string {
	messages := make([]string, 0, len(n.sent))
	for _, notification := range n.sent {
		messages = append(messages, notification.Message)
	}
	return messages
}

var errBoom = errors.New("boom")
