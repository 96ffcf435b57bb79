// Package notify delivers desktop notifications for session transitions.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/pomo/internal/logging"
	"github.com/amonks/pomo/internal/validation"
	"github.com/google/uuid"
)

// BackendEnv selects the notification backend: "desktop" (default),
// "stderr" or "none".
const BackendEnv = "POMO_NOTIFIER"

// Notification is a single message to show the user.
type Notification struct {
	Message string
	Emoji   string
	Sound   string
}

// Title returns the notification title.
func (n Notification) Title() string {
	return strings.TrimSpace("Pomo " + n.Emoji)
}

// Desktop sends notifications through the platform notification service.
type Desktop struct {
	fallback io.Writer
}

// NewDesktop returns a desktop notifier. When no notification service is
// available a terminal bell is written to fallback.
func NewDesktop(fallback io.Writer) *Desktop {
	if fallback == nil {
		fallback = io.Discard
	}
	return &Desktop{fallback: fallback}
}

// Notify starts the platform notifier without waiting for it to finish.
func (d *Desktop) Notify(ctx context.Context, n Notification) error {
	id := uuid.NewString()
	logging.Logger.Info("sending notification", "id", id, "message", n.Message, "emoji", n.Emoji, "sound", n.Sound)
	if err := send(ctx, id, n); err != nil {
		logging.Logger.Warn("desktop notification unavailable, ringing bell", "id", id, "error", err)
		return terminalBell(d.fallback)
	}
	return nil
}

// Writer prints notifications as text lines.
type Writer struct {
	w io.Writer
}

// NewWriter returns a notifier that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Notify writes the notification as "title: message".
func (n *Writer) Notify(ctx context.Context, notification Notification) error {
	_, err := fmt.Fprintf(n.w, "%s: %s\n", notification.Title(), notification.Message)
	return err
}

// Discard drops every notification.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(context.Context, Notification) error {
	return nil
}

// Notifier is implemented by every backend in this package.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Backend names a notification backend.
type Backend string

const (
	BackendDesktop Backend = "desktop"
	BackendStderr  Backend = "stderr"
	BackendNone    Backend = "none"
)

// ValidBackends returns the accepted POMO_NOTIFIER values.
func ValidBackends() []Backend {
	return []Backend{BackendDesktop, BackendStderr, BackendNone}
}

// ErrInvalidBackend indicates an unknown POMO_NOTIFIER value.
var ErrInvalidBackend = errors.New("unknown " + BackendEnv + " value")

// FromEnv returns the backend named by POMO_NOTIFIER.
func FromEnv(stderr io.Writer) (Notifier, error) {
	switch backend := Backend(strings.ToLower(strings.TrimSpace(os.Getenv(BackendEnv)))); backend {
	case "", BackendDesktop:
		return NewDesktop(stderr), nil
	case BackendStderr:
		return NewWriter(stderr), nil
	case BackendNone:
		return Discard{}, nil
	default:
		return nil, validation.FormatInvalidValueError(ErrInvalidBackend, backend, ValidBackends())
	}
}

// appleScript builds the osascript program used on macOS.
func appleScript(n Notification) string {
	return fmt.Sprintf(
		`display notification "%s" with title "%s" sound name "%s"`,
		escapeAppleScript(n.Message),
		escapeAppleScript(n.Title()),
		escapeAppleScript(n.Sound),
	)
}

func escapeAppleScript(value string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
}

// notifySendArgs builds the notify-send arguments used on Linux. The id is
// attached as a hint so the popup can be matched to its log entries.
func notifySendArgs(id string, n Notification) []string {
	args := []string{"--app-name=pomo"}
	if id != "" {
		args = append(args, "--hint=string:x-pomo-id:"+id)
	}
	if sound := freedesktopSound(n.Sound); sound != "" {
		args = append(args, "--hint=string:sound-name:"+sound)
	}
	return append(args, n.Title(), n.Message)
}

func freedesktopSound(sound string) string {
	switch sound {
	case "":
		return ""
	case "default":
		return "complete"
	default:
		return sound
	}
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell(w io.Writer) error {
	_, err := fmt.Fprint(w, "\a")
	return err
}
