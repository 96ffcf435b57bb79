package pomodoro

import (
	"context"
	"fmt"
	"time"

	"github.com/amonks/pomo/internal/config"
	"github.com/amonks/pomo/internal/logging"
	"github.com/amonks/pomo/internal/notify"
	"github.com/amonks/pomo/internal/ui"
)

const (
	// FallbackFocusDuration is used when neither the requested nor the
	// configured focus duration parses.
	FallbackFocusDuration = 25 * time.Minute
	// FallbackBreakDuration is used when neither the requested nor the
	// configured break duration parses.
	FallbackBreakDuration = 5 * time.Minute
	// RenotifyInterval is the minimum gap between expiry notifications.
	RenotifyInterval = 5 * time.Minute
)

const (
	messageFocusStarted   = "Your focus session has started!"
	messageBreakStarted   = "Your break has started!"
	messageStopped        = "Your session has stopped!"
	messageFocusCompleted = "Focus completed, let's take a break!"
	messageBreakOver      = "Break is over, back to work!"
)

// Store persists the single Status record.
type Store interface {
	Read() (*Status, error)
	Write(Status) error
	Clear(now time.Time) error
}

// Notifier delivers notifications. Failures are logged and otherwise
// ignored.
type Notifier interface {
	Notify(ctx context.Context, n notify.Notification) error
}

// Options configures a Timer.
type Options struct {
	Store    Store
	Config   *config.Config
	Notifier Notifier
	Clock    Clock
}

// StartOptions configures StartFocus, StartBreak and Toggle.
type StartOptions struct {
	// Duration overrides the configured default; invalid text falls back to
	// the configured default.
	Duration string
	Notify   bool
	OneShot  bool
}

// DisplayOptions configures Display.
type DisplayOptions struct {
	NoEmoji bool
	Notify  bool
}

// Timer runs session operations against a Store.
type Timer struct {
	store    Store
	config   *config.Config
	notifier Notifier
	clock    Clock
}

// New creates a Timer. Config, Notifier and Clock default to the built-in
// configuration, no notifications and the system clock.
func New(opts Options) (*Timer, error) {
	if opts.Store == nil {
		return nil, ErrNoStore
	}
	t := &Timer{
		store:    opts.Store,
		config:   opts.Config,
		notifier: opts.Notifier,
		clock:    opts.Clock,
	}
	if t.config == nil {
		t.config = config.Default()
	}
	if t.notifier == nil {
		t.notifier = notify.Discard{}
	}
	if t.clock == nil {
		t.clock = SystemClock{}
	}
	return t, nil
}

// Now returns the timer's current time.
func (t *Timer) Now() time.Time {
	return t.clock.Now()
}

// Config returns the configuration the timer was built with.
func (t *Timer) Config() *config.Config {
	return t.config
}

// Current returns the stored status without applying any transitions.
func (t *Timer) Current() (*Status, error) {
	return t.store.Read()
}

// StartFocus replaces the current status with a new focus session.
func (t *Timer) StartFocus(ctx context.Context, opts StartOptions) (*Status, error) {
	duration := t.resolveDuration(opts.Duration, t.config.Durations.Focus, FallbackFocusDuration)
	return t.start(ctx, StatusFocus, duration, opts, notify.Notification{
		Message: messageFocusStarted,
		Emoji:   t.config.Emojis.Focus,
		Sound:   t.config.Sound.Start,
	})
}

// StartBreak replaces the current status with a new break.
func (t *Timer) StartBreak(ctx context.Context, opts StartOptions) (*Status, error) {
	duration := t.resolveDuration(opts.Duration, t.config.Durations.Break, FallbackBreakDuration)
	return t.start(ctx, StatusBreak, duration, opts, notify.Notification{
		Message: messageBreakStarted,
		Emoji:   t.config.Emojis.Break,
		Sound:   t.config.Sound.Start,
	})
}

// Toggle starts a break after a focus session and a focus session otherwise.
func (t *Timer) Toggle(ctx context.Context, opts StartOptions) (*Status, error) {
	st, err := t.store.Read()
	if err != nil {
		return nil, err
	}
	if st != nil && st.Type == StatusFocus {
		return t.StartBreak(ctx, opts)
	}
	return t.StartFocus(ctx, opts)
}

// Stop clears the current session.
func (t *Timer) Stop(ctx context.Context, sendNotification bool) error {
	if err := t.store.Clear(t.clock.Now()); err != nil {
		return err
	}
	logging.Logger.Info("session stopped")

	if sendNotification {
		t.notify(ctx, notify.Notification{
			Message: messageStopped,
			Emoji:   t.config.Emojis.Focus,
			Sound:   t.config.Sound.End,
		})
	}
	return nil
}

// ChangeDuration moves the end of the running session to now plus the
// parsed duration. It returns ErrNoSession when no session is running and
// ErrInvalidDuration when text does not parse; the status is unchanged in
// both cases.
func (t *Timer) ChangeDuration(ctx context.Context, text string) (*Status, error) {
	now := t.clock.Now()
	st, err := t.store.Read()
	if err != nil {
		return nil, err
	}
	if st == nil || !st.Running(now) {
		return nil, ErrNoSession
	}

	duration, err := ParseDuration(text)
	if err != nil {
		return nil, err
	}

	st.End = now.Add(duration)
	if err := t.store.Write(*st); err != nil {
		return nil, err
	}
	logging.Logger.Info("session duration changed", "type", st.Type, "end", st.End)
	return st, nil
}

// Display applies any due transitions and returns the status line. ok is
// false when there is nothing to show.
func (t *Timer) Display(ctx context.Context, opts DisplayOptions) (line string, ok bool, err error) {
	st, err := t.store.Read()
	if err != nil || st == nil {
		return "", false, err
	}

	now := t.clock.Now()

	if workStart, found := t.workingHour(t.config.WorkingHours.Start, now); found {
		if st.End.Before(workStart) && now.After(workStart) {
			logging.Logger.Info("work day started, starting focus session", "work_start", workStart)
			_, err := t.StartFocus(ctx, StartOptions{})
			return "", false, err
		}
	}

	if workEnd, found := t.workingHour(t.config.WorkingHours.End, now); found {
		if st.Start.Before(workEnd) && now.After(workEnd) {
			logging.Logger.Info("work day ended, clearing session", "work_end", workEnd)
			return "", false, t.store.Clear(now)
		}
	}

	if st.Type == StatusIdle {
		return "", false, nil
	}

	remaining := st.End.Sub(now)
	expired := int64(remaining/time.Second) <= 0

	if opts.Notify && expired && shouldNotify(st, now) {
		t.notify(ctx, t.expiryNotification(st.Type))
		st.LastNotified = &now
		if err := t.store.Write(*st); err != nil {
			return "", false, err
		}
	}

	if st.OneShot && expired {
		logging.Logger.Info("one-shot session ended, clearing", "type", st.Type)
		return "", false, t.store.Clear(now)
	}

	return t.render(*st, remaining, opts.NoEmoji), true, nil
}

// Emoji returns the glyph Display would show for st at now.
func (t *Timer) Emoji(st Status, now time.Time) string {
	return SelectEmoji(t.config.Emojis, st, st.End.Sub(now))
}

func (t *Timer) render(st Status, remaining time.Duration, noEmoji bool) string {
	formatted := ui.FormatRemaining(remaining)
	if noEmoji {
		return formatted
	}
	return fmt.Sprintf("%s %s", SelectEmoji(t.config.Emojis, st, remaining), formatted)
}

func (t *Timer) start(ctx context.Context, kind StatusType, duration time.Duration, opts StartOptions, started notify.Notification) (*Status, error) {
	now := t.clock.Now()
	st := Status{
		Type:    kind,
		Start:   now,
		End:     now.Add(duration),
		OneShot: opts.OneShot,
	}
	if err := t.store.Write(st); err != nil {
		return nil, err
	}
	logging.Logger.Info("session started", "type", kind, "duration", duration.String(), "one_shot", opts.OneShot)

	if opts.Notify {
		t.notify(ctx, started)
	}
	return &st, nil
}

func (t *Timer) resolveDuration(requested, configured string, fallback time.Duration) time.Duration {
	if requested != "" {
		if duration, err := ParseDuration(requested); err == nil {
			return duration
		}
		logging.Logger.Warn("invalid duration, using default", "duration", requested)
	}
	return ParseDurationOr(configured, fallback)
}

func (t *Timer) workingHour(text string, now time.Time) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}
	at, ok := ParseTimeOfDay(text, now)
	if !ok {
		logging.Logger.Warn("ignoring invalid working hours time", "value", text)
	}
	return at, ok
}

func (t *Timer) expiryNotification(kind StatusType) notify.Notification {
	if kind == StatusBreak {
		return notify.Notification{
			Message: messageBreakOver,
			Emoji:   t.config.Emojis.Focus,
			Sound:   t.config.Sound.End,
		}
	}
	return notify.Notification{
		Message: messageFocusCompleted,
		Emoji:   t.config.Emojis.Break,
		Sound:   t.config.Sound.End,
	}
}

func (t *Timer) notify(ctx context.Context, n notify.Notification) {
	if err := t.notifier.Notify(ctx, n); err != nil {
		logging.Logger.Warn("failed to send notification", "message", n.Message, "error", err)
	}
}

// shouldNotify reports whether an expiry notification is due: never sent,
// or last sent more than RenotifyInterval ago.
func shouldNotify(st *Status, now time.Time) bool {
	if st.LastNotified == nil {
		return true
	}
	return st.LastNotified.Before(now.Add(-RenotifyInterval))
}
