package pomodoro

import (
	"time"

	"github.com/amonks/pomo/internal/config"
)

// SelectEmoji picks the status-line glyph. Once a session has expired it
// cycles through the warn glyphs, one per elapsed second, so a status bar
// that polls every second shows a blinking indicator.
func SelectEmoji(emojis config.Emojis, st Status, remaining time.Duration) string {
	seconds := int64(remaining / time.Second)
	if seconds <= 0 {
		if len(emojis.Warn) == 0 {
			return ""
		}
		if seconds < 0 {
			seconds = -seconds
		}
		return emojis.Warn[seconds%int64(len(emojis.Warn))]
	}

	switch st.Type {
	case StatusFocus:
		return emojis.Focus
	case StatusBreak:
		return emojis.Break
	default:
		return ""
	}
}
