package pomodoro

import (
	"strconv"
	"strings"
	"time"

	internalstrings "github.com/amonks/pomo/internal/strings"
)

// ParseTimeOfDay parses a 12-hour clock time like "9am" or "5:30PM" and
// anchors it to now's calendar day in now's location. It reports false for
// empty or malformed input.
func ParseTimeOfDay(text string, now time.Time) (time.Time, bool) {
	value := internalstrings.RemoveWhitespace(internalstrings.NormalizeLowerTrimSpace(text))
	if len(value) < 3 {
		return time.Time{}, false
	}

	clock, period := value[:len(value)-2], value[len(value)-2:]
	if period != "am" && period != "pm" {
		return time.Time{}, false
	}
	if !strings.Contains(clock, ":") {
		clock += ":00"
	}

	hour, _, _ := strings.Cut(clock, ":")
	if n, err := strconv.Atoi(hour); err != nil || n < 1 || n > 12 {
		return time.Time{}, false
	}

	parsed, err := time.Parse("3:04pm", clock+period)
	if err != nil {
		return time.Time{}, false
	}

	year, month, day := now.Date()
	return time.Date(year, month, day, parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), true
}
