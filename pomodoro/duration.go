package pomodoro

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	internalstrings "github.com/amonks/pomo/internal/strings"
)

var durationComponent = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([a-z]+)`)

var durationUnits = map[string]string{
	"ms":           "ms",
	"msec":         "ms",
	"millisecond":  "ms",
	"milliseconds": "ms",
	"s":            "s",
	"sec":          "s",
	"secs":         "s",
	"second":       "s",
	"seconds":      "s",
	"m":            "m",
	"min":          "m",
	"mins":         "m",
	"minute":       "m",
	"minutes":      "m",
	"h":            "h",
	"hr":           "h",
	"hrs":          "h",
	"hour":         "h",
	"hours":        "h",
}

// ParseDuration parses compound durations such as "25m", "1h30m",
// "1h 30min" or "45 seconds". Negative, empty and unit-less input is
// rejected with ErrInvalidDuration.
func ParseDuration(text string) (time.Duration, error) {
	value := internalstrings.RemoveWhitespace(strings.ToLower(text))
	if value == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	var canonical strings.Builder
	rest := value
	for rest != "" {
		match := durationComponent.FindStringSubmatch(rest)
		if match == nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
		}
		unit, ok := durationUnits[match[2]]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidDuration, match[2], text)
		}
		canonical.WriteString(match[1])
		canonical.WriteString(unit)
		rest = rest[len(match[0]):]
	}

	duration, err := time.ParseDuration(canonical.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, text, err)
	}
	return duration, nil
}

// ParseDurationOr parses text, returning fallback when it is invalid.
func ParseDurationOr(text string, fallback time.Duration) time.Duration {
	duration, err := ParseDuration(text)
	if err != nil {
		return fallback
	}
	return duration
}
