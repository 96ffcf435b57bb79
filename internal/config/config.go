// Package config loads the pomo configuration file.
//
// The file lives next to the status file (see internal/paths) and may be
// written as TOML, JSON or YAML; the format is chosen by file extension.
// Every field is optional. A missing file yields the defaults.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/pomo/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFocusDuration is used when no focus duration is configured.
	DefaultFocusDuration = "25m"
	// DefaultBreakDuration is used when no break duration is configured.
	DefaultBreakDuration = "5m"
	// DefaultFocusEmoji marks a running focus session.
	DefaultFocusEmoji = "🍅"
	// DefaultBreakEmoji marks a running break.
	DefaultBreakEmoji = "🥂"
	// DefaultSound is passed to the notifier when no sound is configured.
	DefaultSound = "default"
)

// DefaultWarnEmojis returns the glyphs cycled once a session has expired.
func DefaultWarnEmojis() []string {
	return []string{"🔴", "⭕"}
}

// Config represents the pomo configuration file.
type Config struct {
	Durations    Durations    `toml:"durations" json:"durations" yaml:"durations"`
	Emojis       Emojis       `toml:"emojis" json:"emojis" yaml:"emojis"`
	Sound        Sounds       `toml:"sound" json:"sound" yaml:"sound"`
	WorkingHours WorkingHours `toml:"working_hours" json:"working_hours" yaml:"working_hours"`
}

// Durations holds the default session lengths as human duration strings.
type Durations struct {
	Focus string `toml:"focus" json:"focus" yaml:"focus"`
	Break string `toml:"break" json:"break" yaml:"break"`
}

// Emojis holds the status-line glyphs.
type Emojis struct {
	Focus string `toml:"focus" json:"focus" yaml:"focus"`
	Break string `toml:"break" json:"break" yaml:"break"`
	// Warn is cycled through once a session has expired so the timer blinks
	// in a status bar. A single entry disables blinking.
	Warn []string `toml:"warn" json:"warn" yaml:"warn"`
}

// WorkingHours bounds the work day as 12-hour clock strings like "9am".
// Either side may be empty.
type WorkingHours struct {
	Start string `toml:"start,omitempty" json:"start,omitempty" yaml:"start,omitempty"`
	End   string `toml:"end,omitempty" json:"end,omitempty" yaml:"end,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Durations: Durations{
			Focus: DefaultFocusDuration,
			Break: DefaultBreakDuration,
		},
		Emojis: Emojis{
			Focus: DefaultFocusEmoji,
			Break: DefaultBreakEmoji,
			Warn:  DefaultWarnEmojis(),
		},
		Sound: Sounds{
			Start: DefaultSound,
			End:   DefaultSound,
		},
	}
}

// Load reads the configuration at path. Fields absent from the file keep
// their defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.Logger.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		for _, key := range meta.Undecoded() {
			logging.Logger.Warn("unknown config key", "path", path, "key", key.String())
		}
		return nil
	}
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
