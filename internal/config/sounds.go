package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sounds names the notification sounds for session start and end.
//
// In the file, sound may be a table with start/end keys or a single string
// that sets both.
type Sounds struct {
	Start string `toml:"start" json:"start" yaml:"start"`
	End   string `toml:"end" json:"end" yaml:"end"`
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Sounds) UnmarshalTOML(data any) error {
	switch value := data.(type) {
	case string:
		s.Start, s.End = value, value
		return nil
	case map[string]any:
		for key, raw := range value {
			str, ok := raw.(string)
			if !ok {
				return fmt.Errorf("sound.%s: expected string, got %T", key, raw)
			}
			switch key {
			case "start":
				s.Start = str
			case "end":
				s.End = str
			default:
				return fmt.Errorf("sound: unknown key %q", key)
			}
		}
		return nil
	default:
		return fmt.Errorf("sound: expected string or table, got %T", data)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sounds) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Start, s.End = single, single
		return nil
	}

	type plain Sounds
	value := plain(*s)
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*s = Sounds(value)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sounds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Start, s.End = node.Value, node.Value
		return nil
	}

	type plain Sounds
	value := plain(*s)
	if err := node.Decode(&value); err != nil {
		return err
	}
	*s = Sounds(value)
	return nil
}
