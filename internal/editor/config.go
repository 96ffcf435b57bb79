package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/amonks/pomo/internal/config"
	"github.com/amonks/pomo/internal/logging"
	"gopkg.in/yaml.v3"
)

var configTemplate = template.Must(template.New("config").Funcs(template.FuncMap{
	"quote": func(s string) string {
		return fmt.Sprintf("%q", s)
	},
	"list": func(values []string) string {
		quoted := make([]string, 0, len(values))
		for _, value := range values {
			quoted = append(quoted, fmt.Sprintf("%q", value))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	},
}).Parse(`# pomo configuration. Run "pomo help config" for details.

[durations]
focus = {{ quote .Durations.Focus }}
break = {{ quote .Durations.Break }}

[emojis]
focus = {{ quote .Emojis.Focus }}
break = {{ quote .Emojis.Break }}
warn = {{ list .Emojis.Warn }} # cycled once a session is over

[sound]
start = {{ quote .Sound.Start }}
end = {{ quote .Sound.End }}

[working_hours]
{{- if .WorkingHours.Start }}
start = {{ quote .WorkingHours.Start }}
{{- else }}
# start = "9am"
{{- end }}
{{- if .WorkingHours.End }}
end = {{ quote .WorkingHours.End }}
{{- else }}
# end = "5pm"
{{- end }}
`))

// RenderConfig renders cfg in the format implied by the extension of path.
// TOML output carries comments; JSON and YAML are plain encodings.
func RenderConfig(path string, cfg *config.Config) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render config: %w", err)
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("render config: %w", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		if err := configTemplate.Execute(&buf, cfg); err != nil {
			return nil, fmt.Errorf("render template: %w", err)
		}
		return buf.Bytes(), nil
	}
}

// EditConfig opens the config file at path in the editor. A missing file is
// seeded with the defaults. The edit happens on a temporary copy that
// replaces path only if it still loads, so a typo never breaks the timer.
func EditConfig(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		content, err = RenderConfig(path, config.Default())
		if err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmpfile, err := os.CreateTemp(dir, "pomo-config-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(ctx, tmpPath); err != nil {
		return err
	}

	if _, err := config.Load(tmpPath); err != nil {
		return fmt.Errorf("config not saved: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save config file: %w", err)
	}
	logging.Logger.Info("config file saved", "path", path)
	return nil
}
