package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/amonks/pomo/internal/config"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Default()

	if cfg.Durations.Focus != "25m" {
		t.Errorf("Durations.Focus = %q, expected 25m", cfg.Durations.Focus)
	}
	if cfg.Durations.Break != "5m" {
		t.Errorf("Durations.Break = %q, expected 5m", cfg.Durations.Break)
	}
	if cfg.Emojis.Focus != "🍅" || cfg.Emojis.Break != "🥂" {
		t.Errorf("unexpected default emojis: %+v", cfg.Emojis)
	}
	if !reflect.DeepEqual(cfg.Emojis.Warn, []string{"🔴", "⭕"}) {
		t.Errorf("unexpected warn emojis: %v", cfg.Emojis.Warn)
	}
	if cfg.Sound.Start != "default" || cfg.Sound.End != "default" {
		t.Errorf("unexpected default sounds: %+v", cfg.Sound)
	}
	if cfg.WorkingHours.Start != "" || cfg.WorkingHours.End != "" {
		t.Errorf("expected no working hours, got %+v", cfg.WorkingHours)
	}
}

func TestLoad_TOMLPartial(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[durations]
focus = "50m"

[emojis]
warn = ["!"]

[sound]
end = "Glass"

[working_hours]
start = "9am"
end = "5:30pm"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Durations.Focus != "50m" {
		t.Errorf("Durations.Focus = %q, expected 50m", cfg.Durations.Focus)
	}
	if cfg.Durations.Break != "5m" {
		t.Errorf("Durations.Break = %q, expected default 5m", cfg.Durations.Break)
	}
	if cfg.Emojis.Focus != "🍅" {
		t.Errorf("Emojis.Focus = %q, expected default", cfg.Emojis.Focus)
	}
	if !reflect.DeepEqual(cfg.Emojis.Warn, []string{"!"}) {
		t.Errorf("Emojis.Warn = %v, expected [!]", cfg.Emojis.Warn)
	}
	if cfg.Sound.Start != "default" || cfg.Sound.End != "Glass" {
		t.Errorf("unexpected sounds: %+v", cfg.Sound)
	}
	if cfg.WorkingHours.Start != "9am" || cfg.WorkingHours.End != "5:30pm" {
		t.Errorf("unexpected working hours: %+v", cfg.WorkingHours)
	}
}

func TestLoad_TOMLSingleSound(t *testing.T) {
	path := writeConfig(t, "config.toml", `sound = "Ping"`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sound.Start != "Ping" || cfg.Sound.End != "Ping" {
		t.Fatalf("expected both sounds to be Ping, got %+v", cfg.Sound)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "durations": {"break": "10m"},
  "emojis": {"focus": "F", "warn": []},
  "sound": "Hero",
  "working_hours": {"end": "6pm"}
}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Durations.Break != "10m" || cfg.Durations.Focus != "25m" {
		t.Errorf("unexpected durations: %+v", cfg.Durations)
	}
	if cfg.Emojis.Focus != "F" || cfg.Emojis.Break != "🥂" {
		t.Errorf("unexpected emojis: %+v", cfg.Emojis)
	}
	if len(cfg.Emojis.Warn) != 0 {
		t.Errorf("expected explicit empty warn list, got %v", cfg.Emojis.Warn)
	}
	if cfg.Sound.Start != "Hero" || cfg.Sound.End != "Hero" {
		t.Errorf("unexpected sounds: %+v", cfg.Sound)
	}
	if cfg.WorkingHours.End != "6pm" {
		t.Errorf("unexpected working hours: %+v", cfg.WorkingHours)
	}
}

func TestLoad_JSONSoundTable(t *testing.T) {
	path := writeConfig(t, "config.json", `{"sound": {"start": "Purr"}}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sound.Start != "Purr" || cfg.Sound.End != "default" {
		t.Fatalf("unexpected sounds: %+v", cfg.Sound)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
durations:
  focus: 45m
sound:
  start: Submarine
working_hours:
  start: 8:30am
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Durations.Focus != "45m" {
		t.Errorf("Durations.Focus = %q, expected 45m", cfg.Durations.Focus)
	}
	if cfg.Sound.Start != "Submarine" || cfg.Sound.End != "default" {
		t.Errorf("unexpected sounds: %+v", cfg.Sound)
	}
	if cfg.WorkingHours.Start != "8:30am" {
		t.Errorf("unexpected working hours: %+v", cfg.WorkingHours)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "config.json", "  \n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", "[durations\nfocus = ")

	_, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "parse config file") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"durations": `)

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoad_Unreadable(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(dir)
	if err == nil {
		t.Fatal("expected error when config path is a directory")
	}
	if !strings.Contains(err.Error(), "read config file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.WorkingHours.Start = "9am"

	var buf bytes.Buffer
	if err := config.Encode(&buf, cfg); err != nil {
		t.Fatalf("encode: %v", err)
	}

	path := writeConfig(t, "config.toml", buf.String())
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("load encoded config: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Fatalf("expected %+v, got %+v", cfg, loaded)
	}
}
