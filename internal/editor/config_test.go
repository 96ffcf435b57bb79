package editor

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/amonks/pomo/internal/config"
)

func TestRenderConfig_LoadsAsDefaults(t *testing.T) {
	for _, name := range []string{"config.toml", "config.json", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			data, err := RenderConfig(path, config.Default())
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			got, err := config.Load(path)
			if err != nil {
				t.Fatalf("load rendered config: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, config.Default()) {
				t.Fatalf("expected defaults, got %+v", got)
			}
		})
	}
}

func TestRenderConfig_WorkingHours(t *testing.T) {
	cfg := config.Default()
	data, err := RenderConfig("config.toml", cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(data), `# start = "9am"`) {
		t.Fatalf("expected commented working hours, got:\n%s", data)
	}

	cfg.WorkingHours.Start = "8:30am"
	data, err = RenderConfig("config.toml", cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(data), "\nstart = \"8:30am\"\n# end = \"5pm\"\n") {
		t.Fatalf("expected working hours start, got:\n%s", data)
	}
}

func TestEditConfig_SeedsMissingFile(t *testing.T) {
	writeEditor(t, "exit 0")
	path := filepath.Join(t.TempDir(), "pomo", "config.toml")

	if err := EditConfig(context.Background(), path); err != nil {
		t.Fatalf("edit config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# pomo configuration") {
		t.Fatalf("expected seeded config, got:\n%s", data)
	}
	assertOnlyFile(t, filepath.Dir(path), "config.toml")
}

func TestEditConfig_SavesEdits(t *testing.T) {
	writeEditor(t, `printf '[durations]\nfocus = "45m"\n' > "$1"`)
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := EditConfig(context.Background(), path); err != nil {
		t.Fatalf("edit config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Durations.Focus != "45m" {
		t.Fatalf("expected edited focus duration, got %q", cfg.Durations.Focus)
	}
}

func TestEditConfig_RejectsInvalidEdits(t *testing.T) {
	writeEditor(t, `echo 'focus = [' > "$1"`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	original := "[durations]\nfocus = \"20m\"\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := EditConfig(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "config not saved") {
		t.Fatalf("expected config not saved error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != original {
		t.Fatalf("expected original config to survive, got:\n%s", data)
	}
	assertOnlyFile(t, dir, "config.toml")
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != name {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Fatalf("expected only %s, got %v", name, names)
	}
}
