// Package paths resolves the files pomo reads and writes.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// HomeEnv overrides the default config directory when set.
const HomeEnv = "POMO_HOME"

const (
	statusFileName       = "status.json"
	configFileName       = "config.toml"
	legacyConfigFileName = "config.json"
)

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return home, nil
}

// DefaultConfigDir returns $POMO_HOME, or ~/.config/pomo when unset.
func DefaultConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return ExpandPath(dir)
	}

	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pomo"), nil
}

// DefaultLogDir returns the OS-specific directory for debug logs.
func DefaultLogDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "pomo"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(localAppData, "pomo", "logs"), nil
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateHome, "pomo"), nil
	}
}

// StatusFile returns the status file path inside dir.
func StatusFile(dir string) string {
	return filepath.Join(dir, statusFileName)
}

// ConfigFile returns the config file path inside dir. The legacy
// config.json is returned only when config.toml is absent and it exists.
func ConfigFile(dir string) string {
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	legacy := filepath.Join(dir, legacyConfigFileName)
	if _, err := os.Stat(legacy); err == nil {
		return legacy
	}
	return path
}

// ResolveWithDefault returns override if non-empty, otherwise calls defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return ExpandPath(override)
	}
	return defaultFn()
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return home, nil
	}
	return filepath.Join(home, path[1:]), nil
}
