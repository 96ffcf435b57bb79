package main

import (
	"github.com/amonks/pomo/internal/config"
	"github.com/amonks/pomo/internal/notify"
	"github.com/amonks/pomo/internal/paths"
	"github.com/amonks/pomo/internal/state"
	"github.com/amonks/pomo/pomodoro"
	"github.com/spf13/cobra"
)

// resolvedPaths are the files a command reads and writes.
type resolvedPaths struct {
	Dir    string
	Config string
	Status string
}

func resolvePaths() (resolvedPaths, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return resolvedPaths{}, err
	}
	configPath, err := paths.ResolveWithDefault(globalConfigPath, func() (string, error) {
		return paths.ConfigFile(dir), nil
	})
	if err != nil {
		return resolvedPaths{}, err
	}
	return resolvedPaths{
		Dir:    dir,
		Config: configPath,
		Status: paths.StatusFile(dir),
	}, nil
}

func loadConfig() (*config.Config, resolvedPaths, error) {
	resolved, err := resolvePaths()
	if err != nil {
		return nil, resolvedPaths{}, err
	}
	cfg, err := config.Load(resolved.Config)
	if err != nil {
		return nil, resolvedPaths{}, err
	}
	return cfg, resolved, nil
}

// openTimer builds a Timer from the config directory and POMO_NOTIFIER.
func openTimer(cmd *cobra.Command) (*pomodoro.Timer, error) {
	cfg, resolved, err := loadConfig()
	if err != nil {
		return nil, err
	}

	notifier, err := notify.FromEnv(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return pomodoro.New(pomodoro.Options{
		Store:    state.NewStore(resolved.Dir),
		Config:   cfg,
		Notifier: notifier,
	})
}
