package main

import (
	"fmt"

	"github.com/amonks/pomo/internal/config"
	"github.com/amonks/pomo/internal/editor"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	Long: `Print the effective configuration as TOML: the config file merged over the
defaults. See "pomo help config" for the available settings.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and status file paths",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the config file in $VISUAL or $EDITOR, creating it from the defaults
when it does not exist. Changes are saved only if the edited file loads.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configEditCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	return config.Encode(cmd.OutOrStdout(), cfg)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	resolved, err := resolvePaths()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "config %s\nstatus %s\n", resolved.Config, resolved.Status)
	return err
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	resolved, err := resolvePaths()
	if err != nil {
		return err
	}
	return editor.EditConfig(cmd.Context(), resolved.Config)
}
