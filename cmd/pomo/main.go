// Package main implements the pomo CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/pomo/internal/logging"
	"github.com/amonks/pomo/pomodoro"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if closeErr := closeLog(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro timer for the command line and status bars",
	Long: `pomo tracks a single focus session or break and prints the time remaining.

Run it with no subcommand from a status bar; pass --notify to get a desktop
notification once the session is over.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
	RunE:              runDisplay,
}

var (
	globalConfigPath string
	globalDebug      bool
	globalDebugFile  string
	displayNoEmoji   bool
	displayNotify    bool
)

var closeLog = func() error { return nil }

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalConfigPath, "config", "c", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Write a debug log")
	rootCmd.PersistentFlags().StringVar(&globalDebugFile, "debug-file", "", "Write the debug log to this file")
	// Subcommands that define their own --notify shadow this one.
	rootCmd.PersistentFlags().BoolVar(&displayNoEmoji, "no-emoji", false, "Print only the remaining time")
	rootCmd.PersistentFlags().BoolVarP(&displayNotify, "notify", "n", false, "Send a notification when the session is over")
	setFlagAliases(rootCmd.Flags(), displayFlagAliases)
}

func initLogging(cmd *cobra.Command, args []string) error {
	logPath, closeFn, err := logging.Initialize(globalDebug, globalDebugFile)
	if err != nil {
		return err
	}
	closeLog = closeFn
	if logPath != "" {
		logging.Logger.Debug("command started", "command", cmd.CommandPath(), "args", args)
	}
	return nil
}

func runDisplay(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}

	line, ok, err := timer.Display(cmd.Context(), pomodoro.DisplayOptions{
		NoEmoji: displayNoEmoji,
		Notify:  displayNotify,
	})
	if err != nil || !ok {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}

// formatError renders err for the terminal. The two user validation errors
// print as plain sentences.
func formatError(err error) string {
	switch {
	case errors.Is(err, pomodoro.ErrNoSession):
		return "No session in progress"
	case errors.Is(err, pomodoro.ErrInvalidDuration):
		return "Invalid duration"
	default:
		return "Error: " + err.Error()
	}
}
