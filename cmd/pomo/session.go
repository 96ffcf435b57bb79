package main

import (
	"fmt"
	"strings"

	"github.com/amonks/pomo/pomodoro"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [duration]",
	Short: "Start a focus session",
	Long: `Start a focus session, replacing any current session.

The duration defaults to durations.focus from the config file. Invalid
durations fall back to the default.`,
	Example: "  pomo start\n  pomo start 45m\n  pomo start 1h 30m --notify",
	Args:    cobra.ArbitraryArgs,
	RunE:    runStart,
}

var breakCmd = &cobra.Command{
	Use:     "break [duration]",
	Short:   "Start a break",
	Long:    `Start a break, replacing any current session. The duration defaults to durations.break.`,
	Example: "  pomo break\n  pomo break 15m --one-shot",
	Args:    cobra.ArbitraryArgs,
	RunE:    runBreak,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [duration]",
	Short: "Start a break after focus, or focus otherwise",
	Args:  cobra.ArbitraryArgs,
	RunE:  runToggle,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current session",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

var durationCmd = &cobra.Command{
	Use:   "duration <new_duration>",
	Short: "Change how long the running session lasts",
	Long: `Set the running session to end the given duration from now.

Fails with "No session in progress" when nothing is running and with
"Invalid duration" when the duration cannot be parsed.`,
	Example: "  pomo duration 10m",
	Args:    cobra.ArbitraryArgs,
	RunE:    runDuration,
}

var (
	startNotify  bool
	startOneShot bool
	stopNotify   bool
)

func init() {
	rootCmd.AddCommand(startCmd, breakCmd, toggleCmd, stopCmd, durationCmd)

	for _, cmd := range []*cobra.Command{startCmd, breakCmd, toggleCmd} {
		cmd.Flags().BoolVarP(&startNotify, "notify", "n", false, "Send a notification when the session starts")
		cmd.Flags().BoolVar(&startOneShot, "one-shot", false, "Clear the session once it is over")
	}
	addSessionFlagAliases(startCmd, breakCmd, toggleCmd)

	stopCmd.Flags().BoolVarP(&stopNotify, "notify", "n", false, "Send a notification")
}

func sessionStartOptions(args []string) pomodoro.StartOptions {
	return pomodoro.StartOptions{
		Duration: strings.Join(args, " "),
		Notify:   startNotify,
		OneShot:  startOneShot,
	}
}

func runStart(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}
	_, err = timer.StartFocus(cmd.Context(), sessionStartOptions(args))
	return err
}

func runBreak(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}
	_, err = timer.StartBreak(cmd.Context(), sessionStartOptions(args))
	return err
}

func runToggle(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}
	_, err = timer.Toggle(cmd.Context(), sessionStartOptions(args))
	return err
}

func runStop(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}
	return timer.Stop(cmd.Context(), stopNotify)
}

func runDuration(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}
	st, err := timer.ChangeDuration(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Session now ends at %s\n", st.End.Local().Format("15:04:05"))
	return err
}
