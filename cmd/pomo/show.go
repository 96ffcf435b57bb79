package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/pomo/internal/age"
	"github.com/amonks/pomo/internal/ui"
	"github.com/amonks/pomo/pomodoro"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored session in detail",
	Long: `Show the stored session without applying any transitions.

Unlike running pomo with no subcommand, show never notifies, never clears
one-shot sessions, and ignores working hours.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the stored status as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	timer, err := openTimer(cmd)
	if err != nil {
		return err
	}
	st, err := timer.Current()
	if err != nil {
		return err
	}

	if showJSON {
		return writeStatusJSON(cmd, st)
	}

	if st == nil {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No session in progress")
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), formatStatusDetails(timer, *st, ansiStdout(cmd)))
	return err
}

func writeStatusJSON(cmd *cobra.Command, st *pomodoro.Status) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(st)
}

func formatStatusDetails(timer *pomodoro.Timer, st pomodoro.Status, styled bool) string {
	now := timer.Now()
	builder := ui.NewDetailsBuilder(styled)
	builder.Title(statusTitle(st))
	builder.Add("Type", string(st.Type))
	if st.Type == pomodoro.StatusIdle {
		builder.Add("Since", ui.FormatClock(st.End, now))
		return builder.String()
	}

	remaining := st.End.Sub(now)
	builder.Add("Started", ui.FormatClock(st.Start, now))
	builder.Add("Ends", ui.FormatClock(st.End, now))
	builder.Add("Remaining", strings.TrimSpace(timer.Emoji(st, now)+" "+ui.FormatRemaining(remaining)))
	builder.Add("One-shot", yesNo(st.OneShot))
	if st.LastNotified != nil {
		builder.Add("Notified", ui.FormatClock(*st.LastNotified, now))
	} else {
		builder.Add("Notified", "never")
	}
	if elapsed, ok := age.Elapsed(st.Start, st.End, now); ok {
		builder.Add("Elapsed", ui.FormatRemaining(elapsed))
	}
	if overrun := age.Overrun(st.End, now); overrun > 0 {
		builder.Add("Overdue", ui.FormatRemaining(overrun))
	}
	return builder.String()
}

func statusTitle(st pomodoro.Status) string {
	switch st.Type {
	case pomodoro.StatusFocus:
		return "Focus session"
	case pomodoro.StatusBreak:
		return "Break"
	default:
		return "Idle"
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

// ansiStdout reports whether the command writes styled output to a terminal.
func ansiStdout(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && ui.ANSIEnabled(f)
}
