package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/pomo/internal/markdown"
	"github.com/amonks/pomo/internal/ui"
	"github.com/spf13/cobra"
)

//go:embed help_config.md
var configHelp []byte

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Describe the config file",
	Args:  cobra.NoArgs,
	RunE:  runHelpConfig,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpConfigCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, rest, err := root.Find(args)
	if err != nil || target == nil || (target == root && len(rest) > 0) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpConfig(cmd *cobra.Command, args []string) error {
	_, err := cmd.OutOrStdout().Write(renderHelpTopic(cmd, configHelp))
	return err
}

func renderHelpTopic(cmd *cobra.Command, source []byte) []byte {
	f, _ := cmd.OutOrStdout().(*os.File)
	width := ui.TerminalWidth(f)

	var out []byte
	if ansiStdout(cmd) {
		out = markdown.SafeRender(width, 2, source)
	} else {
		out = markdown.Plain(width, source)
	}
	if len(out) == 0 {
		return nil
	}
	return append(out, '\n')
}
