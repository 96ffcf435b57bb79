package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var displayFlagAliases = map[string]string{
	"no-emojis": "no-emoji",
	"noemoji":   "no-emoji",
}

var sessionFlagAliases = map[string]string{
	"oneshot": "one-shot",
	"once":    "one-shot",
}

func addSessionFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), sessionFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
