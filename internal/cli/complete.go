package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// allFlags is the static candidate list emitted for flags without
// dynamic completions.
var allFlags = []string{
	"--cfg-add",
	"--ext-add",
	"--ext-new",
	"--rm",
	"--enable",
	"--disable",
	"--list",
	"--show",
	"--version",
	"--help",
}

// nameSource selects which fragment names a completion offers.
type nameSource int

const (
	availableNames nameSource = iota
	enabledNames
	disabledNames
)

// completeNames returns fragment names for shell completion. Errors
// yield no candidates rather than breaking the user's shell.
func completeNames(source nameSource) []string {
	m, err := newManager()
	if err != nil {
		return nil
	}
	enabled, disabled, err := m.List()
	if err != nil {
		return nil
	}
	switch source {
	case enabledNames:
		return enabled
	case disabledNames:
		return disabled
	default:
		all := append(enabled, disabled...)
		sort.Strings(all)
		return all
	}
}

var completeCmd = &cobra.Command{
	Use:                "complete [flag]",
	Short:              "Emit completion candidates for a flag",
	Hidden:             true,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := allFlags
		if len(args) > 0 {
			switch args[0] {
			case "-e", "--enable":
				names = completeNames(disabledNames)
			case "-d", "--disable":
				names = completeNames(enabledNames)
			case "-r", "--rm", "-s", "--show":
				names = completeNames(availableNames)
			}
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
