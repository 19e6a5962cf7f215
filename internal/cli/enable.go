package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpenv-dev/phpenv-ini/internal/fragment"
)

var enableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable an available fragment in the active version",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeNames(disabledNames), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		name := fragment.CanonicalName(args[0])
		if err := m.Enable(name); err != nil {
			// Already enabled is informational, not a failure.
			if errors.Is(err, fragment.ErrAlreadyEnabled) {
				fmt.Printf("%s is already enabled\n", name)
				return nil
			}
			return err
		}
		fmt.Printf("Enabled %s\n", name)
		return nil
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable an enabled fragment",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeNames(enabledNames), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		name := fragment.CanonicalName(args[0])
		if err := m.Disable(name); err != nil {
			return err
		}
		fmt.Printf("Disabled %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
