package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpenv-dev/phpenv-ini/internal/fragment"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a fragment from the available store",
	Long: `Delete a fragment entirely: its enabled symlink, if any, and the
file in the available store. This cannot be undone.`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeNames(availableNames), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		name := fragment.CanonicalName(args[0])
		if err := m.Remove(name); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
