package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phpenv-dev/phpenv-ini/internal/fragment"
)

// annotator is shared so line numbers keep running across every Show in
// one process.
var annotator = fragment.NewAnnotator()

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a fragment's content with numbered lines",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeNames(availableNames), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		out, err := m.Show(annotator, args[0])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
