package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List enabled and disabled fragments for the active version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		enabled, disabled, err := m.List()
		if err != nil {
			return err
		}
		fmt.Printf("Fragments for PHP %s\n", m.Version())
		printNames("Enabled:", enabled)
		printNames("Disabled:", disabled)
		return nil
	},
}

func printNames(header string, names []string) {
	fmt.Println(header)
	if len(names) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
