package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cfgAddCmd = &cobra.Command{
	Use:   "cfg-add <path>",
	Short: "Add a general config file to the available fragments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		name, err := m.AddConfig(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added %s\n", name)
		return nil
	},
}

var extAddCmd = &cobra.Command{
	Use:   "ext-add <path>",
	Short: "Add an extension config file to the available fragments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		name, err := m.AddExtension(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added %s\n", name)
		return nil
	},
}

var extNewCmd = &cobra.Command{
	Use:   "ext-new <name>",
	Short: "Create an extension fragment from an extension name",
	Long: `Create an available fragment that loads the named extension, e.g.
"ext-new igbinary" writes ext-igbinary.ini containing
"extension=igbinary.so". An existing fragment of the same name is
overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		name, err := m.NewExtension(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cfgAddCmd)
	rootCmd.AddCommand(extAddCmd)
	rootCmd.AddCommand(extNewCmd)
}
