package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andbhavyaa/skeldir/internal/adapters/tui/styles"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in project templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range store.Names() {
			desc, _ := store.Describe(name)
			fmt.Printf("%s  %s\n", styles.InputLabel.Render(fmt.Sprintf("%-8s", name)), desc)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
