package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andbhavyaa/skeldir/internal/adapters/tui/styles"
	"github.com/andbhavyaa/skeldir/internal/application/commands"
)

var newCmd = &cobra.Command{
	Use:   "new <template> <name>",
	Short: "Create a project from a built-in template",
	Long: `Create a new project directory from one of the built-in language
templates. The target directory must not already exist.

Examples:
  skeldir new python my-tool
  skeldir new react my-app -o ~/code`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		template := args[0]
		name := args[1]

		c := commands.NewScaffoldTemplateCommand(writer, store, template, name, outputDir)
		result, err := c.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(styles.Success.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
