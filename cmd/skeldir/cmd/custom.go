package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andbhavyaa/skeldir/internal/adapters/tui/styles"
	"github.com/andbhavyaa/skeldir/internal/application/commands"
)

var (
	customFile      string
	customClipboard bool
)

var customCmd = &cobra.Command{
	Use:   "custom <name>",
	Short: "Create a project from pasted tree text",
	Long: `Create a new project directory from an indented tree-text rendering.

The tree text is read from --file, piped stdin, the clipboard
(--clipboard), or an interactive paste view, in that order. Directories
end with '/'; every other entry becomes a file with a placeholder comment.

Examples:
  skeldir custom my-app
  tree my-old-project | skeldir custom my-app
  skeldir custom my-app --clipboard
  skeldir custom my-app --file layout.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		lines, ok, err := readTreeLines(name, customFile, customClipboard)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(styles.Subtitle.Render("Cancelled, nothing created."))
			return nil
		}

		c := commands.NewScaffoldTreeCommand(writer, name, outputDir, lines)
		result, err := c.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(styles.Success.Render(result.Message))
		return nil
	},
}

func init() {
	customCmd.Flags().StringVarP(&customFile, "file", "f", "", "read the tree text from a file")
	customCmd.Flags().BoolVarP(&customClipboard, "clipboard", "c", false, "read the tree text from the clipboard")
	rootCmd.AddCommand(customCmd)
}
