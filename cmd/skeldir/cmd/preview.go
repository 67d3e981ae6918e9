package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andbhavyaa/skeldir/internal/adapters/tui/styles"
	"github.com/andbhavyaa/skeldir/internal/parser"
)

var (
	previewFile      string
	previewClipboard bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show how tree text will be interpreted, without creating anything",
	Long: `Parse tree text and print the resulting hierarchy. Nothing is
written to disk. Use this to check how an ambiguous or oddly indented
paste will be attached before scaffolding it.

Examples:
  tree my-old-project | skeldir preview
  skeldir preview --file layout.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, ok, err := readTreeLines("preview", previewFile, previewClipboard)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		root := parser.Parse(lines)
		if root.Len() == 0 {
			fmt.Println(styles.Subtitle.Render("(empty hierarchy)"))
			return nil
		}

		for _, line := range strings.Split(strings.TrimRight(root.Render(), "\n"), "\n") {
			if strings.HasSuffix(line, "/") {
				fmt.Println(styles.TreeDir.Render(line))
			} else {
				fmt.Println(styles.TreeFile.Render(line))
			}
		}

		dirs, files := root.Count()
		fmt.Println(styles.Subtitle.Render(fmt.Sprintf("%d directories, %d files", dirs, files)))
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "read the tree text from a file")
	previewCmd.Flags().BoolVarP(&previewClipboard, "clipboard", "c", false, "read the tree text from the clipboard")
	rootCmd.AddCommand(previewCmd)
}
