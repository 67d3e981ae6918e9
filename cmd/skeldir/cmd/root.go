package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andbhavyaa/skeldir/internal/adapters/filesystem"
	"github.com/andbhavyaa/skeldir/internal/adapters/tui/styles"
	"github.com/andbhavyaa/skeldir/internal/config"
	"github.com/andbhavyaa/skeldir/internal/ports"
	"github.com/andbhavyaa/skeldir/internal/templates"
)

var (
	outputDir string
	verbose   bool

	writer ports.ScaffoldWriter
	store  ports.TemplateStore
)

var rootCmd = &cobra.Command{
	Use:   "skeldir",
	Short: "Scaffold new project directories",
	Long: `skeldir creates new project directories from built-in language
templates or from a pasted tree-text rendering of the structure you want.

The custom mode accepts the indented output of tree-like tools (or a tree
pasted from an AI assistant), parses it, and materializes it on disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		writer = filesystem.NewMaterializer(verbose, os.Stdout)
		store = templates.NewRegistry()
		return nil
	},
}

// Execute runs the root command
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorMsg.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", config.OutputDir(), "directory the project is created under")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print one line per created entry")
}
