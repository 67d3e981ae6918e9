package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/andbhavyaa/skeldir/internal/adapters/tui"
)

// readTreeLines resolves the tree-text source for custom and preview modes,
// in priority order: an explicit file, piped stdin, the system clipboard,
// and finally the interactive paste view. The second return is false when
// the user cancelled the interactive view.
func readTreeLines(project, file string, useClipboard bool) ([]string, bool, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read tree file: %w", err)
		}
		return splitLines(string(data)), true, nil
	}

	if stdinPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read stdin: %w", err)
		}
		return splitLines(string(data)), true, nil
	}

	if useClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil, false, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return splitLines(text), true, nil
	}

	return tui.CollectTree(project)
}

func stdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
