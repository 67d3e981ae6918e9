package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/andbhavyaa/skeldir/internal/application"
	"github.com/andbhavyaa/skeldir/internal/parser"
	"github.com/andbhavyaa/skeldir/internal/ports"
)

// ScaffoldTreeResult contains the result of scaffolding from tree text
type ScaffoldTreeResult struct {
	Path    string
	Dirs    int
	Files   int
	Message string
}

// ScaffoldTreeCommand creates a project from a pasted tree-text rendering.
// Parsing never fails; an empty or degenerate paste simply produces a
// sparse project.
type ScaffoldTreeCommand struct {
	writer    ports.ScaffoldWriter
	Name      string
	OutputDir string
	Lines     []string
}

// NewScaffoldTreeCommand creates a new ScaffoldTreeCommand
func NewScaffoldTreeCommand(writer ports.ScaffoldWriter, name, outputDir string, lines []string) *ScaffoldTreeCommand {
	return &ScaffoldTreeCommand{
		writer:    writer,
		Name:      name,
		OutputDir: outputDir,
		Lines:     lines,
	}
}

// Validate checks if the scaffold operation is valid
func (c *ScaffoldTreeCommand) Validate() error {
	return application.ValidateProjectName(c.Name)
}

// Execute runs the scaffold tree command
func (c *ScaffoldTreeCommand) Execute(ctx context.Context) (*ScaffoldTreeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	root := parser.Parse(c.Lines)

	target := filepath.Join(c.OutputDir, c.Name)
	if err := c.writer.CreateRoot(target); err != nil {
		return nil, err
	}
	if err := c.writer.Materialize(target, root); err != nil {
		return nil, err
	}

	dirs, files := root.Count()
	return &ScaffoldTreeResult{
		Path:    target,
		Dirs:    dirs,
		Files:   files,
		Message: fmt.Sprintf("Created project %s (%d directories, %d files)", target, dirs, files),
	}, nil
}
