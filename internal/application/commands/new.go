package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/andbhavyaa/skeldir/internal/application"
	"github.com/andbhavyaa/skeldir/internal/ports"
)

// ScaffoldTemplateResult contains the result of scaffolding from a template
type ScaffoldTemplateResult struct {
	Path    string
	Message string
}

// ScaffoldTemplateCommand creates a project from a built-in template
type ScaffoldTemplateCommand struct {
	writer    ports.ScaffoldWriter
	store     ports.TemplateStore
	Template  string
	Name      string
	OutputDir string
}

// NewScaffoldTemplateCommand creates a new ScaffoldTemplateCommand
func NewScaffoldTemplateCommand(writer ports.ScaffoldWriter, store ports.TemplateStore, template, name, outputDir string) *ScaffoldTemplateCommand {
	return &ScaffoldTemplateCommand{
		writer:    writer,
		store:     store,
		Template:  template,
		Name:      name,
		OutputDir: outputDir,
	}
}

// Validate checks if the scaffold operation is valid
func (c *ScaffoldTemplateCommand) Validate() error {
	if err := application.ValidateRequired("template", c.Template); err != nil {
		return err
	}
	if err := application.ValidateProjectName(c.Name); err != nil {
		return err
	}
	if _, ok := c.store.Describe(c.Template); !ok {
		return fmt.Errorf("%w: %s", application.ErrUnknownTemplate, c.Template)
	}
	return nil
}

// Execute runs the scaffold template command
func (c *ScaffoldTemplateCommand) Execute(ctx context.Context) (*ScaffoldTemplateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	root, ok := c.store.Hierarchy(c.Template, c.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", application.ErrUnknownTemplate, c.Template)
	}

	target := filepath.Join(c.OutputDir, c.Name)
	if err := c.writer.CreateRoot(target); err != nil {
		return nil, err
	}
	if err := c.writer.Materialize(target, root); err != nil {
		return nil, err
	}

	return &ScaffoldTemplateResult{
		Path:    target,
		Message: fmt.Sprintf("Created %s project: %s", c.Template, target),
	}, nil
}
