package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/andbhavyaa/skeldir/internal/application"
	"github.com/andbhavyaa/skeldir/internal/domain"
	"github.com/andbhavyaa/skeldir/internal/templates"
)

// fakeWriter records scaffold calls without touching the filesystem
type fakeWriter struct {
	rootCreated  string
	materialized *domain.Node
	createErr    error
	matErr       error
}

func (f *fakeWriter) CreateRoot(path string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rootCreated = path
	return nil
}

func (f *fakeWriter) Materialize(basePath string, root *domain.Node) error {
	if f.matErr != nil {
		return f.matErr
	}
	f.materialized = root
	return nil
}

func TestScaffoldTemplateCommand_Validate(t *testing.T) {
	store := templates.NewRegistry()

	tests := []struct {
		name     string
		template string
		project  string
		wantErr  bool
	}{
		{"valid", "python", "my-tool", false},
		{"empty template", "", "my-tool", true},
		{"empty name", "python", "", true},
		{"invalid name characters", "python", "my tool!", true},
		{"name with separator", "python", "a/b", true},
		{"unknown template", "cobol", "my-tool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewScaffoldTemplateCommand(&fakeWriter{}, store, tt.template, tt.project, ".")
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScaffoldTemplateCommand_Execute(t *testing.T) {
	store := templates.NewRegistry()
	writer := &fakeWriter{}

	cmd := NewScaffoldTemplateCommand(writer, store, "node", "my-app", "/tmp/out")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantPath := filepath.Join("/tmp/out", "my-app")
	if result.Path != wantPath {
		t.Errorf("expected path %s, got %s", wantPath, result.Path)
	}
	if writer.rootCreated != wantPath {
		t.Errorf("expected root created at %s, got %s", wantPath, writer.rootCreated)
	}
	if writer.materialized == nil {
		t.Fatal("expected a hierarchy to be materialized")
	}
	if _, ok := writer.materialized.Child("package.json"); !ok {
		t.Error("expected the node template hierarchy to be passed through")
	}
}

func TestScaffoldTemplateCommand_UnknownTemplate(t *testing.T) {
	cmd := NewScaffoldTemplateCommand(&fakeWriter{}, templates.NewRegistry(), "cobol", "my-app", ".")

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestScaffoldTemplateCommand_TargetExists(t *testing.T) {
	writer := &fakeWriter{createErr: application.ErrTargetExists}
	cmd := NewScaffoldTemplateCommand(writer, templates.NewRegistry(), "python", "my-app", ".")

	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrTargetExists) {
		t.Errorf("expected ErrTargetExists to propagate, got %v", err)
	}
	if writer.materialized != nil {
		t.Error("materialization must not run when the root cannot be created")
	}
}
