package commands

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andbhavyaa/skeldir/internal/application"
)

func TestScaffoldTreeCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		project string
		wantErr bool
	}{
		{"valid", "my-app", false},
		{"empty name", "", true},
		{"invalid characters", "my app", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewScaffoldTreeCommand(&fakeWriter{}, tt.project, ".", nil)
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScaffoldTreeCommand_Execute(t *testing.T) {
	writer := &fakeWriter{}
	lines := []string{
		"src/",
		"    index.js",
		"    utils/",
		"        helper.js",
	}

	cmd := NewScaffoldTreeCommand(writer, "my-app", "/tmp/out", lines)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantPath := filepath.Join("/tmp/out", "my-app")
	if result.Path != wantPath {
		t.Errorf("expected path %s, got %s", wantPath, result.Path)
	}
	if result.Dirs != 2 || result.Files != 2 {
		t.Errorf("expected 2 directories and 2 files, got %d and %d", result.Dirs, result.Files)
	}
	if !strings.Contains(result.Message, wantPath) {
		t.Errorf("message must name the created path, got %q", result.Message)
	}

	if writer.materialized == nil {
		t.Fatal("expected a hierarchy to be materialized")
	}
	if _, ok := writer.materialized.Child("src"); !ok {
		t.Error("expected the parsed hierarchy to reach the writer")
	}
}

func TestScaffoldTreeCommand_EmptyInput(t *testing.T) {
	writer := &fakeWriter{}

	cmd := NewScaffoldTreeCommand(writer, "my-app", ".", []string{"", "   "})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed for empty input: %v", err)
	}

	if result.Dirs != 0 || result.Files != 0 {
		t.Errorf("empty input must scaffold nothing, got %d dirs %d files", result.Dirs, result.Files)
	}
	if writer.rootCreated == "" {
		t.Error("the project root itself is still created for empty input")
	}
}

func TestScaffoldTreeCommand_MaterializeFailure(t *testing.T) {
	cause := &application.IOError{Op: "create", Path: "/tmp/out/my-app/x", Err: errors.New("permission denied")}
	writer := &fakeWriter{matErr: cause}

	cmd := NewScaffoldTreeCommand(writer, "my-app", "/tmp/out", []string{"x"})
	_, err := cmd.Execute(context.Background())

	var ioErr *application.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected the IOError to surface, got %v", err)
	}
}
