package application

import (
	"errors"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		project string
		wantErr bool
	}{
		{"simple", "myapp", false},
		{"with dash", "my-app", false},
		{"with underscore", "my_app", false},
		{"with digits", "app2", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"contains space", "my app", true},
		{"contains separator", "my/app", true},
		{"contains dot", "my.app", true},
		{"parent reference", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.project)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.project, err, tt.wantErr)
			}
			if err != nil {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestPathError_Is(t *testing.T) {
	err := &PathError{Name: "../etc", Base: "/tmp/x"}
	if !errors.Is(err, ErrPathViolation) {
		t.Error("PathError must match ErrPathViolation")
	}
}

func TestIOError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &IOError{Op: "create", Path: "/tmp/x/a.txt", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("IOError must unwrap to its cause")
	}
	msg := err.Error()
	if msg != "create /tmp/x/a.txt: permission denied" {
		t.Errorf("unexpected message: %q", msg)
	}
}
