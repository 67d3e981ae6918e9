package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrTargetExists    = errors.New("target already exists")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrPathViolation   = errors.New("path violation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PathError reports a node name that would escape the scaffold target
// directory. Names come from unsanitized pasted text, so the materializer
// refuses separators and parent references before touching the disk.
type PathError struct {
	Name string
	Base string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("unsafe entry name %q under %s", e.Name, e.Base)
}

func (e *PathError) Is(target error) bool {
	return target == ErrPathViolation
}

// IOError wraps a failed filesystem operation with the path it failed on.
// The first IOError aborts a materialization; whatever was created before
// it stays on disk.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
