package application

import (
	"fmt"
	"regexp"
	"strings"
)

// projectNameRegex limits project names to characters that are safe on
// every filesystem skeldir targets
var projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateProjectName checks that a project name is non-empty and contains
// only alphanumerics, dashes, and underscores.
func ValidateProjectName(name string) error {
	if err := ValidateRequired("name", name); err != nil {
		return err
	}
	if !projectNameRegex.MatchString(name) {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("invalid project name %q (use letters, digits, '-' and '_')", name),
		}
	}
	return nil
}
