// Package templates holds the built-in project templates. Each template is
// a hard-coded scaffold hierarchy handed straight to the materializer; no
// parsing step is involved.
package templates

import (
	"fmt"
	"sort"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

// readme builds the stock README content every template starts from
func readme(project, blurb string) string {
	return fmt.Sprintf("# %s\n\n%s\n", project, blurb)
}

type template struct {
	description string
	build       func(project string) *domain.Node
}

// Registry implements the template store port
type Registry struct {
	templates map[string]template
}

// NewRegistry creates a registry with all built-in templates
func NewRegistry() *Registry {
	return &Registry{
		templates: map[string]template{
			"java":    {"Java application, Maven-style source layout", javaTree},
			"python":  {"Python package with a tests directory", pythonTree},
			"c":       {"C project with a Makefile", cTree},
			"cpp":     {"C++ project with a Makefile", cppTree},
			"node":    {"Node.js package", nodeTree},
			"react":   {"React single-page application", reactTree},
			"flutter": {"Flutter application", flutterTree},
		},
	}
}

// Names returns the available template names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one-line description for a template
func (r *Registry) Describe(name string) (string, bool) {
	t, ok := r.templates[name]
	if !ok {
		return "", false
	}
	return t.description, true
}

// Hierarchy builds the template's scaffold tree for the given project name
func (r *Registry) Hierarchy(name, project string) (*domain.Node, bool) {
	t, ok := r.templates[name]
	if !ok {
		return nil, false
	}
	return t.build(project), true
}
