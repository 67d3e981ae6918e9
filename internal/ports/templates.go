package ports

import "github.com/andbhavyaa/skeldir/internal/domain"

// TemplateStore provides the built-in project templates
type TemplateStore interface {
	// Names returns the available template names, sorted
	Names() []string

	// Describe returns the one-line description for a template
	Describe(name string) (string, bool)

	// Hierarchy builds the template's scaffold tree for a project of
	// the given name (boilerplate literals embed the project name)
	Hierarchy(name, project string) (*domain.Node, bool)
}
