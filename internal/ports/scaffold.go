package ports

import "github.com/andbhavyaa/skeldir/internal/domain"

// ScaffoldWriter defines the interface for creating project trees on disk
type ScaffoldWriter interface {
	// CreateRoot creates the project root directory. It fails if the
	// path already exists; skeldir never writes into a pre-existing
	// directory.
	CreateRoot(path string) error

	// Materialize walks the hierarchy depth-first and creates every
	// directory and file beneath basePath, which must already exist.
	// The first failure aborts the walk; nothing is rolled back.
	Materialize(basePath string, root *domain.Node) error
}
