// Package filesystem implements the scaffold writer port against the real
// filesystem.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andbhavyaa/skeldir/internal/application"
	"github.com/andbhavyaa/skeldir/internal/domain"
)

// Materializer writes scaffold hierarchies to disk. It creates entries
// depth-first in insertion order and stops at the first failure, leaving
// whatever was already created in place.
type Materializer struct {
	verbose bool
	out     io.Writer
}

// NewMaterializer creates a new Materializer. Progress lines (one per
// created entry) are written to out when verbose is set.
func NewMaterializer(verbose bool, out io.Writer) *Materializer {
	if out == nil {
		out = os.Stdout
	}
	return &Materializer{verbose: verbose, out: out}
}

// CreateRoot creates the project root directory, failing if the path
// already exists
func (m *Materializer) CreateRoot(path string) error {
	if err := os.Mkdir(path, 0755); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", application.ErrTargetExists, path)
		}
		return &application.IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// Materialize walks the hierarchy depth-first, pre-order, and creates each
// directory and file beneath basePath. Directories are created lazily,
// one level at a time, immediately before their children; an empty
// directory node is still created. The first failure aborts the remainder
// of the walk.
func (m *Materializer) Materialize(basePath string, root *domain.Node) error {
	return m.write(basePath, root)
}

func (m *Materializer) write(dir string, node *domain.Node) error {
	for _, name := range node.Names() {
		child, _ := node.Child(name)

		if err := checkName(dir, name); err != nil {
			return err
		}
		path := filepath.Join(dir, name)

		switch child.Kind {
		case domain.KindDirectory:
			if err := os.Mkdir(path, 0755); err != nil {
				return &application.IOError{Op: "mkdir", Path: path, Err: err}
			}
			m.report(path + string(os.PathSeparator))
			if err := m.write(path, child); err != nil {
				return err
			}

		case domain.KindEmptyFile:
			if err := createFile(path, Placeholder(name)); err != nil {
				return err
			}
			m.report(path)

		case domain.KindLiteralFile:
			if err := createFile(path, child.Content); err != nil {
				return err
			}
			m.report(path)
		}
	}
	return nil
}

// Placeholder returns the content written into an empty-file node: a
// one-line comment embedding the file's own name
func Placeholder(name string) string {
	return fmt.Sprintf("# %s scaffolded by skeldir\n", name)
}

// checkName rejects entry names that would escape the scaffold target.
// Names originate from unsanitized pasted text.
func checkName(base, name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return &application.PathError{Name: name, Base: base}
	}
	return nil
}

// createFile creates a new file with the given content. A pre-existing
// entry at the path is a failure, not an overwrite.
func createFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return &application.IOError{Op: "create", Path: path, Err: err}
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return &application.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &application.IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

func (m *Materializer) report(path string) {
	if !m.verbose {
		return
	}
	fmt.Fprintf(m.out, "  created %s\n", path)
}
