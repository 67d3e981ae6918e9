package domain

import "strings"

// Kind discriminates the three node variants in a scaffold hierarchy
type Kind int

const (
	// KindDirectory is a named folder containing child nodes
	KindDirectory Kind = iota
	// KindEmptyFile is a file created with a generated placeholder comment
	KindEmptyFile
	// KindLiteralFile is a file whose content is written verbatim
	KindLiteralFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindEmptyFile:
		return "empty file"
	case KindLiteralFile:
		return "literal file"
	default:
		return "unknown"
	}
}

// Node is one entry in a scaffold hierarchy. A Directory node owns its
// children; the other two kinds are leaves. The root of a hierarchy is
// always an unnamed Directory standing in for the target directory itself.
type Node struct {
	Kind    Kind
	Content string // literal file content (KindLiteralFile only)

	children map[string]*Node
	names    []string // insertion order, one entry per key in children
}

// NewDirectory creates an empty directory node
func NewDirectory() *Node {
	return &Node{
		Kind:     KindDirectory,
		children: make(map[string]*Node),
	}
}

// NewEmptyFile creates a placeholder file node
func NewEmptyFile() *Node {
	return &Node{Kind: KindEmptyFile}
}

// NewLiteralFile creates a file node carrying verbatim content
func NewLiteralFile(content string) *Node {
	return &Node{Kind: KindLiteralFile, Content: content}
}

// Insert adds child under name, overwriting any existing entry with the
// same name. The earlier entry's position in the iteration order is kept;
// its subtree is discarded entirely (a later directory does not merge with
// an earlier one of the same name). Inserting an empty name is a no-op.
func (n *Node) Insert(name string, child *Node) {
	if n.Kind != KindDirectory || name == "" || child == nil {
		return
	}
	if _, exists := n.children[name]; !exists {
		n.names = append(n.names, name)
	}
	n.children[name] = child
}

// Child returns the child registered under name
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Names returns the child names in insertion order
func (n *Node) Names() []string {
	return n.names
}

// Len returns the number of children
func (n *Node) Len() int {
	return len(n.children)
}

// Equal reports whether two hierarchies are structurally identical:
// same kinds, same content, same child names in the same order
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Content != other.Content {
		return false
	}
	if len(n.names) != len(other.names) {
		return false
	}
	for i, name := range n.names {
		if other.names[i] != name {
			return false
		}
		if !n.children[name].Equal(other.children[name]) {
			return false
		}
	}
	return true
}

// Count returns the number of directory and file entries in the
// hierarchy, excluding the root itself
func (n *Node) Count() (dirs, files int) {
	for _, name := range n.names {
		child := n.children[name]
		if child.Kind == KindDirectory {
			dirs++
			d, f := child.Count()
			dirs += d
			files += f
		} else {
			files++
		}
	}
	return dirs, files
}

// Render returns an indented listing of the hierarchy, one entry per line,
// four spaces per level, directories suffixed with "/". Rendering the
// result of a parse and parsing it again yields an equal hierarchy.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b, 0)
	return b.String()
}

func (n *Node) render(b *strings.Builder, depth int) {
	for _, name := range n.names {
		child := n.children[name]
		b.WriteString(strings.Repeat(" ", depth*4))
		b.WriteString(name)
		if child.Kind == KindDirectory {
			b.WriteString("/")
		}
		b.WriteString("\n")
		if child.Kind == KindDirectory {
			child.render(b, depth+1)
		}
	}
}
