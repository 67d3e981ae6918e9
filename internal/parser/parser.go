// Package parser converts a pasted tree-text rendering (the indented,
// box-drawing output of tree-like tools) into a scaffold hierarchy.
package parser

import (
	"strings"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

// indentUnit is the assumed width of one visual indentation level.
// Common tree printers emit "│   " / "├── " / four spaces per level.
const indentUnit = 4

// indentGlyphs are the characters that may appear before a node name:
// plain spaces plus the box-drawing connectors and their ASCII fallback.
var indentGlyphs = map[rune]bool{
	' ': true,
	'│': true,
	'├': true,
	'└': true,
	'─': true,
	'|': true,
}

// frame pairs a nesting depth with the directory currently open at that
// depth. The stack of frames is local to one Parse call.
type frame struct {
	depth int
	node  *domain.Node
}

// Parse converts an ordered sequence of raw text lines into a rooted
// hierarchy. It never fails: blank lines are skipped, malformed
// indentation attaches best-effort under the nearest open ancestor, and a
// duplicate sibling name silently replaces the earlier entry. The returned
// root is an unnamed directory representing the scaffold target itself.
//
// Depth is computed by counting leading indentation glyphs and dividing by
// the four-character indent unit, rather than by locating a branch marker
// substring. The two heuristics differ only when a name itself begins with
// an indentation glyph or when the pasted tree uses a non-standard unit.
func Parse(lines []string) *domain.Node {
	root := domain.NewDirectory()
	stack := []frame{{depth: -1, node: root}}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		depth := lineDepth(line)
		name := cleanName(line)
		if name == "" {
			continue
		}

		isDir := strings.HasSuffix(name, "/")
		name = strings.TrimSuffix(name, "/")
		if name == "" {
			continue
		}

		// A sibling or a dedent closes every frame at the same or a
		// deeper level; the new node attaches under the nearest
		// ancestor with a strictly smaller depth.
		for depth <= stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node

		var node *domain.Node
		if isDir {
			node = domain.NewDirectory()
		} else {
			node = domain.NewEmptyFile()
		}
		parent.Insert(name, node)

		if isDir {
			stack = append(stack, frame{depth: depth, node: node})
		}
	}

	return root
}

// ParseText splits text on newlines and parses the result
func ParseText(text string) *domain.Node {
	return Parse(strings.Split(text, "\n"))
}

// lineDepth counts consecutive leading indentation glyphs and maps them to
// a nesting level, one level per indent unit
func lineDepth(line string) int {
	count := 0
	for _, r := range line {
		if !indentGlyphs[r] {
			break
		}
		count++
	}
	return count / indentUnit
}

// cleanName strips the leading indentation glyphs and surrounding
// whitespace, leaving the bare entry name (with its trailing separator,
// if the line denotes a directory)
func cleanName(line string) string {
	rest := strings.TrimLeftFunc(line, func(r rune) bool {
		return indentGlyphs[r]
	})
	return strings.TrimSpace(rest)
}
