package domain

import "testing"

func TestInsert_OverwriteKeepsSingleEntry(t *testing.T) {
	dir := NewDirectory()
	dir.Insert("a.txt", NewEmptyFile())
	dir.Insert("b.txt", NewEmptyFile())
	dir.Insert("a.txt", NewLiteralFile("replaced"))

	if dir.Len() != 2 {
		t.Fatalf("expected 2 entries after overwrite, got %d", dir.Len())
	}

	names := dir.Names()
	if names[0] != "a.txt" || names[1] != "b.txt" {
		t.Errorf("overwrite must keep the original position, got %v", names)
	}

	a, _ := dir.Child("a.txt")
	if a.Kind != KindLiteralFile || a.Content != "replaced" {
		t.Errorf("expected the later entry to win, got kind=%v content=%q", a.Kind, a.Content)
	}
}

func TestInsert_IgnoresInvalid(t *testing.T) {
	dir := NewDirectory()
	dir.Insert("", NewEmptyFile())
	dir.Insert("x", nil)

	file := NewEmptyFile()
	file.Insert("child", NewEmptyFile()) // not a directory

	if dir.Len() != 0 || file.Len() != 0 {
		t.Error("invalid inserts must be no-ops")
	}
}

func TestNames_InsertionOrder(t *testing.T) {
	dir := NewDirectory()
	for _, name := range []string{"z", "a", "m"} {
		dir.Insert(name, NewEmptyFile())
	}

	names := dir.Names()
	want := []string{"z", "a", "m"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected insertion order %v, got %v", want, names)
		}
	}
}

func TestCount(t *testing.T) {
	root := NewDirectory()
	src := NewDirectory()
	utils := NewDirectory()
	utils.Insert("helper.js", NewEmptyFile())
	src.Insert("index.js", NewEmptyFile())
	src.Insert("utils", utils)
	root.Insert("src", src)
	root.Insert("README.md", NewLiteralFile("# readme\n"))

	dirs, files := root.Count()
	if dirs != 2 || files != 3 {
		t.Errorf("expected 2 directories and 3 files, got %d and %d", dirs, files)
	}
}

func TestRender(t *testing.T) {
	root := NewDirectory()
	src := NewDirectory()
	src.Insert("index.js", NewEmptyFile())
	root.Insert("src", src)
	root.Insert("README.md", NewEmptyFile())

	want := "src/\n    index.js\nREADME.md\n"
	if got := root.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	build := func(order []string) *Node {
		root := NewDirectory()
		for _, name := range order {
			root.Insert(name, NewEmptyFile())
		}
		return root
	}

	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"same structure", build([]string{"a", "b"}), build([]string{"a", "b"}), true},
		{"different order", build([]string{"a", "b"}), build([]string{"b", "a"}), false},
		{"different names", build([]string{"a"}), build([]string{"b"}), false},
		{"different kinds", NewEmptyFile(), NewLiteralFile(""), false},
		{"different content", NewLiteralFile("x"), NewLiteralFile("y"), false},
		{"both empty dirs", NewDirectory(), NewDirectory(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
