package templates

import (
	"strings"
	"testing"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()

	want := []string{"c", "cpp", "flutter", "java", "node", "python", "react"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d templates, got %v", len(want), got)
	}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("expected sorted names %v, got %v", want, got)
		}
	}
}

func TestRegistry_EveryTemplateHasBasics(t *testing.T) {
	r := NewRegistry()

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			desc, ok := r.Describe(name)
			if !ok || desc == "" {
				t.Error("expected a description")
			}

			root, ok := r.Hierarchy(name, "demo")
			if !ok {
				t.Fatal("expected a hierarchy")
			}
			if root.Kind != domain.KindDirectory {
				t.Fatal("template root must be a directory")
			}
			if _, ok := root.Child("README.md"); !ok {
				t.Error("expected README.md")
			}
			if _, ok := root.Child(".gitignore"); !ok {
				t.Error("expected .gitignore")
			}

			dirs, files := root.Count()
			if dirs+files < 3 {
				t.Errorf("suspiciously sparse template: %d dirs, %d files", dirs, files)
			}
		})
	}
}

func TestRegistry_ProjectNameEmbedded(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		template string
		file     string
	}{
		{"node", "package.json"},
		{"react", "package.json"},
		{"flutter", "pubspec.yaml"},
		{"java", "pom.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			root, _ := r.Hierarchy(tt.template, "widget-factory")
			manifest, ok := root.Child(tt.file)
			if !ok {
				t.Fatalf("expected %s in %s template", tt.file, tt.template)
			}
			if manifest.Kind != domain.KindLiteralFile {
				t.Fatalf("%s must carry literal content", tt.file)
			}
			if !strings.Contains(manifest.Content, "widget-factory") {
				t.Errorf("%s does not embed the project name", tt.file)
			}
		})
	}
}

func TestRegistry_Unknown(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Describe("cobol"); ok {
		t.Error("expected unknown template to be reported")
	}
	if _, ok := r.Hierarchy("cobol", "x"); ok {
		t.Error("expected no hierarchy for unknown template")
	}
}
