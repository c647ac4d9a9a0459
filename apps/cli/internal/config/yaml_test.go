package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

func TestLoadManifestYAML(t *testing.T) {
	dir := t.TempDir()
	content := `kind: stencil/template
name: svc
inputs:
  - "%PORT%=8080"
  - name: "%OWNER%"
    description: team that owns the service
ignore:
  - docs/**
instructions: run make in %SHORT_NAME%
`
	if err := os.WriteFile(filepath.Join(dir, ManifestYAMLFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	want := []substitution.Input{
		{Name: "%PORT%", Default: "8080", HasDefault: true},
		{Name: "%OWNER%", Description: "team that owns the service"},
	}
	if got := m.Inputs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Inputs() = %+v, want %+v", got, want)
	}
	if m.Name != "svc" || m.Instructions != "run make in %SHORT_NAME%" {
		t.Errorf("manifest = %+v", m)
	}
}

func TestLoadManifestPrefersJSONC(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"kind": "stencil/template", "name": "from-jsonc"}`)
	if err := os.WriteFile(filepath.Join(dir, ManifestYAMLFile), []byte("kind: stencil/template\nname: from-yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if m.Name != "from-jsonc" {
		t.Errorf("Name = %q, want from-jsonc", m.Name)
	}
}

func TestParseManifestYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "  \n"},
		{"not yaml", "kind: [unclosed"},
		{"wrong kind", "kind: other/kind\n"},
		{"unknown field", "kind: stencil/template\ncolour: blue\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifestYAML([]byte(tt.doc)); err == nil {
				t.Errorf("ParseManifestYAML(%q) expected error", tt.doc)
			}
		})
	}
}
