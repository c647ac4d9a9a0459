package render

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(b)
}

func newSubs() *substitution.Substitutions {
	s := substitution.New()
	s.Set("%PROJECT_NAME%", "Acme.Widgets")
	s.Set("%SHORT_NAME%", "Widgets")
	return s
}

func TestRenderSubstitutesPathsAndContents(t *testing.T) {
	tmpl := t.TempDir()
	target := t.TempDir()
	writeFile(t, tmpl, "README.md", "# %PROJECT_NAME%\n")
	writeFile(t, tmpl, "src/%SHORT_NAME%/%SHORT_NAME%.go", "package %SHORT_NAME%\n")
	writeFile(t, tmpl, "template.jsonc", "{}")

	res, err := Render(newSubs(), Options{
		TemplateDir: tmpl,
		TargetDir:   target,
		Ignore:      []string{"template.jsonc"},
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := []string{"README.md", "src/Widgets/Widgets.go"}
	if !reflect.DeepEqual(res.Created, want) {
		t.Errorf("Created = %v, want %v", res.Created, want)
	}
	if got := readFile(t, target, "README.md"); got != "# Acme.Widgets\n" {
		t.Errorf("README.md = %q", got)
	}
	if got := readFile(t, target, "src/Widgets/Widgets.go"); got != "package Widgets\n" {
		t.Errorf("Widgets.go = %q", got)
	}
	if _, err := os.Stat(filepath.Join(target, "template.jsonc")); !os.IsNotExist(err) {
		t.Error("ignored manifest was rendered")
	}
}

func TestRenderSkipsExistingWithoutForce(t *testing.T) {
	tmpl := t.TempDir()
	target := t.TempDir()
	writeFile(t, tmpl, "a.txt", "%SHORT_NAME%")
	writeFile(t, target, "a.txt", "mine")

	res, err := Render(newSubs(), Options{TemplateDir: tmpl, TargetDir: target})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !reflect.DeepEqual(res.Skipped, []string{"a.txt"}) {
		t.Errorf("Skipped = %v", res.Skipped)
	}
	if got := readFile(t, target, "a.txt"); got != "mine" {
		t.Errorf("a.txt = %q, existing file was overwritten", got)
	}

	res, err = Render(newSubs(), Options{TemplateDir: tmpl, TargetDir: target, Force: true})
	if err != nil {
		t.Fatalf("Render(force) error: %v", err)
	}
	if !reflect.DeepEqual(res.Overwritten, []string{"a.txt"}) {
		t.Errorf("Overwritten = %v", res.Overwritten)
	}
	if got := readFile(t, target, "a.txt"); got != "Widgets" {
		t.Errorf("a.txt = %q, want %q", got, "Widgets")
	}
}

func TestRenderLeavesBinaryContents(t *testing.T) {
	tmpl := t.TempDir()
	target := t.TempDir()
	bin := "%SHORT_NAME%\x00\x01"
	writeFile(t, tmpl, "%SHORT_NAME%.bin", bin)

	if _, err := Render(newSubs(), Options{TemplateDir: tmpl, TargetDir: target}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := readFile(t, target, "Widgets.bin"); got != bin {
		t.Errorf("binary contents changed: %q", got)
	}
}

func TestRenderDryRun(t *testing.T) {
	tmpl := t.TempDir()
	target := t.TempDir()
	writeFile(t, tmpl, "a.txt", "x")

	res, err := Render(newSubs(), Options{TemplateDir: tmpl, TargetDir: target, DryRun: true})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if res.Total() != 1 || len(res.Created) != 1 {
		t.Errorf("result = %+v", res)
	}
	if _, err := os.Stat(filepath.Join(target, "a.txt")); !os.IsNotExist(err) {
		t.Error("dry run wrote a file")
	}
}

func TestRenderPreservesMode(t *testing.T) {
	tmpl := t.TempDir()
	target := t.TempDir()
	writeFile(t, tmpl, "build.sh", "#!/bin/sh\necho %SHORT_NAME%\n")
	if err := os.Chmod(filepath.Join(tmpl, "build.sh"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Render(newSubs(), Options{TemplateDir: tmpl, TargetDir: target}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	info, err := os.Stat(filepath.Join(target, "build.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestRenderRejectsEscapingPaths(t *testing.T) {
	tmpl := t.TempDir()
	target := t.TempDir()
	writeFile(t, tmpl, "%DIR%/x.txt", "x")

	s := substitution.New()
	s.Set("%DIR%", "../..")
	if _, err := Render(s, Options{TemplateDir: tmpl, TargetDir: target}); err == nil {
		t.Fatal("expected error for path outside the target")
	}
}

func TestRenderRequiresDirectories(t *testing.T) {
	if _, err := Render(newSubs(), Options{}); err == nil {
		t.Fatal("expected error for empty options")
	}
}
