package substitution

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const answersFile = "fubu.template.config"

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)

	s := New()
	s.Set("key", "something")
	s.Set("two", "twenty")
	if err := s.WriteTo(path); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	s2 := New()
	if err := s2.ReadFrom(path); err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if got := mustValue(t, s2, "key"); got != "something" {
		t.Errorf("key = %q, want %q", got, "something")
	}
	if got := mustValue(t, s2, "two"); got != "twenty" {
		t.Errorf("two = %q, want %q", got, "twenty")
	}
}

func TestWriteToFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)

	s := New()
	s.Set("%B%", "2")
	s.Set("%A%", "1=one")
	if err := s.WriteTo(path); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "%B%=2\n%A%=1=one\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestWriteToOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)
	if err := os.WriteFile(path, []byte("stale=value\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	s.Set("fresh", "value")
	if err := s.WriteTo(path); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	s2 := New()
	if err := s2.ReadFrom(path); err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if s2.Has("stale") {
		t.Error("old file contents survived WriteTo")
	}
}

func TestWriteToFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	dir := t.TempDir()
	s := New()
	s.Set("key", "value")

	fresh := filepath.Join(dir, "fresh")
	if err := s.WriteTo(fresh); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	info, err := os.Stat(fresh)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o644 {
		t.Errorf("new file mode = %v, want %v", got, os.FileMode(0o644))
	}

	private := filepath.Join(dir, "private")
	if err := os.WriteFile(private, []byte("old=1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(private, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteTo(private); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	info, err = os.Stat(private)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("existing file mode = %v, want %v", got, os.FileMode(0o600))
	}
}

func TestReadHasSetIfNoneSemantics(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)

	s := New()
	s.Set("key", "something")
	s.Set("two", "twenty")
	if err := s.WriteTo(path); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	s2 := New()
	s2.Set("key", "ORIGINAL")
	if err := s2.ReadFrom(path); err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if got := mustValue(t, s2, "key"); got != "ORIGINAL" {
		t.Errorf("key = %q, want %q", got, "ORIGINAL")
	}
	if got := mustValue(t, s2, "two"); got != "twenty" {
		t.Errorf("two = %q, want %q", got, "twenty")
	}
}

func TestDoesNotWriteInstructions(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)

	s := New()
	s.Set("key", "something")
	s.Set("two", "twenty")
	s.Set(Instructions, "something")
	if err := s.WriteTo(path); err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	s2 := New()
	if err := s2.ReadFrom(path); err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if s2.Has(Instructions) {
		t.Error("instructions were persisted")
	}
	if !s.Has(Instructions) {
		t.Error("instructions lost from the in-memory store")
	}
}

func TestReadFromSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)
	content := "\nkey=something\r\n   \n\ntwo=twenty\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.ReadFrom(path); err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if got := mustValue(t, s, "key"); got != "something" {
		t.Errorf("key = %q, want %q", got, "something")
	}
	if got := mustValue(t, s, "two"); got != "twenty" {
		t.Errorf("two = %q, want %q", got, "twenty")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestReadFromEmptyValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)
	if err := os.WriteFile(path, []byte("%EMPTY%=\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.ReadFrom(path); err != nil {
		t.Fatalf("ReadFrom() error: %v", err)
	}
	if got := mustValue(t, s, "%EMPTY%"); got != "" {
		t.Errorf("%%EMPTY%% = %q, want empty", got)
	}
}

func TestReadFromMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), answersFile)
	if err := os.WriteFile(path, []byte("good=1\n\nnot a mapping\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	err := s.ReadFrom(path)
	if !errors.Is(err, ErrConfigRead) {
		t.Fatalf("ReadFrom() error = %v, want ErrConfigRead", err)
	}
	var cre *ConfigReadError
	if !errors.As(err, &cre) {
		t.Fatalf("expected *ConfigReadError, got %T", err)
	}
	if cre.Line != 3 || cre.Path != path {
		t.Errorf("ConfigReadError = %+v, want line 3 of %s", cre, path)
	}
	if s.Has("good") {
		t.Error("partial read leaked entries into the store")
	}
}

func TestReadFromMissingFile(t *testing.T) {
	s := New()
	err := s.ReadFrom(filepath.Join(t.TempDir(), "nope.config"))
	if !errors.Is(err, ErrConfigRead) {
		t.Fatalf("ReadFrom() error = %v, want ErrConfigRead", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFrom() error = %v, want it to wrap fs.ErrNotExist", err)
	}
}
