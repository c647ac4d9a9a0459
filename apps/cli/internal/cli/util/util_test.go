package util

import (
	"bytes"
	"testing"
)

func TestMustAbs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"current dir", "."},
		{"relative path", "./foo/bar"},
		{"absolute path", "/tmp/test"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustAbs(tt.input)
			if result == "" && tt.input != "" {
				t.Errorf("MustAbs(%q) returned empty string", tt.input)
			}
		})
	}
}

func TestTruncateLine(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 7, "this is..."},
	}
	for _, tt := range tests {
		if got := TruncateLine(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("TruncateLine(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPrintList(t *testing.T) {
	var buf bytes.Buffer
	PrintList(&buf, "created", []string{"a.txt", "src/b.go"})
	want := "created (2):\n  a.txt\n  src/b.go\n"
	if buf.String() != want {
		t.Errorf("PrintList() = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	PrintList(&buf, "skipped", nil)
	if buf.Len() != 0 {
		t.Errorf("PrintList(nil) printed %q", buf.String())
	}
}

func TestIndent(t *testing.T) {
	got := Indent("one\n\ntwo\n", "  ")
	if got != "  one\n\n  two" {
		t.Errorf("Indent() = %q", got)
	}
}
