package substitution

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

var errMalformedLine = errors.New("malformed line: expected key=value")

// WriteTo writes every entry as a key=value line, in iteration order,
// replacing any existing file at path and keeping its permissions. New files
// are created 0644. The instructions text is never written.
func (s *Substitutions) WriteTo(path string) error {
	var buf bytes.Buffer
	for _, k := range s.keys {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(s.values[k])
		buf.WriteByte('\n')
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// ReadFrom merges the key=value lines of the file at path into s with
// SetIfNone semantics, so values already present win over the file.
//
// Blank lines are skipped. A non-blank line without '=' fails the whole read
// and leaves s untouched.
func (s *Substitutions) ReadFrom(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &ConfigReadError{Path: path, Err: err}
	}
	defer f.Close()

	type entry struct{ key, value string }
	var entries []entry

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return &ConfigReadError{Path: path, Line: lineNo, Err: errMalformedLine}
		}
		entries = append(entries, entry{key: key, value: value})
	}
	if err := scanner.Err(); err != nil {
		return &ConfigReadError{Path: path, Err: err}
	}

	for _, e := range entries {
		s.SetIfNone(e.key, e.value)
	}
	return nil
}
