package flags

import (
	"fmt"
	"os"
	"strings"
)

// ValidateAssignment validates a KEY=VALUE string with a non-empty key.
func ValidateAssignment(s string) error {
	key, _, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected KEY=VALUE, got %q", s)
	}
	if key == "" {
		return fmt.Errorf("empty key in %q", s)
	}
	return nil
}

// ValidateRequired validates that a required string flag was given.
func ValidateRequired(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

// ValidateDir validates that path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
