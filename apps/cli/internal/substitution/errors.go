package substitution

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigRead is matched by every *ConfigReadError.
	ErrConfigRead = errors.New("substitution: config read failed")
	// ErrKeyNotFound is matched by every *KeyNotFoundError.
	ErrKeyNotFound = errors.New("substitution: key not found")
)

// ConfigReadError reports a failure to open or parse an answers file.
// Line is 1-based, or 0 when the failure is not tied to a line.
type ConfigReadError struct {
	Path string
	Line int
	Err  error
}

func (e *ConfigReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("read %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

func (e *ConfigReadError) Is(target error) bool { return target == ErrConfigRead }

// KeyNotFoundError is returned by ValueFor for a key that has no value.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("substitution: no value for key %q", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }
