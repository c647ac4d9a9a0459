// Package substitution holds the named values of a scaffolding session and
// applies them to template text.
//
// A Substitutions value is an ordered key/value table. Keys are opaque strings,
// usually placeholders such as %SHORT_NAME%. The table can be persisted to a
// plain key=value file and read back so later sessions reuse earlier answers.
package substitution

import "strings"

// Instructions is the reserved key for the post-generation instructions text.
// It is kept outside the persistable table and is never written by WriteTo.
const Instructions = "%INSTRUCTIONS%"

// Substitutions is an ordered mapping of placeholder keys to values.
// It is not safe for concurrent use.
type Substitutions struct {
	keys   []string
	values map[string]string

	instructions    string
	hasInstructions bool
}

// New returns an empty Substitutions.
func New() *Substitutions {
	return &Substitutions{values: make(map[string]string)}
}

// Set inserts or overwrites the value for key. New keys are appended to the
// iteration order; existing keys keep their position.
func (s *Substitutions) Set(key, value string) {
	if key == Instructions {
		s.instructions = value
		s.hasInstructions = true
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// SetIfNone sets key only when no value is present yet.
func (s *Substitutions) SetIfNone(key, value string) {
	if s.Has(key) {
		return
	}
	s.Set(key, value)
}

// Has reports whether a value exists for key.
func (s *Substitutions) Has(key string) bool {
	if key == Instructions {
		return s.hasInstructions
	}
	_, ok := s.values[key]
	return ok
}

// ValueFor returns the value for key, or a *KeyNotFoundError if it is absent.
func (s *Substitutions) ValueFor(key string) (string, error) {
	if key == Instructions {
		if !s.hasInstructions {
			return "", &KeyNotFoundError{Key: key}
		}
		return s.instructions, nil
	}
	v, ok := s.values[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Keys returns the persistable keys in iteration order.
func (s *Substitutions) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of persistable entries.
func (s *Substitutions) Len() int {
	return len(s.keys)
}

// CopyTo sets every entry of s into other, in iteration order. Entries of other
// that s does not know about are left alone.
func (s *Substitutions) CopyTo(other *Substitutions) {
	for _, k := range s.keys {
		other.Set(k, s.values[k])
	}
	if s.hasInstructions {
		other.Set(Instructions, s.instructions)
	}
}

// ApplySubstitutions returns text with every literal occurrence of each key
// replaced by its value. Keys are applied in iteration order, the reserved
// instructions key last. Keys that do not occur in text are ignored.
func (s *Substitutions) ApplySubstitutions(text string) string {
	out := text
	for _, k := range s.keys {
		if k == "" {
			continue
		}
		out = strings.ReplaceAll(out, k, s.values[k])
	}
	if s.hasInstructions {
		out = strings.ReplaceAll(out, Instructions, s.instructions)
	}
	return out
}
