// Package flags provides common flag types and validators for the CLI.
package flags

import (
	"flag"
	"strings"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

var _ flag.Value = (*Assignments)(nil)

// Assignments is a repeatable KEY=VALUE flag. Later assignments of the same
// key win.
type Assignments struct {
	subs *substitution.Substitutions
}

// Set parses one KEY=VALUE assignment.
func (a *Assignments) Set(s string) error {
	key, value, err := ParseAssignment(s)
	if err != nil {
		return err
	}
	a.Substitutions().Set(key, value)
	return nil
}

// String returns the assignments joined by commas.
func (a *Assignments) String() string {
	if a == nil || a.subs == nil {
		return ""
	}
	parts := make([]string, 0, a.subs.Len())
	for _, k := range a.subs.Keys() {
		v, _ := a.subs.ValueFor(k)
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Substitutions returns the parsed assignments, never nil.
func (a *Assignments) Substitutions() *substitution.Substitutions {
	if a.subs == nil {
		a.subs = substitution.New()
	}
	return a.subs
}

// Len returns the number of distinct keys assigned.
func (a *Assignments) Len() int {
	if a.subs == nil {
		return 0
	}
	return a.subs.Len()
}

// ParseAssignment splits KEY=VALUE on the first '='.
func ParseAssignment(s string) (string, string, error) {
	if err := ValidateAssignment(s); err != nil {
		return "", "", err
	}
	key, value, _ := strings.Cut(s, "=")
	return key, value, nil
}
