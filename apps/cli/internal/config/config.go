// Package config loads template manifests (template.jsonc) and the ignore
// rules that decide which files of a template tree are rendered.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/jsonc"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/validate"
	"github.com/mehmetkoksal-w/stencil/apps/cli/schemas"
)

const (
	// ManifestFile is the manifest name looked up in a template root.
	ManifestFile = "template.jsonc"
	// DefaultAnswersFile is the answers file written into the target directory.
	DefaultAnswersFile = "fubu.template.config"
	// Kind is the required manifest kind.
	Kind = "stencil/template"
	// SchemaVersion is written into new manifests.
	SchemaVersion = "1.0.0"
)

// InputSpec is one entry of the manifest "inputs" array. It is written either
// as a "Name=Default" string or as an object.
type InputSpec struct {
	Name        string  `json:"name"`
	Default     *string `json:"default,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form.
func (s *InputSpec) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		in := substitution.ParseInput(text)
		s.Name = in.Name
		s.Description = ""
		s.Default = nil
		if in.HasDefault {
			def := in.Default
			s.Default = &def
		}
		return nil
	}
	type plain InputSpec
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("input must be a string or an object: %w", err)
	}
	*s = InputSpec(p)
	return nil
}

// Input converts s into a substitution input.
func (s InputSpec) Input() substitution.Input {
	in := substitution.Input{Name: s.Name, Description: s.Description}
	if s.Default != nil {
		in.Default = *s.Default
		in.HasDefault = true
	}
	return in
}

// Manifest describes a template directory.
type Manifest struct {
	SchemaVersion string      `json:"schemaVersion,omitempty"`
	Kind          string      `json:"kind"`
	Name          string      `json:"name,omitempty"`
	Description   string      `json:"description,omitempty"`
	InputSpecs    []InputSpec `json:"inputs,omitempty"`
	Ignore        []string    `json:"ignore,omitempty"`
	Instructions  string      `json:"instructions,omitempty"`
}

// Inputs returns the declared inputs in manifest order.
func (m *Manifest) Inputs() []substitution.Input {
	out := make([]substitution.Input, 0, len(m.InputSpecs))
	for _, spec := range m.InputSpecs {
		out = append(out, spec.Input())
	}
	return out
}

// LoadManifest reads and validates the manifest of templateDir:
// template.jsonc, or template.yaml when there is no JSONC manifest. A
// directory without a manifest is a template with no inputs. The manifest
// name defaults to the directory name.
func LoadManifest(templateDir string) (*Manifest, error) {
	m, err := loadManifest(templateDir)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(m.Name) == "" {
		m.Name = filepath.Base(templateDir)
	}
	return m, nil
}

func loadManifest(templateDir string) (*Manifest, error) {
	path := filepath.Join(templateDir, ManifestFile)
	ok, err := exists(path)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := validate.JSONC(path, schemas.Template); err != nil {
			return nil, err
		}
		var m Manifest
		if err := jsonc.DecodeFile(path, &m); err != nil {
			return nil, err
		}
		return &m, nil
	}

	yamlPath := filepath.Join(templateDir, ManifestYAMLFile)
	if ok, err = exists(yamlPath); err != nil {
		return nil, err
	}
	if ok {
		return loadManifestYAML(yamlPath)
	}
	return &Manifest{Kind: Kind}, nil
}

func exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return true, nil
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m *Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// IgnoreGlobs returns the default ignore globs extended by the manifest's own.
func IgnoreGlobs(m *Manifest) []string {
	var user []string
	if m != nil {
		user = m.Ignore
	}
	return mergeGlobs(defaultIgnoreGlobs(), user)
}

func defaultIgnoreGlobs() []string {
	return []string{
		ManifestFile,
		ManifestYAMLFile,
		DefaultAnswersFile,
		".git/**",
		".hg/**",
		".svn/**",
		"**/.DS_Store",
		"**/Thumbs.db",
	}
}

func mergeGlobs(defaults, user []string) []string {
	seen := make(map[string]struct{})
	var merged []string
	appendIfMissing := func(globs []string) {
		for _, g := range globs {
			norm := normalizeGlob(g)
			if norm == "" {
				continue
			}
			if _, ok := seen[norm]; ok {
				continue
			}
			seen[norm] = struct{}{}
			merged = append(merged, norm)
		}
	}
	appendIfMissing(defaults)
	appendIfMissing(user)
	return merged
}

func normalizeGlob(g string) string {
	trimmed := strings.TrimSpace(g)
	if trimmed == "" {
		return ""
	}
	trimmed = strings.ReplaceAll(trimmed, "\\", "/")
	for strings.Contains(trimmed, "//") {
		trimmed = strings.ReplaceAll(trimmed, "//", "/")
	}
	return strings.TrimPrefix(trimmed, "./")
}
