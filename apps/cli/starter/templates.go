// Package starter provides the embedded template written by stencil new.
package starter

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

// Keys substituted when the starter is written out. Every other placeholder
// is left for the generate step.
const (
	KeyTemplateName        = "%TEMPLATE_NAME%"
	KeyTemplateDescription = "%TEMPLATE_DESCRIPTION%"
)

const root = "template"

//go:embed template
var templateFS embed.FS

// Names returns the slash-separated paths of the starter files, sorted.
func Names() ([]string, error) {
	var names []string
	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		names = append(names, strings.TrimPrefix(p, root+"/"))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Get returns the content of a starter file.
func Get(name string) (string, error) {
	p := path.Join(root, strings.TrimPrefix(name, "/"))
	data, err := templateFS.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteTo writes the starter template into dir with subs applied to file
// contents. Existing files are kept unless overwrite is set. It returns the
// files written.
func WriteTo(dir string, subs *substitution.Substitutions, overwrite bool) ([]string, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	var written []string
	for _, name := range names {
		dest := filepath.Join(dir, filepath.FromSlash(name))
		if _, err := os.Stat(dest); err == nil && !overwrite {
			continue
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return written, fmt.Errorf("stat %s: %w", dest, err)
		}
		tpl, err := Get(name)
		if err != nil {
			return written, fmt.Errorf("load starter %s: %w", name, err)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return written, fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, []byte(subs.ApplySubstitutions(tpl)), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", dest, err)
		}
		written = append(written, name)
	}
	return written, nil
}
