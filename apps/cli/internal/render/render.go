// Package render writes a template directory into a target directory with
// substitutions applied to both file paths and text contents.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/fsutil"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/logger"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

// Options controls a render.
type Options struct {
	TemplateDir string
	TargetDir   string
	// Ignore holds doublestar globs relative to TemplateDir.
	Ignore []string
	// Force overwrites files that already exist in TargetDir.
	Force bool
	// DryRun computes the result without touching TargetDir.
	DryRun bool
}

// Result lists target-relative paths by outcome.
type Result struct {
	Created     []string
	Overwritten []string
	Skipped     []string
}

// Total returns the number of files considered.
func (r Result) Total() int {
	return len(r.Created) + len(r.Overwritten) + len(r.Skipped)
}

// Render copies every non-ignored file of opts.TemplateDir into
// opts.TargetDir. Paths always have substitutions applied; contents do too
// unless the file is binary. Existing files are skipped unless opts.Force.
func Render(subs *substitution.Substitutions, opts Options) (Result, error) {
	var result Result
	if opts.TemplateDir == "" || opts.TargetDir == "" {
		return result, errors.New("render: template and target directories are required")
	}
	files, err := fsutil.ListFiles(opts.TemplateDir, opts.Ignore)
	if err != nil {
		return result, fmt.Errorf("list %s: %w", opts.TemplateDir, err)
	}
	logger.Info("rendering %d files from %s", len(files), opts.TemplateDir)

	for _, rel := range files {
		destRel, err := targetPath(subs, rel)
		if err != nil {
			return result, err
		}
		dest := filepath.Join(opts.TargetDir, filepath.FromSlash(destRel))

		exists := false
		if _, err := os.Stat(dest); err == nil {
			exists = true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("stat %s: %w", dest, err)
		}
		if exists && !opts.Force {
			logger.Debug("skip %s (exists)", destRel)
			result.Skipped = append(result.Skipped, destRel)
			continue
		}

		if !opts.DryRun {
			if err := renderFile(subs, filepath.Join(opts.TemplateDir, filepath.FromSlash(rel)), dest); err != nil {
				return result, err
			}
		}
		if exists {
			logger.Debug("overwrite %s", destRel)
			result.Overwritten = append(result.Overwritten, destRel)
		} else {
			logger.Debug("create %s", destRel)
			result.Created = append(result.Created, destRel)
		}
	}
	return result, nil
}

// targetPath substitutes rel and rejects results that leave the target.
func targetPath(subs *substitution.Substitutions, rel string) (string, error) {
	out := filepath.ToSlash(filepath.Clean(filepath.FromSlash(subs.ApplySubstitutions(rel))))
	if out == "." || out == "" || filepath.IsAbs(out) || out == ".." || strings.HasPrefix(out, "../") {
		return "", fmt.Errorf("render: %s resolves to %q, outside the target directory", rel, out)
	}
	return out, nil
}

func renderFile(subs *substitution.Substitutions, src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if !fsutil.IsBinary(data) {
		data = []byte(subs.ApplySubstitutions(string(data)))
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}
	if err := atomic.WriteFile(dest, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	if err := os.Chmod(dest, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", dest, err)
	}
	return nil
}
