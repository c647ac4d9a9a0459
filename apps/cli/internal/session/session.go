// Package session runs one scaffolding session: it gathers values from the
// command line, the answers file and built-ins, resolves the template's
// inputs, renders the template and saves the answers for next time.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/config"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/gitutil"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/logger"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/render"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

// Built-in keys seeded into every session when not already known.
const (
	KeyProjectName  = "%PROJECT_NAME%"
	KeyShortName    = "%SHORT_NAME%"
	KeyProjectGUID  = "%PROJECT_GUID%"
	KeySolutionGUID = "%SOLUTION_GUID%"
	KeyYear         = "%YEAR%"
	KeyDate         = "%DATE%"
	KeyGitUserName  = "%GIT_USER_NAME%"
	KeyGitUserEmail = "%GIT_USER_EMAIL%"
)

// Options configures a session.
type Options struct {
	TemplateDir string
	TargetDir   string
	// AnswersPath defaults to TargetDir/fubu.template.config.
	AnswersPath string
	// Name is the project name; defaults to the base name of TargetDir.
	Name string
	// Overrides are values given on the command line. They win over
	// everything else.
	Overrides *substitution.Substitutions

	Force  bool
	DryRun bool
	NoSave bool

	// Now, NewGUID and GitConfig are replaced in tests. GitConfig returns
	// "" for keys git does not know.
	Now       func() time.Time
	NewGUID   func() string
	GitConfig func(key string) string
}

// Report describes a finished session.
type Report struct {
	Manifest      *config.Manifest
	Substitutions *substitution.Substitutions
	Result        render.Result
	Instructions  string
	AnswersPath   string
	AnswersLoaded bool
	Saved         bool
}

// MissingInputsError lists inputs that have neither a value nor a default.
type MissingInputsError struct {
	Template string
	Names    []string
}

func (e *MissingInputsError) Error() string {
	return fmt.Sprintf("template %s needs values for: %s", e.Template, strings.Join(e.Names, ", "))
}

// Run executes a full session. When inputs are missing it returns a
// *MissingInputsError and renders nothing.
func Run(opts Options) (*Report, error) {
	opts, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	manifest, err := config.LoadManifest(opts.TemplateDir)
	if err != nil {
		return nil, err
	}
	subs, loaded, err := seed(opts)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Manifest:      manifest,
		Substitutions: subs,
		AnswersPath:   opts.AnswersPath,
		AnswersLoaded: loaded,
	}

	if missing := subs.MissingInputs(manifest.Inputs()); len(missing) > 0 {
		return report, &MissingInputsError{Template: manifest.Name, Names: missing}
	}

	if manifest.Instructions != "" {
		subs.Set(substitution.Instructions, subs.ApplySubstitutions(manifest.Instructions))
		report.Instructions, _ = subs.ValueFor(substitution.Instructions)
	}

	if opts.Force {
		warnDirtyTree(opts.TargetDir)
	}
	if !opts.DryRun {
		if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
			return report, fmt.Errorf("create %s: %w", opts.TargetDir, err)
		}
	}
	report.Result, err = render.Render(subs, render.Options{
		TemplateDir: opts.TemplateDir,
		TargetDir:   opts.TargetDir,
		Ignore:      config.IgnoreGlobs(manifest),
		Force:       opts.Force,
		DryRun:      opts.DryRun,
	})
	if err != nil {
		return report, err
	}
	logger.Info("rendered %s: %d created, %d overwritten, %d skipped",
		manifest.Name, len(report.Result.Created), len(report.Result.Overwritten), len(report.Result.Skipped))

	if !opts.DryRun && !opts.NoSave {
		if err := subs.WriteTo(opts.AnswersPath); err != nil {
			return report, err
		}
		report.Saved = true
		logger.Info("saved %d answers to %s", subs.Len(), opts.AnswersPath)
	}
	return report, nil
}

// normalize fills defaults and makes paths absolute.
func normalize(opts Options) (Options, error) {
	if opts.TemplateDir == "" {
		return opts, errors.New("session: template directory is required")
	}
	if opts.TargetDir == "" {
		opts.TargetDir = "."
	}
	var err error
	if opts.TemplateDir, err = filepath.Abs(opts.TemplateDir); err != nil {
		return opts, err
	}
	if opts.TargetDir, err = filepath.Abs(opts.TargetDir); err != nil {
		return opts, err
	}
	info, err := os.Stat(opts.TemplateDir)
	if err != nil {
		return opts, fmt.Errorf("template %s: %w", opts.TemplateDir, err)
	}
	if !info.IsDir() {
		return opts, fmt.Errorf("template %s is not a directory", opts.TemplateDir)
	}
	if opts.AnswersPath == "" {
		opts.AnswersPath = filepath.Join(opts.TargetDir, config.DefaultAnswersFile)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewGUID == nil {
		opts.NewGUID = newGUID
	}
	if opts.GitConfig == nil {
		dir := opts.TemplateDir
		opts.GitConfig = func(key string) string {
			v, err := gitutil.ConfigValue(dir, key)
			if err != nil {
				logger.Debug("git config %s: %v", key, err)
				return ""
			}
			return v
		}
	}
	return opts, nil
}

// seed builds the session store: command-line overrides, then the answers
// file, then built-ins. Each later source only fills gaps.
func seed(opts Options) (*substitution.Substitutions, bool, error) {
	subs := substitution.New()
	if opts.Overrides != nil {
		opts.Overrides.CopyTo(subs)
	}
	if opts.Name != "" {
		subs.SetIfNone(KeyProjectName, opts.Name)
	}
	// A name given on the command line also renames the short name, unless
	// that was given too. Saved answers must not keep the old one.
	if name, err := subs.ValueFor(KeyProjectName); err == nil {
		subs.SetIfNone(KeyShortName, ShortName(name))
	}

	loaded := false
	if err := subs.ReadFrom(opts.AnswersPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, err
		}
		logger.Debug("no answers file at %s", opts.AnswersPath)
	} else {
		loaded = true
		logger.Info("loaded answers from %s", opts.AnswersPath)
	}

	subs.SetIfNone(KeyProjectName, filepath.Base(opts.TargetDir))
	name, _ := subs.ValueFor(KeyProjectName)
	subs.SetIfNone(KeyShortName, ShortName(name))
	subs.SetIfNone(KeyProjectGUID, opts.NewGUID())
	subs.SetIfNone(KeySolutionGUID, opts.NewGUID())
	now := opts.Now()
	subs.SetIfNone(KeyYear, now.Format("2006"))
	subs.SetIfNone(KeyDate, now.Format("2006-01-02"))
	for _, kv := range [][2]string{{KeyGitUserName, "user.name"}, {KeyGitUserEmail, "user.email"}} {
		if subs.Has(kv[0]) {
			continue
		}
		if v := opts.GitConfig(kv[1]); v != "" {
			subs.Set(kv[0], v)
		}
	}

	if logger.IsDebug() {
		for _, k := range subs.Keys() {
			v, _ := subs.ValueFor(k)
			logger.Debug("%s=%s", k, v)
		}
	}
	return subs, loaded, nil
}

// warnDirtyTree logs a warning when dir is inside a git working tree with
// uncommitted changes.
func warnDirtyTree(dir string) {
	if !gitutil.IsGitRepo(dir) {
		return
	}
	root, err := gitutil.GetRepoRoot(dir)
	if err != nil {
		logger.Debug("git root of %s: %v", dir, err)
		return
	}
	if gitutil.IsDirtyWorkingTree(root) {
		logger.Info("warning: %s has uncommitted changes and --force may overwrite them", root)
	}
}

// ShortName returns the segment after the last '.' of a dotted project name.
func ShortName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}

func newGUID() string {
	return strings.ToUpper(uuid.NewString())
}
