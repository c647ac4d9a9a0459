package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/flags"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/config"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
	"github.com/mehmetkoksal-w/stencil/apps/cli/starter"
)

func init() {
	Register(&Command{
		Name:        "new",
		Aliases:     []string{"init"},
		Description: "Create a starter template",
		Run:         RunNew,
	})
}

// NewOptions contains the configuration for the new command.
type NewOptions struct {
	Dir         string
	Name        string
	Description string
	Force       bool
	// Bare writes only a manifest, without the starter files.
	Bare bool
}

// RunNew executes the new command with parsed arguments.
func RunNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	name := fs.String("name", "", "template name (default: directory name)")
	fs.StringVar(name, "n", "", "template name (shorthand)")
	desc := fs.String("description", "", "template description")
	fs.StringVar(desc, "d", "", "template description (shorthand)")
	force := flags.AddForceFlag(fs)
	bare := fs.Bool("bare", false, "write only template.jsonc")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: stencil new <dir> [--name <name>] [--description <text>] [--bare] [--force]")
	}

	return ExecuteNew(NewOptions{
		Dir:         fs.Arg(0),
		Name:        *name,
		Description: *desc,
		Force:       *force,
		Bare:        *bare,
	})
}

// ExecuteNew writes the starter template into opts.Dir.
func ExecuteNew(opts NewOptions) error {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(dir)
	}
	if opts.Description == "" {
		opts.Description = "Starter template " + opts.Name
	}

	if opts.Bare {
		return writeBareManifest(dir, opts)
	}

	subs := substitution.New()
	subs.Set(starter.KeyTemplateName, opts.Name)
	subs.Set(starter.KeyTemplateDescription, opts.Description)
	written, err := starter.WriteTo(dir, subs, opts.Force)
	if err != nil {
		return err
	}
	for _, name := range written {
		fmt.Fprintf(stdout, "wrote %s\n", name)
	}
	if len(written) == 0 {
		fmt.Fprintf(stdout, "template already exists in %s (use --force to overwrite)\n", dir)
		return nil
	}
	fmt.Fprintf(stdout, "template %s ready in %s\n", opts.Name, dir)
	return nil
}

func writeBareManifest(dir string, opts NewOptions) error {
	path := filepath.Join(dir, config.ManifestFile)
	if _, err := os.Stat(path); err == nil && !opts.Force {
		fmt.Fprintf(stdout, "template already exists in %s (use --force to overwrite)\n", dir)
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	m := &config.Manifest{
		SchemaVersion: config.SchemaVersion,
		Kind:          config.Kind,
		Name:          opts.Name,
		Description:   opts.Description,
	}
	if err := config.WriteManifest(path, m); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", config.ManifestFile)
	return nil
}
