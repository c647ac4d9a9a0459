package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/flags"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/util"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/logger"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/session"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

func init() {
	Register(&Command{
		Name:        "generate",
		Aliases:     []string{"gen"},
		Description: "Render a template into a directory",
		Run:         RunGenerate,
	})
}

// GenerateOptions contains the configuration for the generate command.
type GenerateOptions struct {
	Template  string
	Target    string
	Config    string
	Name      string
	Overrides *substitution.Substitutions
	Force     bool
	DryRun    bool
	NoSave    bool
}

// RunGenerate executes the generate command with parsed arguments.
func RunGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	template := flags.AddTemplateFlag(fs)
	target := flags.AddTargetFlag(fs)
	config := flags.AddConfigFlag(fs)
	name := flags.AddNameFlag(fs)
	set := flags.AddSetFlag(fs)
	force := flags.AddForceFlag(fs)
	dryRun := fs.Bool("dry-run", false, "show what would be written")
	noSave := fs.Bool("no-save", false, "do not write the answers file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if err := flags.ValidateRequired("template", *template); err != nil {
		return errors.New("usage: stencil generate --template <dir> [--target <dir>] [--set KEY=VALUE]")
	}
	if err := flags.ValidateDir(*template); err != nil {
		return fmt.Errorf("template: %w", err)
	}
	logger.Debug("%d values given with --set", set.Len())

	return ExecuteGenerate(GenerateOptions{
		Template:  *template,
		Target:    *target,
		Config:    *config,
		Name:      *name,
		Overrides: set.Substitutions(),
		Force:     *force,
		DryRun:    *dryRun,
		NoSave:    *noSave,
	})
}

// ExecuteGenerate runs a session and prints what it did.
func ExecuteGenerate(opts GenerateOptions) error {
	report, err := session.Run(session.Options{
		TemplateDir: opts.Template,
		TargetDir:   opts.Target,
		AnswersPath: opts.Config,
		Name:        opts.Name,
		Overrides:   opts.Overrides,
		Force:       opts.Force,
		DryRun:      opts.DryRun,
		NoSave:      opts.NoSave,
	})
	var missing *session.MissingInputsError
	if errors.As(err, &missing) {
		fmt.Fprintf(stdout, "Template %s needs values for:\n", missing.Template)
		for _, n := range missing.Names {
			fmt.Fprintf(stdout, "  %s\n", n)
		}
		fmt.Fprintln(stdout, "Supply them with --set KEY=VALUE or in the answers file.")
		return err
	}
	if err != nil {
		return err
	}

	res := report.Result
	prefix := ""
	if opts.DryRun {
		prefix = "would be "
	}
	util.PrintList(stdout, prefix+"created", res.Created)
	util.PrintList(stdout, prefix+"overwritten", res.Overwritten)
	util.PrintList(stdout, "skipped (exists, use --force)", res.Skipped)
	fmt.Fprintf(stdout, "%s: %d files into %s\n", report.Manifest.Name, res.Total(), util.MustAbs(opts.Target))
	if report.Saved {
		fmt.Fprintf(stdout, "answers saved to %s\n", report.AnswersPath)
	}
	if report.Instructions != "" {
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, util.Indent(report.Instructions, "  "))
	}
	return nil
}
