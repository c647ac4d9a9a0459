package commands

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/flags"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/util"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/session"
)

func init() {
	Register(&Command{
		Name:        "inputs",
		Description: "Show how a template's inputs resolve",
		Run:         RunInputs,
	})
}

// RunInputs executes the inputs command with parsed arguments.
func RunInputs(args []string) error {
	fs := flag.NewFlagSet("inputs", flag.ContinueOnError)
	template := flags.AddTemplateFlag(fs)
	target := flags.AddTargetFlag(fs)
	config := flags.AddConfigFlag(fs)
	name := flags.AddNameFlag(fs)
	set := flags.AddSetFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := flags.ValidateRequired("template", *template); err != nil {
		return errors.New("usage: stencil inputs --template <dir> [--target <dir>] [--set KEY=VALUE]")
	}
	if err := flags.ValidateDir(*template); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	manifest, statuses, err := session.Resolve(session.Options{
		TemplateDir: *template,
		TargetDir:   *target,
		AnswersPath: *config,
		Name:        *name,
		Overrides:   set.Substitutions(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s", manifest.Name)
	if manifest.Description != "" {
		fmt.Fprintf(stdout, " - %s", manifest.Description)
	}
	fmt.Fprintln(stdout)
	if len(statuses) == 0 {
		fmt.Fprintln(stdout, "no inputs declared")
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tSOURCE\tVALUE")
	missing := 0
	for _, st := range statuses {
		value := util.TruncateLine(st.Value, 60)
		if st.Source == session.SourceMissing {
			missing++
			value = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", st.Input.Name, st.Source, value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if missing > 0 {
		fmt.Fprintf(stdout, "%d input(s) missing\n", missing)
	}
	return nil
}
