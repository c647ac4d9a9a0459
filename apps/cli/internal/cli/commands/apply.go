package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/flags"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

func init() {
	Register(&Command{
		Name:        "apply",
		Description: "Substitute values into a single file or stdin",
		Run:         RunApply,
	})
}

// RunApply executes the apply command with parsed arguments.
func RunApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	config := flags.AddConfigFlag(fs)
	set := flags.AddSetFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.New("usage: stencil apply [--config <file>] [--set KEY=VALUE] [file]")
	}

	subs := substitution.New()
	set.Substitutions().CopyTo(subs)
	if *config != "" {
		if err := subs.ReadFrom(*config); err != nil {
			return err
		}
	}

	var (
		data []byte
		err  error
	)
	if fs.NArg() == 1 {
		data, err = os.ReadFile(fs.Arg(0))
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	_, err = io.WriteString(stdout, subs.ApplySubstitutions(string(data)))
	return err
}
