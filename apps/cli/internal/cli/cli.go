// Package cli dispatches stencil command lines to the registered commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/cli/commands"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/logger"
)

// Run executes the command line in args, without the program name.
// Global flags are only recognised before the command name.
func Run(args []string) error {
	args, level := globalFlags(args)
	logger.SetLevel(level)

	if len(args) == 0 {
		return commands.ShowUsage()
	}

	name := args[0]
	cmd, ok := commands.Get(name)
	if !ok {
		return fmt.Errorf("unknown command: %s\nRun 'stencil help' for usage", name)
	}
	logger.Debug("running %s %s", cmd.Name, strings.Join(args[1:], " "))
	return cmd.Run(args[1:])
}

// globalFlags strips leading --verbose and --debug flags and returns the
// remaining arguments with the requested log level.
func globalFlags(args []string) ([]string, logger.Level) {
	level := logger.LevelOff
	for len(args) > 0 {
		switch args[0] {
		case "--verbose", "-verbose":
			if level < logger.LevelInfo {
				level = logger.LevelInfo
			}
		case "--debug", "-debug":
			level = logger.LevelDebug
		default:
			return args, level
		}
		args = args[1:]
	}
	return args, level
}
