package commands

import (
	"fmt"
	"strings"
)

func init() {
	Register(&Command{
		Name:        "help",
		Aliases:     []string{"-h", "--help"},
		Description: "Show help for a command or topic",
		Run:         RunHelp,
	})
}

// RunHelp executes the help command with parsed arguments.
func RunHelp(args []string) error {
	if len(args) == 0 {
		return ShowUsage()
	}

	topic := strings.ToLower(strings.TrimSpace(args[0]))
	return ShowHelpTopic(topic)
}

// ShowUsage displays the main usage message.
func ShowUsage() error {
	fmt.Fprint(stdout, `stencil - scaffold projects from placeholder templates

COMMANDS
  generate  Render a template into a directory (alias: gen)
  inputs    Show how a template's inputs resolve
  apply     Substitute values into a single file or stdin
  new       Create a starter template
  help      Show help for a command or topic
  version   Show version information

GLOBAL FLAGS (before the command)
  --verbose Show progress
  --debug   Show every value and file decision

EXAMPLES
  stencil new templates/library --name library
  stencil generate -t templates/library -o Acme.Widgets --set %AUTHOR%=Jane
  stencil inputs -t templates/library -o Acme.Widgets
  stencil apply -c Acme.Widgets/fubu.template.config notes.txt

Run 'stencil help <command>' for detailed help on a command.
`)
	return nil
}

// ShowHelpTopic displays help for a specific topic.
func ShowHelpTopic(topic string) error {
	switch topic {
	case "generate", "gen":
		fmt.Fprint(stdout, `stencil generate - Render a template into a directory

Usage: stencil generate --template <dir> [options]

Options:
  --template, -t <dir>  Template directory (required)
  --target, -o <dir>    Directory to generate into (default: .)
  --name, -n <name>     Project name (default: target directory name)
  --set, -s KEY=VALUE   Substitution value, repeatable; wins over saved answers
  --config, -c <file>   Answers file (default: <target>/fubu.template.config)
  --force, -f           Overwrite existing files
  --dry-run             Show what would be written
  --no-save             Do not write the answers file

Values are resolved in this order, first one wins:
  1. --set values and --name
  2. answers saved by an earlier run
  3. built-ins: %PROJECT_NAME% %SHORT_NAME% %PROJECT_GUID% %SOLUTION_GUID% %YEAR% %DATE%
     and, when git knows them, %GIT_USER_NAME% %GIT_USER_EMAIL%
  4. input defaults declared in template.jsonc

The manifest is template.jsonc, or template.yaml when there is no JSONC file.
If an input has no value, nothing is generated and the missing names are listed.

Examples:
  stencil generate -t templates/library -o Acme.Widgets
  stencil generate -t templates/library -o Acme.Widgets --set %AUTHOR%=Jane
  stencil generate -t templates/library -o Acme.Widgets --force
`)
	case "inputs":
		fmt.Fprint(stdout, `stencil inputs - Show how a template's inputs resolve

Usage: stencil inputs --template <dir> [options]

Options:
  --template, -t <dir>  Template directory (required)
  --target, -o <dir>    Directory that would be generated into (default: .)
  --name, -n <name>     Project name
  --set, -s KEY=VALUE   Substitution value, repeatable
  --config, -c <file>   Answers file

Each input is shown as existing, default or missing.
`)
	case "apply":
		fmt.Fprint(stdout, `stencil apply - Substitute values into a single file

Usage: stencil apply [options] [file]

Reads the file (or stdin when no file is given), replaces every known
placeholder and prints the result.

Options:
  --config, -c <file>   Answers file to load values from
  --set, -s KEY=VALUE   Substitution value, repeatable; wins over the file
`)
	case "new":
		fmt.Fprint(stdout, `stencil new - Create a starter template

Usage: stencil new <dir> [options]

Options:
  --name, -n <name>         Template name (default: directory name)
  --description, -d <text>  Template description
  --bare                    Write only template.jsonc
  --force, -f               Overwrite existing files
`)
	case "version":
		fmt.Fprintln(stdout, "stencil version - Show version information")
	case "help":
		fmt.Fprintln(stdout, "stencil help [command] - Show help for a command")
	default:
		return fmt.Errorf("unknown help topic: %s\nRun 'stencil help' for usage", topic)
	}
	return nil
}
