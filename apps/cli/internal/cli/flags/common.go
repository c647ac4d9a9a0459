package flags

import "flag"

// AddTemplateFlag adds --template and -t flags for the template directory.
func AddTemplateFlag(fs *flag.FlagSet) *string {
	dir := fs.String("template", "", "template directory")
	fs.StringVar(dir, "t", "", "template directory (shorthand)")
	return dir
}

// AddTargetFlag adds --target and -o flags for the output directory.
func AddTargetFlag(fs *flag.FlagSet) *string {
	dir := fs.String("target", ".", "directory to generate into")
	fs.StringVar(dir, "o", ".", "directory to generate into (shorthand)")
	return dir
}

// AddConfigFlag adds --config and -c flags for the answers file.
func AddConfigFlag(fs *flag.FlagSet) *string {
	path := fs.String("config", "", "answers file (default <target>/fubu.template.config)")
	fs.StringVar(path, "c", "", "answers file (shorthand)")
	return path
}

// AddSetFlag adds the repeatable --set and -s flags.
func AddSetFlag(fs *flag.FlagSet) *Assignments {
	a := &Assignments{}
	fs.Var(a, "set", "KEY=VALUE substitution, repeatable")
	fs.Var(a, "s", "KEY=VALUE substitution (shorthand)")
	return a
}

// AddNameFlag adds --name and -n flags for the project name.
func AddNameFlag(fs *flag.FlagSet) *string {
	name := fs.String("name", "", "project name (default: target directory name)")
	fs.StringVar(name, "n", "", "project name (shorthand)")
	return name
}

// AddForceFlag adds --force and -f flags for overwrite operations.
func AddForceFlag(fs *flag.FlagSet) *bool {
	force := fs.Bool("force", false, "overwrite existing files")
	fs.BoolVar(force, "f", false, "overwrite existing files (shorthand)")
	return force
}
