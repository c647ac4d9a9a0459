package substitution

import "strings"

// Input declares a value a template needs. Default may reference other keys;
// it is resolved against the store when the input is read.
type Input struct {
	Name        string
	Default     string
	HasDefault  bool
	Description string
}

// ParseInput parses "Name=Default". Without '=' the input has no default.
func ParseInput(text string) Input {
	name, def, ok := strings.Cut(text, "=")
	return Input{Name: name, Default: def, HasDefault: ok}
}

// String renders the input back into its Name=Default form.
func (i Input) String() string {
	if !i.HasDefault {
		return i.Name
	}
	return i.Name + "=" + i.Default
}

// ReadInputs resolves inputs in order against s. Inputs that already have a
// value are left alone. Inputs with a default get the default with the
// current substitutions applied, so later defaults can reference earlier
// inputs. Every other input is reported to markMissing, which may be nil.
func (s *Substitutions) ReadInputs(inputs []Input, markMissing func(name string)) {
	for _, in := range inputs {
		if s.Has(in.Name) {
			continue
		}
		if in.HasDefault {
			s.Set(in.Name, s.ApplySubstitutions(in.Default))
			continue
		}
		if markMissing != nil {
			markMissing(in.Name)
		}
	}
}

// MissingInputs runs ReadInputs and returns the names it reported missing.
func (s *Substitutions) MissingInputs(inputs []Input) []string {
	var missing []string
	s.ReadInputs(inputs, func(name string) {
		missing = append(missing, name)
	})
	return missing
}
