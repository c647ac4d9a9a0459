package session

import (
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/config"
	"github.com/mehmetkoksal-w/stencil/apps/cli/internal/substitution"
)

// Source says where an input's value came from.
type Source string

const (
	SourceExisting Source = "existing"
	SourceDefault  Source = "default"
	SourceMissing  Source = "missing"
)

// InputStatus is the resolution of one declared input.
type InputStatus struct {
	Input  substitution.Input
	Value  string
	Source Source
}

// Resolve reports how each input of the template would resolve, without
// rendering or saving anything.
func Resolve(opts Options) (*config.Manifest, []InputStatus, error) {
	opts, err := normalize(opts)
	if err != nil {
		return nil, nil, err
	}
	manifest, err := config.LoadManifest(opts.TemplateDir)
	if err != nil {
		return nil, nil, err
	}
	subs, _, err := seed(opts)
	if err != nil {
		return nil, nil, err
	}

	inputs := manifest.Inputs()
	statuses := make([]InputStatus, 0, len(inputs))
	for _, in := range inputs {
		st := InputStatus{Input: in, Source: SourceDefault}
		if subs.Has(in.Name) {
			st.Source = SourceExisting
		}
		subs.ReadInputs([]substitution.Input{in}, func(string) {
			st.Source = SourceMissing
		})
		if st.Source != SourceMissing {
			st.Value, _ = subs.ValueFor(in.Name)
		}
		statuses = append(statuses, st)
	}
	return manifest, statuses, nil
}
