package reactions

import (
	"fmt"

	"github.com/san-kum/vacuumsim/internal/particles"
)

// Validate checks that every species named by the tables is registered.
// It returns nil or a *ConfigurationError listing every issue.
func Validate(reg *particles.Registry, t *Tables) error {
	err := &ConfigurationError{}

	for _, d := range t.Decays() {
		prefix := "decay of '" + d.Parent + "'"
		if !reg.Has(d.Parent) {
			err.addUnknown(prefix + ": parent species does not exist")
		}
		validateOutcomes(reg, prefix, d.Outcomes, err)
	}

	for _, in := range t.Interactions() {
		prefix := "interaction '" + in.String() + "'"
		for _, r := range in.Reactants {
			if !reg.Has(r) {
				err.addUnknown(prefix + ": reactant '" + r + "' does not exist")
			}
		}
		validateOutcomes(reg, prefix, in.Outcomes, err)
	}

	if err.HasIssues() {
		return err
	}
	return nil
}

func validateOutcomes(reg *particles.Registry, prefix string, outcomes []Outcome, err *ConfigurationError) {
	for i, o := range outcomes {
		for _, p := range o {
			if !reg.Has(p) {
				err.addUnknown(fmt.Sprintf("%s outcome %d: product '%s' does not exist", prefix, i, p))
			}
		}
	}
}
