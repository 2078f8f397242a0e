package reactions

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownSpecies marks a table entry that names an unregistered species.
	ErrUnknownSpecies = errors.New("reactions: unknown species")

	// ErrDuplicateKey indicates a decay parent or reactant set listed twice.
	ErrDuplicateKey = errors.New("reactions: duplicate channel")

	// ErrEmptyOutcome indicates a channel with no outcomes or an empty tuple.
	ErrEmptyOutcome = errors.New("reactions: empty outcome")
)

// ConfigurationError collects every problem found while validating tables
// against a registry.
type ConfigurationError struct {
	Issues  []string
	unknown bool
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid reaction tables: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return "invalid reaction tables: " + e.Issues[0]
	}
	return "invalid reaction tables: " + strings.Join(e.Issues, "; ")
}

// Is reports ErrUnknownSpecies when any issue was an unknown species.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrUnknownSpecies && e.unknown
}

func (e *ConfigurationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ConfigurationError) addUnknown(issue string) {
	e.unknown = true
	e.Add(issue)
}

func (e *ConfigurationError) HasIssues() bool {
	return len(e.Issues) > 0
}
