package particles

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidSpecies is returned when a species definition is malformed.
var ErrInvalidSpecies = errors.New("particles: invalid species")

type Kind int

const (
	Fermion Kind = iota
	Boson
	Composite
)

func (k Kind) String() string {
	switch k {
	case Fermion:
		return "fermion"
	case Boson:
		return "boson"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// ParseKind accepts the lower-case names produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fermion":
		return Fermion, nil
	case "boson":
		return Boson, nil
	case "composite":
		return Composite, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidSpecies, s)
}

// Species is an immutable particle type. Charge, Spin and Kind are carried
// for display and never drive engine branching.
type Species struct {
	Name     string
	Mass     float64
	Charge   float64
	Spin     float64
	Lifetime float64
	Kind     Kind
}

func (s Species) Stable() bool { return s.Lifetime >= StableLifetime }

func (s Species) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSpecies)
	}
	// \x1f separates names in interaction keys.
	if strings.ContainsRune(s.Name, '\x1f') {
		return fmt.Errorf("%w: %q contains a unit separator", ErrInvalidSpecies, s.Name)
	}
	if math.IsNaN(s.Mass) || math.IsInf(s.Mass, 0) {
		return fmt.Errorf("%w: %s has non-finite mass %g", ErrInvalidSpecies, s.Name, s.Mass)
	}
	if s.Mass < 0 {
		return fmt.Errorf("%w: %s has negative mass %g", ErrInvalidSpecies, s.Name, s.Mass)
	}
	if math.IsNaN(s.Lifetime) || s.Lifetime <= 0 {
		return fmt.Errorf("%w: %s has non-positive lifetime %g", ErrInvalidSpecies, s.Name, s.Lifetime)
	}
	return nil
}
