package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

// CatalogFile is the yaml layout of a custom species and reaction catalog.
// With IncludeStandard the built-in vocabulary and channels come first and
// the file's entries extend them.
type CatalogFile struct {
	IncludeStandard bool               `yaml:"include_standard"`
	Species         []SpeciesEntry     `yaml:"species"`
	Decays          []DecayEntry       `yaml:"decays"`
	Interactions    []InteractionEntry `yaml:"interactions"`
}

// SpeciesEntry describes one species. A zero lifetime means stable.
type SpeciesEntry struct {
	Name     string  `yaml:"name"`
	Mass     float64 `yaml:"mass"`
	Charge   float64 `yaml:"charge"`
	Spin     float64 `yaml:"spin"`
	Lifetime float64 `yaml:"lifetime"`
	Kind     string  `yaml:"kind"`
}

type DecayEntry struct {
	Parent   string     `yaml:"parent"`
	Outcomes [][]string `yaml:"outcomes"`
}

type InteractionEntry struct {
	Reactants []string   `yaml:"reactants"`
	Outcomes  [][]string `yaml:"outcomes"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*particles.Registry, *reactions.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return f.Build()
}

// Build turns the file into a registry and tables validated against it.
func (f *CatalogFile) Build() (*particles.Registry, *reactions.Tables, error) {
	var species []particles.Species
	tables := reactions.NewTables()
	if f.IncludeStandard {
		species = particles.Standard().All()
		tables = reactions.Standard()
	}

	for _, e := range f.Species {
		kind := particles.Fermion
		if e.Kind != "" {
			k, err := particles.ParseKind(e.Kind)
			if err != nil {
				return nil, nil, err
			}
			kind = k
		}
		lifetime := e.Lifetime
		if lifetime == 0 {
			lifetime = particles.StableLifetime
		}
		species = append(species, particles.Species{
			Name:     e.Name,
			Mass:     e.Mass,
			Charge:   e.Charge,
			Spin:     e.Spin,
			Lifetime: lifetime,
			Kind:     kind,
		})
	}

	reg, err := particles.NewRegistry(species...)
	if err != nil {
		return nil, nil, err
	}

	for _, d := range f.Decays {
		if err := tables.AddDecay(d.Parent, outcomes(d.Outcomes)...); err != nil {
			return nil, nil, err
		}
	}
	for _, in := range f.Interactions {
		if err := tables.AddInteraction(in.Reactants, outcomes(in.Outcomes)...); err != nil {
			return nil, nil, err
		}
	}

	if err := reactions.Validate(reg, tables); err != nil {
		return nil, nil, err
	}
	return reg, tables, nil
}

func outcomes(raw [][]string) []reactions.Outcome {
	out := make([]reactions.Outcome, len(raw))
	for i, o := range raw {
		out[i] = reactions.Outcome(o)
	}
	return out
}

// Catalog resolves the species and tables a config runs with: the file at
// cfg.Catalog, or the standard catalog when none is set.
func Catalog(cfg *Config) (*particles.Registry, *reactions.Tables, error) {
	if cfg.Catalog == "" {
		return particles.Standard(), reactions.Standard(), nil
	}
	return LoadCatalog(cfg.Catalog)
}
