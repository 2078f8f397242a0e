package particles

import "fmt"

// Registry is an ordered, read-only set of species.
type Registry struct {
	species []Species
	index   map[string]int
}

// NewRegistry validates the species and keeps them in the given order.
func NewRegistry(species ...Species) (*Registry, error) {
	r := &Registry{
		species: make([]Species, 0, len(species)),
		index:   make(map[string]int, len(species)),
	}
	for _, s := range species {
		if err := s.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate species %q", ErrInvalidSpecies, s.Name)
		}
		r.index[s.Name] = len(r.species)
		r.species = append(r.species, s)
	}
	return r, nil
}

// MustRegistry is NewRegistry for static tables; it panics on error.
func MustRegistry(species ...Species) *Registry {
	r, err := NewRegistry(species...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Len() int { return len(r.species) }

// At returns the i-th species in registration order.
func (r *Registry) At(i int) Species { return r.species[i] }

func (r *Registry) Lookup(name string) (Species, bool) {
	i, ok := r.index[name]
	if !ok {
		return Species{}, false
	}
	return r.species[i], true
}

func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.species))
	for i, s := range r.species {
		names[i] = s.Name
	}
	return names
}

func (r *Registry) All() []Species {
	out := make([]Species, len(r.species))
	copy(out, r.species)
	return out
}
