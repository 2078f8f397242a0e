package dynamo

import "sort"

// State is one population snapshot. Fields are read through accessors; only
// the engine writes them, and only on a fresh clone.
type State struct {
	counts map[string]int64
	mode   Mode

	volume        float64
	temperature   float64
	entropy       float64
	totalEnergy   float64
	currentEnergy float64
	simTime       float64
	ticks         int64

	created            int64
	decayedNatural     int64
	decayedInteraction int64
}

// NewState returns the canonical initial state for a mode.
func NewState(mode Mode, d ModeDefaults) *State {
	return &State{
		counts:      make(map[string]int64),
		mode:        mode,
		volume:      d.Volume,
		temperature: d.Temperature,
	}
}

func (s *State) Clone() *State {
	c := *s
	c.counts = make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		if v != 0 {
			c.counts[k] = v
		}
	}
	return &c
}

// Count returns the population of a species; absent species count 0.
func (s *State) Count(name string) int64 { return s.counts[name] }

// Counts returns a copy of the non-zero populations.
func (s *State) Counts() map[string]int64 {
	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		if v != 0 {
			out[k] = v
		}
	}
	return out
}

// Present returns the names of species with a non-zero count, sorted.
func (s *State) Present() []string {
	names := make([]string, 0, len(s.counts))
	for k, v := range s.counts {
		if v > 0 {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func (s *State) Population() int64 {
	var n int64
	for _, v := range s.counts {
		n += v
	}
	return n
}

// ActiveSpecies returns how many species have a non-zero count.
func (s *State) ActiveSpecies() int {
	n := 0
	for _, v := range s.counts {
		if v > 0 {
			n++
		}
	}
	return n
}

func (s *State) Mode() Mode                     { return s.mode }
func (s *State) Volume() float64                { return s.volume }
func (s *State) Temperature() float64           { return s.temperature }
func (s *State) Entropy() float64               { return s.entropy }
func (s *State) TotalEnergy() float64           { return s.totalEnergy }
func (s *State) CurrentEnergy() float64         { return s.currentEnergy }
func (s *State) SimulatedTime() float64         { return s.simTime }
func (s *State) Ticks() int64                   { return s.ticks }
func (s *State) TotalCreated() int64            { return s.created }
func (s *State) TotalDecayedNatural() int64     { return s.decayedNatural }
func (s *State) TotalDecayedInteraction() int64 { return s.decayedInteraction }

func (s *State) increment(name string) { s.counts[name]++ }

// decrement removes n of a species. Callers check availability first.
func (s *State) decrement(name string, n int64) {
	c := s.counts[name]
	if c < n {
		panic(InvariantViolation{Species: name, Count: c, Delta: n})
	}
	if c == n {
		delete(s.counts, name)
		return
	}
	s.counts[name] = c - n
}

// has reports whether every named species is present.
func (s *State) has(species []string) bool {
	for _, name := range species {
		if s.counts[name] <= 0 {
			return false
		}
	}
	return true
}
