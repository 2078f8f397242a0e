package dynamo

import (
	"fmt"
	"math"

	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

// Engine applies ticks to population states under static reaction tables.
type Engine struct {
	reg    *particles.Registry
	tables *reactions.Tables
	cfg    Config
	src    Source

	unstable []particles.Species
	zpe      []float64
	// distinct reactants of each interaction, in table order
	reactants [][]string
}

// New validates the tables against the registry and the config. A table
// naming an unregistered species returns a *reactions.ConfigurationError.
func New(reg *particles.Registry, tables *reactions.Tables, cfg Config, src Source) (*Engine, error) {
	if reg == nil || reg.Len() == 0 {
		return nil, fmt.Errorf("%w: empty species registry", ErrInvalidConfig)
	}
	if tables == nil {
		tables = reactions.NewTables()
	}
	if err := reactions.Validate(reg, tables); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfig)
	}

	e := &Engine{
		reg:    reg,
		tables: tables,
		cfg:    cfg,
		src:    src,
		zpe:    make([]float64, reg.Len()),
	}
	for i := 0; i < reg.Len(); i++ {
		sp := reg.At(i)
		e.zpe[i] = ZeroPointEnergy(sp.Mass)
		if !sp.Stable() {
			e.unstable = append(e.unstable, sp)
		}
	}
	for _, in := range tables.Interactions() {
		e.reactants = append(e.reactants, in.Distinct())
	}
	return e, nil
}

func (e *Engine) Registry() *particles.Registry { return e.reg }
func (e *Engine) Tables() *reactions.Tables     { return e.tables }
func (e *Engine) Config() Config                { return e.cfg }

// Reset returns the canonical initial state of a mode.
func (e *Engine) Reset(mode Mode) *State {
	return NewState(mode, e.cfg.Defaults.For(mode))
}

// ToggleMode switches between default and expanding mode, which resets the
// whole state.
func (e *Engine) ToggleMode(s *State) *State {
	return e.Reset(s.Mode().Toggle())
}

// ClampMultiplier bounds a speed multiplier to the configured range.
func (e *Engine) ClampMultiplier(m int64) int64 {
	if m < e.cfg.MinMultiplier {
		return e.cfg.MinMultiplier
	}
	if m > e.cfg.MaxMultiplier {
		return e.cfg.MaxMultiplier
	}
	return m
}

// ResizeVolume applies a manual volume change between ticks. Shrinking is
// refused when it would take the volume below 1 m^3.
func (e *Engine) ResizeVolume(s *State, delta float64) *State {
	next := s.Clone()
	v := next.volume + delta
	if delta < 0 && v < 1 {
		return next
	}
	if v > 0 {
		next.volume = v
	}
	return next
}

// Populate returns a copy of s with the given species counts set.
func (e *Engine) Populate(s *State, counts map[string]int64) (*State, error) {
	next := s.Clone()
	for name, n := range counts {
		if !e.reg.Has(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: %s=%d", ErrNegativeCount, name, n)
		}
		if n == 0 {
			delete(next.counts, name)
			continue
		}
		next.counts[name] = n
	}
	return next, nil
}

// Step applies one tick of length dtBase*multiplier to prev and returns the
// resulting state. prev is not modified.
func (e *Engine) Step(prev *State, dtBase float64, multiplier int64) (*State, error) {
	if prev == nil {
		return nil, ErrNilState
	}
	if multiplier < e.cfg.MinMultiplier || multiplier > e.cfg.MaxMultiplier {
		return nil, fmt.Errorf("%w: multiplier %d outside [%d, %d]",
			ErrInvalidTick, multiplier, e.cfg.MinMultiplier, e.cfg.MaxMultiplier)
	}
	dt := dtBase * float64(multiplier)
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil, fmt.Errorf("%w: dt must be positive and finite, got %g", ErrInvalidTick, dt)
	}

	next := prev.Clone()
	if e.cfg.Fluctuations {
		e.fluctuate(next)
	}
	e.decay(next, dt)
	e.interact(next)
	e.derive(next, dt)
	return next, nil
}

// fluctuate creates or annihilates one particle of a uniformly chosen
// species. Annihilating an absent species is a no-op.
func (e *Engine) fluctuate(s *State) {
	sp := e.reg.At(e.src.Intn(e.reg.Len()))
	if e.src.Intn(2) == 0 {
		s.increment(sp.Name)
		s.created++
		return
	}
	if s.counts[sp.Name] > 0 {
		s.decrement(sp.Name, 1)
		s.decayedInteraction++
	}
}

// decay samples each present unstable species once with probability
// dt/lifetime. Eligibility is fixed at the start of the phase.
func (e *Engine) decay(s *State, dt float64) {
	eligible := make([]particles.Species, 0, len(e.unstable))
	for _, sp := range e.unstable {
		if s.counts[sp.Name] > 0 {
			eligible = append(eligible, sp)
		}
	}

	for _, sp := range eligible {
		if e.src.Float64() >= dt/sp.Lifetime {
			continue
		}
		if s.counts[sp.Name] <= 0 {
			continue
		}
		s.decrement(sp.Name, 1)
		s.decayedNatural++

		d, ok := e.tables.DecayOf(sp.Name)
		if !ok {
			continue
		}
		for _, p := range d.Outcomes[e.src.Intn(len(d.Outcomes))] {
			s.increment(p)
		}
	}
}

// interact tries every channel in table order. A channel is available when
// each species it names is present; on success every listed reactant is
// removed once while its count is still positive, so a repeated species
// never overdraws. Availability is rechecked against the live counts.
func (e *Engine) interact(s *State) {
	p := e.cfg.InteractionProbability
	for i, in := range e.tables.Interactions() {
		if !s.has(e.reactants[i]) {
			continue
		}
		if e.src.Float64() >= p {
			continue
		}
		for _, r := range in.Reactants {
			if s.counts[r] > 0 {
				s.decrement(r, 1)
			}
		}
		for _, prod := range in.Outcomes[e.src.Intn(len(in.Outcomes))] {
			s.increment(prod)
		}
		s.decayedInteraction++
	}
}

// derive updates the aggregates once per tick. Temperature follows the
// energy of this tick and holds its value when nothing is present.
func (e *Engine) derive(s *State, dt float64) {
	energy := 0.0
	active := 0
	for i := 0; i < e.reg.Len(); i++ {
		c := s.counts[e.reg.At(i).Name]
		if c <= 0 {
			continue
		}
		active++
		energy += e.zpe[i] * float64(c)
	}

	s.currentEnergy = energy
	s.totalEnergy += energy
	if active > 0 {
		s.temperature = energy / (float64(active) * particles.KB * s.volume)
	}
	s.entropy += particles.KB * float64(active) * dt

	if s.mode == ModeExpanding {
		if v := e.cfg.Expansion.Grow(s.volume, dt); v > s.volume {
			s.volume = v
		}
	}
	s.simTime += dt
	s.ticks++
}
