package metrics

import (
	"math"

	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/sim"
)

// DefaultStabilityThreshold bounds the population counted as stable by
// [Defaults].
const DefaultStabilityThreshold = 1000

// Defaults returns a fresh set of the standard run metrics.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewPeakPopulation(),
		NewMeanTemperature(),
		NewAppearanceInterval(),
		NewInteractionRate(),
		NewSpeciesDiversity(),
		NewMeanEnergy(),
		NewStability(DefaultStabilityThreshold),
	}
}

type PeakPopulation struct {
	peak int64
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(s *dynamo.State) {
	if n := s.Population(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }
func (p *PeakPopulation) Reset()         { p.peak = 0 }

type MeanTemperature struct {
	sum     float64
	samples int
}

func NewMeanTemperature() *MeanTemperature { return &MeanTemperature{} }

func (m *MeanTemperature) Name() string { return "mean_temperature" }

func (m *MeanTemperature) Observe(s *dynamo.State) {
	m.sum += s.Temperature()
	m.samples++
}

func (m *MeanTemperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanTemperature) Reset() {
	m.sum = 0
	m.samples = 0
}

// AppearanceInterval is simulated seconds per created particle at the last
// observed state.
type AppearanceInterval struct {
	time    float64
	created int64
}

func NewAppearanceInterval() *AppearanceInterval { return &AppearanceInterval{} }

func (a *AppearanceInterval) Name() string { return "appearance_interval" }

func (a *AppearanceInterval) Observe(s *dynamo.State) {
	a.time = s.SimulatedTime()
	a.created = s.TotalCreated()
}

func (a *AppearanceInterval) Value() float64 {
	if a.created == 0 {
		return 0
	}
	return a.time / float64(a.created)
}

func (a *AppearanceInterval) Reset() {
	a.time = 0
	a.created = 0
}

// InteractionRate is interaction-driven removals per simulated second.
type InteractionRate struct {
	time   float64
	events int64
}

func NewInteractionRate() *InteractionRate { return &InteractionRate{} }

func (r *InteractionRate) Name() string { return "interaction_rate" }

func (r *InteractionRate) Observe(s *dynamo.State) {
	r.time = s.SimulatedTime()
	r.events = s.TotalDecayedInteraction()
}

func (r *InteractionRate) Value() float64 {
	if r.time == 0 {
		return 0
	}
	return float64(r.events) / r.time
}

func (r *InteractionRate) Reset() {
	r.time = 0
	r.events = 0
}

// SpeciesDiversity is the Shannon index (nats) of the last observed
// population.
type SpeciesDiversity struct {
	value float64
}

func NewSpeciesDiversity() *SpeciesDiversity { return &SpeciesDiversity{} }

func (d *SpeciesDiversity) Name() string { return "species_diversity" }

func (d *SpeciesDiversity) Observe(s *dynamo.State) {
	total := float64(s.Population())
	d.value = 0
	if total == 0 {
		return
	}
	for _, n := range s.Counts() {
		p := float64(n) / total
		d.value -= p * math.Log(p)
	}
}

func (d *SpeciesDiversity) Value() float64 { return d.value }
func (d *SpeciesDiversity) Reset()         { d.value = 0 }
