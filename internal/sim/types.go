package sim

import (
	"errors"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

// ErrInvalidRun indicates a run configuration that cannot be executed.
var ErrInvalidRun = errors.New("sim: invalid run config")

type Metric interface {
	Name() string
	Observe(s *dynamo.State)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(s *dynamo.State)
}

// RunConfig describes a headless run. A zero DtBase uses the engine's
// configured base tick and a zero Multiplier means 1. SampleEvery thins the
// recorded series; 0 records every tick.
type RunConfig struct {
	Ticks       int
	DtBase      float64
	Multiplier  int64
	SampleEvery int
}

// Sample flattens the aggregates of one snapshot.
type Sample struct {
	Tick               int64   `json:"tick"`
	Time               float64 `json:"time"`
	Volume             float64 `json:"volume"`
	Temperature        float64 `json:"temperature"`
	Entropy            float64 `json:"entropy"`
	TotalEnergy        float64 `json:"total_energy"`
	CurrentEnergy      float64 `json:"current_energy"`
	RadiationDensity   float64 `json:"radiation_density"`
	Population         int64   `json:"population"`
	ActiveSpecies      int     `json:"active_species"`
	Created            int64   `json:"created"`
	DecayedNatural     int64   `json:"decayed_natural"`
	DecayedInteraction int64   `json:"decayed_interaction"`
}

func NewSample(s *dynamo.State) Sample {
	return Sample{
		Tick:               s.Ticks(),
		Time:               s.SimulatedTime(),
		Volume:             s.Volume(),
		Temperature:        s.Temperature(),
		Entropy:            s.Entropy(),
		TotalEnergy:        s.TotalEnergy(),
		CurrentEnergy:      s.CurrentEnergy(),
		RadiationDensity:   dynamo.RadiationDensity(s),
		Population:         s.Population(),
		ActiveSpecies:      s.ActiveSpecies(),
		Created:            s.TotalCreated(),
		DecayedNatural:     s.TotalDecayedNatural(),
		DecayedInteraction: s.TotalDecayedInteraction(),
	}
}

type Result struct {
	Seed       int64
	Samples    []Sample
	Final      *dynamo.State
	Metrics    map[string]float64
	StepsTaken int
}

// Series extracts one column of the samples by name: population,
// temperature, entropy, volume, energy or radiation.
func (r *Result) Series(name string) ([]float64, bool) {
	var get func(Sample) float64
	switch name {
	case "population":
		get = func(s Sample) float64 { return float64(s.Population) }
	case "temperature":
		get = func(s Sample) float64 { return s.Temperature }
	case "entropy":
		get = func(s Sample) float64 { return s.Entropy }
	case "volume":
		get = func(s Sample) float64 { return s.Volume }
	case "energy":
		get = func(s Sample) float64 { return s.CurrentEnergy }
	case "radiation":
		get = func(s Sample) float64 { return s.RadiationDensity }
	default:
		return nil, false
	}
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = get(s)
	}
	return out, true
}
