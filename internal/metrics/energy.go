package metrics

import (
	"math"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

// MeanEnergy averages the per-tick vacuum energy.
type MeanEnergy struct {
	name    string
	samples int
	total   float64
}

func NewMeanEnergy() *MeanEnergy {
	return &MeanEnergy{name: "mean_energy"}
}

func (e *MeanEnergy) Name() string { return e.name }

func (e *MeanEnergy) Observe(s *dynamo.State) {
	e.total += s.CurrentEnergy()
	e.samples++
}

func (e *MeanEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *MeanEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergySwing is the largest relative change of the per-tick energy
// against the first observed non-zero value.
type EnergySwing struct {
	name     string
	initial  float64
	maxSwing float64
}

func NewEnergySwing() *EnergySwing {
	return &EnergySwing{name: "energy_swing"}
}

func (e *EnergySwing) Name() string { return e.name }

func (e *EnergySwing) Observe(s *dynamo.State) {
	energy := s.CurrentEnergy()
	if e.initial == 0 {
		e.initial = energy
		return
	}
	swing := math.Abs(energy-e.initial) / math.Abs(e.initial)
	e.maxSwing = math.Max(e.maxSwing, swing)
}

func (e *EnergySwing) Value() float64 {
	return e.maxSwing
}

func (e *EnergySwing) Reset() {
	e.initial = 0
	e.maxSwing = 0
}
