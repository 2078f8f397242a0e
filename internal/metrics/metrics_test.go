package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/sim"
)

func fixture(t *testing.T) (*dynamo.Engine, *dynamo.State) {
	t.Helper()
	reg := particles.MustRegistry(
		particles.Species{Name: "A", Mass: 1, Lifetime: particles.StableLifetime},
		particles.Species{Name: "B", Mass: 4, Lifetime: particles.StableLifetime},
	)
	cfg := dynamo.DefaultConfig()
	cfg.Fluctuations = false
	eng, err := dynamo.New(reg, nil, cfg, dynamo.NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	s, err := eng.Populate(eng.Reset(dynamo.ModeDefault), map[string]int64{"A": 2, "B": 2})
	if err != nil {
		t.Fatal(err)
	}
	return eng, s
}

func TestSpeciesDiversity(t *testing.T) {
	_, s := fixture(t)
	d := NewSpeciesDiversity()
	d.Observe(s)
	if got := d.Value(); math.Abs(got-math.Ln2) > 1e-12 {
		t.Errorf("diversity of an even split = %g, want ln 2", got)
	}
	d.Reset()
	if d.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestPeakPopulation(t *testing.T) {
	eng, s := fixture(t)
	p := NewPeakPopulation()
	p.Observe(s)
	smaller, _ := eng.Populate(s, map[string]int64{"A": 0})
	p.Observe(smaller)
	if p.Value() != 4 {
		t.Errorf("peak = %g, want 4", p.Value())
	}
}

func TestMeanEnergyAndTemperature(t *testing.T) {
	eng, s := fixture(t)
	next, err := eng.Step(s, 0.1, 1)
	if err != nil {
		t.Fatal(err)
	}

	e := NewMeanEnergy()
	e.Observe(next)
	e.Observe(next)
	if e.Value() != next.CurrentEnergy() {
		t.Errorf("mean energy = %g, want %g", e.Value(), next.CurrentEnergy())
	}

	m := NewMeanTemperature()
	m.Observe(s)
	m.Observe(next)
	want := (s.Temperature() + next.Temperature()) / 2
	if math.Abs(m.Value()-want) > 1e-9*math.Abs(want) {
		t.Errorf("mean temperature = %g, want %g", m.Value(), want)
	}

	swing := NewEnergySwing()
	swing.Observe(next)
	swing.Observe(next)
	if swing.Value() != 0 {
		t.Errorf("constant energy should not swing, got %g", swing.Value())
	}
}

func TestStability(t *testing.T) {
	_, s := fixture(t)

	tests := []struct {
		threshold int64
		want      float64
	}{
		{10, 1},
		{4, 1},
		{3, 0},
	}
	for _, tt := range tests {
		m := NewStability(tt.threshold)
		m.Observe(s)
		if m.Value() != tt.want {
			t.Errorf("threshold %d: stability = %g, want %g", tt.threshold, m.Value(), tt.want)
		}
	}
	if NewStability(1).Value() != 1 {
		t.Error("no samples should report stable")
	}
}

func TestDefaultsThroughSimulator(t *testing.T) {
	eng, err := dynamo.New(particles.Standard(), nil, dynamo.DefaultConfig(), dynamo.NewRand(42))
	if err != nil {
		t.Fatal(err)
	}
	s := sim.New(eng)
	for _, m := range Defaults() {
		s.AddMetric(m)
	}

	result, err := s.Run(t.Context(), eng.Reset(dynamo.ModeDefault), sim.RunConfig{Ticks: 500})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"peak_population", "mean_temperature", "appearance_interval", "interaction_rate", "species_diversity", "mean_energy", "stability"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("metric %s missing", name)
		}
	}
	if result.Metrics["appearance_interval"] <= 0 {
		t.Errorf("500 ticks with fluctuations should create particles, interval %g", result.Metrics["appearance_interval"])
	}
	if result.Metrics["interaction_rate"] < 0 {
		t.Error("negative interaction rate")
	}
}
