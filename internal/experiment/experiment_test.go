package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

func TestExperimentRun(t *testing.T) {
	cfg := config.GetPreset("quiet")
	cfg.Ticks = 100

	exp := New(cfg)
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected an error before setup")
	}

	reg := NewRegistry()
	ms, err := reg.Metrics("")
	if err != nil {
		t.Fatal(err)
	}
	if err := exp.Setup(particles.Standard(), reactions.Standard(), ms); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if exp.Initial().Count("Muon") != 100 {
		t.Errorf("initial populations not applied: %v", exp.Initial().Counts())
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.StepsTaken != 100 || result.Seed != cfg.Seed {
		t.Errorf("steps=%d seed=%d", result.StepsTaken, result.Seed)
	}
	if _, ok := result.Metrics["peak_population"]; !ok {
		t.Error("default metrics not attached")
	}
}

func TestExperimentSetupRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Populations = map[string]int64{"Axion": 3}

	err := New(cfg).Setup(particles.Standard(), reactions.Standard(), nil)
	if !errors.Is(err, dynamo.ErrUnknownSpecies) {
		t.Errorf("expected dynamo.ErrUnknownSpecies, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Dt = -1
	if err := New(cfg).Setup(particles.Standard(), reactions.Standard(), nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected config.ErrInvalidConfig, got %v", err)
	}
}

func TestParams(t *testing.T) {
	cfg := config.GetPreset("hubble")
	p := Params("demo", cfg)
	if p.Name != "demo" || p.Mode != "expanding" || p.Expansion != "hubble/0.05" {
		t.Errorf("unexpected params %+v", p)
	}
}

func TestRegistryMetrics(t *testing.T) {
	reg := NewRegistry()

	ms, err := reg.Metrics("peak_population, stability")
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2 || ms[0].Name() != "peak_population" || ms[1].Name() != "stability" {
		t.Errorf("unexpected metrics %v", ms)
	}
	if _, err := reg.Metrics("peak_population,vibes"); err == nil {
		t.Error("expected an error for an unknown metric")
	}
	for _, name := range reg.ListMetrics() {
		m, err := reg.GetMetric(name)
		if err != nil || m.Name() != name {
			t.Errorf("metric %s registered under the wrong name (%v)", name, err)
		}
	}
}
