package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

const scenarioYAML = `
name: demo
description: quiet muons, then a hot soup
steps:
  - name: muons
    preset: quiet
    ticks: 50
    seed_counts: {Muon: 10}
  - name: soup
    preset: hot
    ticks: 40
    seed: 3
    fluctuations: false
    interaction_probability: 1
    metrics: peak_population
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "demo" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	results, err := RunScenario(context.Background(), sc, config.DefaultConfig(), particles.Standard(), reactions.Standard())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	muons := results[0]
	if muons.Result.StepsTaken != 50 || muons.Config.Populations["Muon"] != 10 || muons.Config.Fluctuations {
		t.Errorf("muon step ran with %+v", muons.Config)
	}

	soup := results[1]
	if soup.Config.Seed != 3 || soup.Config.InteractionProbability != 1 {
		t.Errorf("soup overrides not applied: %+v", soup.Config)
	}
	if _, ok := soup.Result.Metrics["peak_population"]; !ok || len(soup.Result.Metrics) != 1 {
		t.Errorf("soup metrics = %v", soup.Result.Metrics)
	}
	if soup.Result.Final.TotalCreated() != 0 {
		t.Error("fluctuations were disabled but particles were created")
	}
}

func TestLoadScenarioRejectsEmpty(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, "name: nothing\n"))
	if !errors.Is(err, ErrEmptyScenario) {
		t.Errorf("expected ErrEmptyScenario, got %v", err)
	}
}

func TestRunScenarioUnknownPreset(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Preset: "lukewarm", Ticks: 1}}}
	results, err := RunScenario(context.Background(), sc, config.DefaultConfig(), particles.Standard(), reactions.Standard())
	if !errors.Is(err, config.ErrUnknownPreset) || len(results) != 0 {
		t.Errorf("expected failure on the first step, got %v / %d results", err, len(results))
	}
}

func TestRunSweep(t *testing.T) {
	base := config.GetPreset("hot")
	base.Ticks = 30
	base.Fluctuations = false

	results, err := RunSweep(context.Background(), &ProbabilitySweep{Min: 0, Max: 1, NumSteps: 3}, base, particles.Standard(), reactions.Standard())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 points, got %d", len(results))
	}
	if results[0].Probability != 0 || results[2].Probability != 1 {
		t.Errorf("unexpected probabilities %v, %v", results[0].Probability, results[2].Probability)
	}
	if results[0].DecayedInteraction != 0 {
		t.Errorf("probability 0 produced %d interactions", results[0].DecayedInteraction)
	}
	if results[2].DecayedInteraction == 0 {
		t.Error("probability 1 over a hot soup produced no interactions")
	}
	if base.InteractionProbability != 0.25 {
		t.Error("sweep mutated the base config")
	}
}

func TestRunSweepRejectsBadRange(t *testing.T) {
	base := config.DefaultConfig()
	for _, sw := range []ProbabilitySweep{{Min: 0, Max: 1, NumSteps: 0}, {Min: -0.1, Max: 1, NumSteps: 2}, {Min: 0.8, Max: 0.2, NumSteps: 2}} {
		if _, err := RunSweep(context.Background(), &sw, base, particles.Standard(), reactions.Standard()); err == nil {
			t.Errorf("sweep %+v should be rejected", sw)
		}
	}
}
