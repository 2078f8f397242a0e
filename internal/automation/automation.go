package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/experiment"
	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
	"github.com/san-kum/vacuumsim/internal/sim"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario defines a scripted sequence of independent runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Unset fields inherit from the preset named
// by the step, or from the base config when no preset is given.
type ScenarioStep struct {
	Name                   string           `yaml:"name"`
	Preset                 string           `yaml:"preset"`
	Mode                   string           `yaml:"mode"`
	Ticks                  int              `yaml:"ticks"`
	Dt                     float64          `yaml:"dt"`
	Multiplier             int64            `yaml:"multiplier"`
	Seed                   *int64           `yaml:"seed"`
	SeedCounts             map[string]int64 `yaml:"seed_counts"`
	InteractionProbability *float64         `yaml:"interaction_probability"`
	Fluctuations           *bool            `yaml:"fluctuations"`
	Metrics                string           `yaml:"metrics"`
}

// StepResult pairs a step with the config it ran under.
type StepResult struct {
	Name   string
	Config *config.Config
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyScenario, path)
	}

	return &scenario, nil
}

// Resolve builds the config of a step on top of base.
func (st ScenarioStep) Resolve(base *config.Config) (*config.Config, error) {
	cfg := base.Clone()
	if st.Preset != "" {
		p, err := config.LookupPreset(st.Preset)
		if err != nil {
			return nil, err
		}
		p.Catalog, p.DataDir, p.LogLevel = base.Catalog, base.DataDir, base.LogLevel
		cfg = p
	}

	if st.Mode != "" {
		cfg.Mode = st.Mode
	}
	if st.Ticks != 0 {
		cfg.Ticks = st.Ticks
	}
	if st.Dt != 0 {
		cfg.Dt = st.Dt
	}
	if st.Multiplier != 0 {
		cfg.Multiplier = st.Multiplier
	}
	if st.Seed != nil {
		cfg.Seed = *st.Seed
	}
	if st.SeedCounts != nil {
		cfg.Populations = st.SeedCounts
	}
	if st.InteractionProbability != nil {
		cfg.InteractionProbability = *st.InteractionProbability
	}
	if st.Fluctuations != nil {
		cfg.Fluctuations = *st.Fluctuations
	}
	return cfg, nil
}

// RunScenario executes all steps in a scenario, each on a fresh engine.
// Results of completed steps are returned alongside an error.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, reg *particles.Registry, tables *reactions.Tables) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	metricReg := experiment.NewRegistry()

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		slog.Info("[SCENARIO] running step", "scenario", scenario.Name, "step", name, "n", i+1, "of", len(scenario.Steps))

		cfg, err := step.Resolve(base)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		ms, err := metricReg.Metrics(step.Metrics)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(reg, tables, ms); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Name: name, Config: cfg, Result: result})
	}

	return results, nil
}

// ProbabilitySweep runs the same seeded configuration across a range of
// interaction probabilities.
type ProbabilitySweep struct {
	Min      float64
	Max      float64
	NumSteps int
}

// SweepResult holds the final totals of one sweep point
type SweepResult struct {
	Probability        float64
	FinalPopulation    int64
	PeakPopulation     int64
	Created            int64
	DecayedNatural     int64
	DecayedInteraction int64
}

// RunSweep executes a probability sweep
func RunSweep(ctx context.Context, sweep *ProbabilitySweep, base *config.Config, reg *particles.Registry, tables *reactions.Tables) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if sweep.Min < 0 || sweep.Max > 1 || sweep.Min > sweep.Max {
		return nil, fmt.Errorf("sweep range [%g, %g] must lie within [0, 1]", sweep.Min, sweep.Max)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		p := sweep.Min + float64(i)*paramStep
		cfg := base.Clone()
		cfg.InteractionProbability = p

		exp := experiment.New(cfg)
		peak := experiment.NewRegistry()
		m, _ := peak.GetMetric("peak_population")
		if err := exp.Setup(reg, tables, []sim.Metric{m}); err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		final := result.Final
		results = append(results, SweepResult{
			Probability:        p,
			FinalPopulation:    final.Population(),
			PeakPopulation:     int64(result.Metrics["peak_population"]),
			Created:            final.TotalCreated(),
			DecayedNatural:     final.TotalDecayedNatural(),
			DecayedInteraction: final.TotalDecayedInteraction(),
		})

		slog.Debug("[SWEEP] point done", "n", i+1, "of", sweep.NumSteps, "probability", p)
	}

	return results, nil
}
