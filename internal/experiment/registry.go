package experiment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/vacuumsim/internal/metrics"
	"github.com/san-kum/vacuumsim/internal/sim"
)

// Registry maps metric names to constructors so drivers can select metrics
// by name.
type Registry struct {
	metrics map[string]func() sim.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]func() sim.Metric),
	}

	r.metrics["peak_population"] = func() sim.Metric { return metrics.NewPeakPopulation() }
	r.metrics["mean_temperature"] = func() sim.Metric { return metrics.NewMeanTemperature() }
	r.metrics["appearance_interval"] = func() sim.Metric { return metrics.NewAppearanceInterval() }
	r.metrics["interaction_rate"] = func() sim.Metric { return metrics.NewInteractionRate() }
	r.metrics["species_diversity"] = func() sim.Metric { return metrics.NewSpeciesDiversity() }
	r.metrics["mean_energy"] = func() sim.Metric { return metrics.NewMeanEnergy() }
	r.metrics["energy_swing"] = func() sim.Metric { return metrics.NewEnergySwing() }
	r.metrics["stability"] = func() sim.Metric { return metrics.NewStability(metrics.DefaultStabilityThreshold) }

	return r
}

func (r *Registry) GetMetric(name string) (sim.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

// Metrics resolves a comma separated list; an empty list means
// metrics.Defaults.
func (r *Registry) Metrics(list string) ([]sim.Metric, error) {
	if strings.TrimSpace(list) == "" {
		return metrics.Defaults(), nil
	}
	var out []sim.Metric
	for _, name := range strings.Split(list, ",") {
		m, err := r.GetMetric(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
