package sim

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

// EngineFactory builds an engine drawing from its own seeded source.
type EngineFactory func(seed int64) (*dynamo.Engine, error)

// Ensemble runs independent engines concurrently, one per seed. Engines
// share nothing but the immutable initial state.
type Ensemble struct {
	factory   EngineFactory
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

// NewEnsemble prepares numRuns runs seeded seedStart, seedStart+1, ...
// metrics is called once per run so runs never share metric state; it may
// be nil.
func NewEnsemble(factory EngineFactory, metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

// Run returns the results in seed order. initial builds the starting state
// from each run's engine.
func (e *Ensemble) Run(ctx context.Context, initial func(*dynamo.Engine) (*dynamo.State, error), cfg RunConfig) ([]*Result, error) {
	if e.numRuns <= 0 {
		return nil, fmt.Errorf("%w: ensemble needs at least one run", ErrInvalidRun)
	}

	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			eng, err := e.factory(seed)
			if err != nil {
				errs[idx] = fmt.Errorf("seed %d: %w", seed, err)
				return
			}
			s0, err := initial(eng)
			if err != nil {
				errs[idx] = fmt.Errorf("seed %d: %w", seed, err)
				return
			}

			sim := New(eng)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					sim.AddMetric(m)
				}
			}

			res, err := sim.Run(ctx, s0, cfg)
			if res != nil {
				res.Seed = seed
			}
			results[idx], errs[idx] = res, err
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
