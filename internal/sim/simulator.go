package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/vacuumsim/internal/dynamo"
)

// Simulator drives an engine over many ticks, feeding metrics and observers.
type Simulator struct {
	engine    *dynamo.Engine
	metrics   []Metric
	observers []Observer
}

func New(engine *dynamo.Engine) *Simulator {
	return &Simulator{
		engine:    engine,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Engine() *dynamo.Engine { return s.engine }

// Run applies cfg.Ticks ticks to s0. Cancellation is checked between ticks,
// so the returned partial result always ends on a complete snapshot.
func (s *Simulator) Run(ctx context.Context, s0 *dynamo.State, cfg RunConfig) (*Result, error) {
	cfg, err := s.resolve(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Ticks <= 0 {
		return nil, fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidRun, cfg.Ticks)
	}
	if s0 == nil {
		return nil, dynamo.ErrNilState
	}

	result := &Result{
		Samples: make([]Sample, 0, cfg.Ticks/cfg.SampleEvery+2),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	st := s0
	result.Samples = append(result.Samples, NewSample(st))

	finish := func() {
		if last := result.Samples[len(result.Samples)-1]; last.Tick != st.Ticks() {
			result.Samples = append(result.Samples, NewSample(st))
		}
		result.Final = st
		for _, m := range s.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			finish()
			return result, ctx.Err()
		default:
		}

		next, err := s.engine.Step(st, cfg.DtBase, cfg.Multiplier)
		if err != nil {
			finish()
			return result, &dynamo.TickError{Tick: st.Ticks(), Time: st.SimulatedTime(), Wrapped: err}
		}
		st = next
		result.StepsTaken++

		for _, m := range s.metrics {
			m.Observe(st)
		}
		for _, obs := range s.observers {
			obs.OnStep(st)
		}

		if result.StepsTaken%cfg.SampleEvery == 0 {
			result.Samples = append(result.Samples, NewSample(st))
		}
	}

	finish()
	return result, nil
}

func (s *Simulator) resolve(cfg RunConfig) (RunConfig, error) {
	if cfg.DtBase == 0 {
		cfg.DtBase = s.engine.Config().DtBase
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = 1
	}
	if cfg.SampleEvery == 0 {
		cfg.SampleEvery = 1
	}
	if cfg.DtBase < 0 {
		return cfg, fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidRun, cfg.DtBase)
	}
	if cfg.Ticks < 0 {
		return cfg, fmt.Errorf("%w: ticks must not be negative, got %d", ErrInvalidRun, cfg.Ticks)
	}
	if cfg.SampleEvery < 0 {
		return cfg, fmt.Errorf("%w: sample interval must be positive, got %d", ErrInvalidRun, cfg.SampleEvery)
	}
	return cfg, nil
}

// RunWithCallback steps until the callback returns false, the context is
// cancelled or cfg.Ticks ticks have run. Zero ticks runs without a bound.
// It returns the last state reached.
func (s *Simulator) RunWithCallback(ctx context.Context, s0 *dynamo.State, cfg RunConfig, callback func(*dynamo.State) bool) (*dynamo.State, error) {
	cfg, err := s.resolve(cfg)
	if err != nil {
		return nil, err
	}
	if s0 == nil {
		return nil, dynamo.ErrNilState
	}

	st := s0
	for i := 0; cfg.Ticks == 0 || i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}

		next, err := s.engine.Step(st, cfg.DtBase, cfg.Multiplier)
		if err != nil {
			return st, &dynamo.TickError{Tick: st.Ticks(), Time: st.SimulatedTime(), Wrapped: err}
		}
		st = next

		if !callback(st) {
			return st, nil
		}
	}

	return st, nil
}
