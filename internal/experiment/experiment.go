package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
	"github.com/san-kum/vacuumsim/internal/sim"
	"github.com/san-kum/vacuumsim/internal/storage"
)

// Experiment binds a resolved config to an engine seeded from it.
type Experiment struct {
	cfg       *config.Config
	reg       *particles.Registry
	tables    *reactions.Tables
	simulator *sim.Simulator
	initial   *dynamo.State
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup validates the config, builds the engine over the given catalog and
// the initial state (mode defaults plus configured populations).
func (e *Experiment) Setup(reg *particles.Registry, tables *reactions.Tables, metrics []sim.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	eng, err := NewEngine(e.cfg, reg, tables, e.cfg.Seed)
	if err != nil {
		return err
	}
	initial, err := InitialState(e.cfg)(eng)
	if err != nil {
		return err
	}

	e.reg, e.tables = reg, tables
	e.simulator = sim.New(eng)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	e.initial = initial
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	res, err := e.simulator.Run(ctx, e.initial, RunConfig(e.cfg))
	if res != nil {
		res.Seed = e.cfg.Seed
	}
	return res, err
}

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

func (e *Experiment) Initial() *dynamo.State { return e.initial }

// Params describes the experiment for a stored run record.
func (e *Experiment) Params(name string) storage.RunParams {
	return Params(name, e.cfg)
}

func Params(name string, cfg *config.Config) storage.RunParams {
	law := cfg.Expansion.Law
	if law == "" {
		law = "linear"
	}
	return storage.RunParams{
		Name:                   name,
		Mode:                   cfg.Mode,
		Seed:                   cfg.Seed,
		Dt:                     cfg.Dt,
		Multiplier:             cfg.Multiplier,
		Ticks:                  cfg.Ticks,
		InteractionProbability: cfg.InteractionProbability,
		Expansion:              fmt.Sprintf("%s/%g", law, cfg.Expansion.Rate),
		Catalog:                cfg.Catalog,
	}
}

// NewEngine builds an engine over the catalog drawing from its own source.
func NewEngine(cfg *config.Config, reg *particles.Registry, tables *reactions.Tables, seed int64) (*dynamo.Engine, error) {
	ec, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	return dynamo.New(reg, tables, ec, dynamo.NewRand(seed))
}

// EngineFactory adapts NewEngine for ensembles.
func EngineFactory(cfg *config.Config, reg *particles.Registry, tables *reactions.Tables) sim.EngineFactory {
	return func(seed int64) (*dynamo.Engine, error) {
		return NewEngine(cfg, reg, tables, seed)
	}
}

// InitialState returns the configured starting state builder.
func InitialState(cfg *config.Config) func(*dynamo.Engine) (*dynamo.State, error) {
	return func(eng *dynamo.Engine) (*dynamo.State, error) {
		mode, err := cfg.EngineMode()
		if err != nil {
			return nil, err
		}
		return eng.Populate(eng.Reset(mode), cfg.Populations)
	}
}

func RunConfig(cfg *config.Config) sim.RunConfig {
	return sim.RunConfig{
		Ticks:       cfg.Ticks,
		DtBase:      cfg.Dt,
		Multiplier:  cfg.Multiplier,
		SampleEvery: cfg.SampleEvery,
	}
}
