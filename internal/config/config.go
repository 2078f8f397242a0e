package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/logx"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

const (
	DefaultTicks       = 1000
	DefaultSampleEvery = 10
	DefaultDataDir     = "data"
	DefaultLogLevel    = "info"
	DefaultSeed        = 42
)

type Config struct {
	Mode                   string           `yaml:"mode"`
	Dt                     float64          `yaml:"dt"`
	Multiplier             int64            `yaml:"multiplier"`
	MinMultiplier          int64            `yaml:"min_multiplier"`
	MaxMultiplier          int64            `yaml:"max_multiplier"`
	InteractionProbability float64          `yaml:"interaction_probability"`
	Fluctuations           bool             `yaml:"fluctuations"`
	Expansion              ExpansionConfig  `yaml:"expansion"`
	Seed                   int64            `yaml:"seed"`
	Ticks                  int              `yaml:"ticks"`
	SampleEvery            int              `yaml:"sample_every"`
	Catalog                string           `yaml:"catalog,omitempty"`
	Populations            map[string]int64 `yaml:"populations,omitempty"`
	Defaults               DefaultsConfig   `yaml:"defaults"`
	DataDir                string           `yaml:"data_dir"`
	LogLevel               string           `yaml:"log_level"`
}

// ExpansionConfig selects the volume growth law of expanding mode. A zero
// rate picks the law's default.
type ExpansionConfig struct {
	Law  string  `yaml:"law"`
	Rate float64 `yaml:"rate"`
}

type DefaultsConfig struct {
	Default   ModeConfig `yaml:"default"`
	Expanding ModeConfig `yaml:"expanding"`
}

type ModeConfig struct {
	Volume      float64 `yaml:"volume"`
	Temperature float64 `yaml:"temperature"`
}

func DefaultConfig() *Config {
	d := dynamo.DefaultConfig()
	return &Config{
		Mode:                   dynamo.ModeDefault.String(),
		Dt:                     d.DtBase,
		Multiplier:             1,
		MinMultiplier:          d.MinMultiplier,
		MaxMultiplier:          d.MaxMultiplier,
		InteractionProbability: d.InteractionProbability,
		Fluctuations:           d.Fluctuations,
		Expansion:              ExpansionConfig{Law: "linear", Rate: dynamo.DefaultLinearRate},
		Seed:                   DefaultSeed,
		Ticks:                  DefaultTicks,
		SampleEvery:            DefaultSampleEvery,
		Defaults: DefaultsConfig{
			Default:   ModeConfig{Volume: d.Defaults.Default.Volume, Temperature: d.Defaults.Default.Temperature},
			Expanding: ModeConfig{Volume: d.Defaults.Expanding.Volume, Temperature: d.Defaults.Expanding.Temperature},
		},
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a yaml file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver reads a yaml file over a copy of base.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Populations != nil {
		out.Populations = make(map[string]int64, len(c.Populations))
		for k, v := range c.Populations {
			out.Populations[k] = v
		}
	}
	return &out
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if _, err := dynamo.ParseMode(c.Mode); err != nil {
		add("mode %q", c.Mode)
	}
	if !(c.Dt > 0) {
		add("dt must be positive, got %g", c.Dt)
	}
	if c.MinMultiplier < 1 || c.MaxMultiplier < c.MinMultiplier {
		add("multiplier bounds [%d, %d]", c.MinMultiplier, c.MaxMultiplier)
	} else if c.Multiplier < c.MinMultiplier || c.Multiplier > c.MaxMultiplier {
		add("multiplier %d outside [%d, %d]", c.Multiplier, c.MinMultiplier, c.MaxMultiplier)
	}
	if c.InteractionProbability < 0 || c.InteractionProbability > 1 {
		add("interaction probability %g outside [0, 1]", c.InteractionProbability)
	}
	if _, err := dynamo.NewExpansion(c.Expansion.Law, c.Expansion.Rate); err != nil {
		add("expansion %s/%g", c.Expansion.Law, c.Expansion.Rate)
	}
	if c.Ticks < 0 {
		add("ticks must not be negative, got %d", c.Ticks)
	}
	if c.SampleEvery < 0 {
		add("sample_every must not be negative, got %d", c.SampleEvery)
	}
	if !(c.Defaults.Default.Volume > 0) || !(c.Defaults.Expanding.Volume > 0) {
		add("default volumes must be positive")
	}
	for name, n := range c.Populations {
		if n < 0 {
			add("population %s=%d is negative", name, n)
		}
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		add("log level %q", c.LogLevel)
	}

	return errors.Join(errs...)
}

func (c *Config) EngineMode() (dynamo.Mode, error) {
	return dynamo.ParseMode(c.Mode)
}

// EngineConfig resolves the engine parameters, including the expansion law.
func (c *Config) EngineConfig() (dynamo.Config, error) {
	law, err := dynamo.NewExpansion(c.Expansion.Law, c.Expansion.Rate)
	if err != nil {
		return dynamo.Config{}, err
	}
	return dynamo.Config{
		DtBase:                 c.Dt,
		MinMultiplier:          c.MinMultiplier,
		MaxMultiplier:          c.MaxMultiplier,
		InteractionProbability: c.InteractionProbability,
		Expansion:              law,
		Fluctuations:           c.Fluctuations,
		Defaults: dynamo.Defaults{
			Default:   dynamo.ModeDefaults{Volume: c.Defaults.Default.Volume, Temperature: c.Defaults.Default.Temperature},
			Expanding: dynamo.ModeDefaults{Volume: c.Defaults.Expanding.Volume, Temperature: c.Defaults.Expanding.Temperature},
		},
	}, nil
}
