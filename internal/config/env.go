package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverlay holds the variables that may override a loaded config. Unset
// variables leave their pointer nil.
type envOverlay struct {
	Seed                   *int64   `env:"VACUUMSIM_SEED"`
	Dt                     *float64 `env:"VACUUMSIM_DT"`
	Multiplier             *int64   `env:"VACUUMSIM_MULTIPLIER"`
	Mode                   *string  `env:"VACUUMSIM_MODE"`
	Ticks                  *int     `env:"VACUUMSIM_TICKS"`
	InteractionProbability *float64 `env:"VACUUMSIM_INTERACTION_PROBABILITY"`
	Catalog                *string  `env:"VACUUMSIM_CATALOG"`
	DataDir                *string  `env:"VACUUMSIM_DATA_DIR"`
	LogLevel               *string  `env:"VACUUMSIM_LOG_LEVEL"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays VACUUMSIM_* variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverlay
	if err := ParseEnv(&o); err != nil {
		return err
	}
	if o.Seed != nil {
		cfg.Seed = *o.Seed
	}
	if o.Dt != nil {
		cfg.Dt = *o.Dt
	}
	if o.Multiplier != nil {
		cfg.Multiplier = *o.Multiplier
	}
	if o.Mode != nil {
		cfg.Mode = *o.Mode
	}
	if o.Ticks != nil {
		cfg.Ticks = *o.Ticks
	}
	if o.InteractionProbability != nil {
		cfg.InteractionProbability = *o.InteractionProbability
	}
	if o.Catalog != nil {
		cfg.Catalog = *o.Catalog
	}
	if o.DataDir != nil {
		cfg.DataDir = *o.DataDir
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	return nil
}
