package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

func preset(mutate func(c *Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"bigbang": preset(func(c *Config) {
		c.Mode = "expanding"
		c.Multiplier = 10
	}),
	"hubble": preset(func(c *Config) {
		c.Mode = "expanding"
		c.Expansion = ExpansionConfig{Law: "hubble", Rate: 0.05}
	}),
	"quiet": preset(func(c *Config) {
		c.Fluctuations = false
		c.Populations = map[string]int64{"Muon": 100, "Neutron": 50, "Tau": 20}
		c.Multiplier = 1000
	}),
	"hot": preset(func(c *Config) {
		c.InteractionProbability = 0.25
		c.Populations = map[string]int64{"Gluon": 200, "Electron": 100, "Positron": 100}
	}),
}

// GetPreset returns a copy of a named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// LookupPreset is GetPreset with an error naming the available presets.
func LookupPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
