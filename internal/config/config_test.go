package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "default" {
		t.Errorf("expected mode default, got %s", cfg.Mode)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if !cfg.Fluctuations {
		t.Error("fluctuations should be on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Expansion = ExpansionConfig{Law: "hubble", Rate: 0.5}
	cfg.InteractionProbability = 0.2

	ec, err := cfg.EngineConfig()
	if err != nil {
		t.Fatal(err)
	}
	if ec.Expansion != (dynamo.HubbleExpansion{H: 0.5}) {
		t.Errorf("expansion = %#v", ec.Expansion)
	}
	if ec.InteractionProbability != 0.2 || ec.DtBase != cfg.Dt {
		t.Errorf("engine config not carried over: %+v", ec)
	}
	if ec.Defaults.Expanding.Temperature != 1e12 {
		t.Errorf("expanding temperature = %g", ec.Defaults.Expanding.Temperature)
	}

	cfg.Expansion.Law = "cubic"
	if _, err := cfg.EngineConfig(); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected dynamo.ErrInvalidConfig, got %v", err)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = "sideways" }},
		{"dt", func(c *Config) { c.Dt = 0 }},
		{"multiplier", func(c *Config) { c.Multiplier = 0 }},
		{"bounds", func(c *Config) { c.MaxMultiplier = 0 }},
		{"probability", func(c *Config) { c.InteractionProbability = 2 }},
		{"expansion", func(c *Config) { c.Expansion.Law = "cubic" }},
		{"ticks", func(c *Config) { c.Ticks = -1 }},
		{"volume", func(c *Config) { c.Defaults.Default.Volume = 0 }},
		{"population", func(c *Config) { c.Populations = map[string]int64{"Muon": -1} }},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "mode: expanding\nseed: 7\npopulations:\n  Muon: 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "expanding" || cfg.Seed != 7 || cfg.Populations["Muon"] != 3 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Dt != dynamo.DefaultDtBase || !cfg.Fluctuations {
		t.Errorf("defaults lost: dt=%g fluctuations=%v", cfg.Dt, cfg.Fluctuations)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := GetPreset("quiet")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Fluctuations || loaded.Populations["Muon"] != 100 || loaded.Multiplier != 1000 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadOverKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("ticks: 77\n"), 0644); err != nil {
		t.Fatal(err)
	}
	base := GetPreset("bigbang")
	cfg, err := LoadOver(base, path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ticks != 77 {
		t.Errorf("ticks = %d, want 77", cfg.Ticks)
	}
	if cfg.Mode != base.Mode || cfg.Multiplier != base.Multiplier {
		t.Errorf("preset values lost: %+v", cfg)
	}
	if base.Ticks == 77 {
		t.Error("base was mutated")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("VACUUMSIM_SEED", "99")
	t.Setenv("VACUUMSIM_MODE", "bigbang")
	t.Setenv("VACUUMSIM_DT", "0.5")
	t.Setenv("VACUUMSIM_DATA_DIR", "/tmp/runs")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 99 || cfg.Mode != "bigbang" || cfg.Dt != 0.5 || cfg.DataDir != "/tmp/runs" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Multiplier != 1 || cfg.LogLevel != DefaultLogLevel {
		t.Error("unset variables changed the config")
	}
}

func TestApplyEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("VACUUMSIM_SEED", "not-a-number")
	if err := ApplyEnv(DefaultConfig()); err == nil {
		t.Error("expected a parse error")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s listed but missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	big := GetPreset("bigbang")
	if mode, _ := big.EngineMode(); mode != dynamo.ModeExpanding {
		t.Errorf("bigbang mode = %v", mode)
	}

	quiet := GetPreset("quiet")
	quiet.Populations["Muon"] = 1
	if Presets["quiet"].Populations["Muon"] != 100 {
		t.Error("GetPreset handed out shared state")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if _, err := LookupPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("LookupPreset error = %v", err)
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("presets not sorted: %v", names)
		}
	}
}

func TestCatalog(t *testing.T) {
	reg, tables, err := Catalog(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !reg.Has("Muon") {
		t.Error("standard catalog missing Muon")
	}
	if _, ok := tables.DecayOf("Muon"); !ok {
		t.Error("standard tables missing the muon decay")
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
species:
  - {name: X, mass: 1}
  - {name: Y, mass: 1, kind: boson}
  - {name: Z, mass: 2, lifetime: 5}
decays:
  - parent: Z
    outcomes: [[X, Y]]
interactions:
  - reactants: [Y, X]
    outcomes: [[Z]]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	reg, tables, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 3 {
		t.Errorf("expected 3 species, got %d", reg.Len())
	}
	x, _ := reg.Lookup("X")
	if !x.Stable() {
		t.Error("zero lifetime should mean stable")
	}
	if _, ok := tables.InteractionFor("X", "Y"); !ok {
		t.Error("interaction X+Y missing")
	}
}

func TestLoadCatalogRejectsUnknownProducts(t *testing.T) {
	cf := CatalogFile{
		Species:      []SpeciesEntry{{Name: "X", Mass: 1}},
		Interactions: []InteractionEntry{{Reactants: []string{"X", "X"}, Outcomes: [][]string{{"Ghost"}}}},
	}
	_, _, err := cf.Build()
	if !errors.Is(err, reactions.ErrUnknownSpecies) {
		t.Errorf("expected unknown species error, got %v", err)
	}
}

func TestCatalogExtendsStandard(t *testing.T) {
	cf := CatalogFile{
		IncludeStandard: true,
		Species:         []SpeciesEntry{{Name: "Axion", Mass: 1e-5}},
		Interactions:    []InteractionEntry{{Reactants: []string{"Axion", "Photon"}, Outcomes: [][]string{{"Photon", "Photon"}}}},
	}
	reg, tables, err := cf.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !reg.Has("Axion") || !reg.Has("Muon") {
		t.Error("extended catalog should hold both standard and custom species")
	}
	if _, ok := tables.DecayOf("Neutron"); !ok {
		t.Error("standard channels missing from extended catalog")
	}
}
