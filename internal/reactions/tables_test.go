package reactions

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/vacuumsim/internal/particles"
)

func TestKeyIsOrderIndependent(t *testing.T) {
	if Key("Photon", "Electron") != Key("Electron", "Photon") {
		t.Error("symmetric reactant sets should share a key")
	}
	if Key("Proton", "Neutron", "Neutron") == Key("Proton", "Neutron") {
		t.Error("multiplicity must be part of the key")
	}
}

func TestAddInteractionRejectsSymmetricDuplicate(t *testing.T) {
	tb := NewTables()
	if err := tb.AddInteraction([]string{"Electron", "Photon"}, Outcome{"Electron", "Photon"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	err := tb.AddInteraction([]string{"Photon", "Electron"}, Outcome{"Photon"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	in, ok := tb.InteractionFor("Photon", "Electron")
	if !ok {
		t.Fatal("lookup by reversed reactants failed")
	}
	if in.Reactants[0] != "Electron" {
		t.Errorf("reactants not canonical: %v", in.Reactants)
	}
}

func TestAddRejectsEmptyOutcomes(t *testing.T) {
	tests := []struct {
		name string
		add  func(*Tables) error
	}{
		{"decay without outcomes", func(tb *Tables) error { return tb.AddDecay("B") }},
		{"decay with empty tuple", func(tb *Tables) error { return tb.AddDecay("B", Outcome{}) }},
		{"interaction without reactants", func(tb *Tables) error { return tb.AddInteraction(nil, Outcome{"A"}) }},
		{"interaction without outcomes", func(tb *Tables) error { return tb.AddInteraction([]string{"A"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(NewTables()); !errors.Is(err, ErrEmptyOutcome) {
				t.Errorf("expected ErrEmptyOutcome, got %v", err)
			}
		})
	}
}

func TestDistinct(t *testing.T) {
	in := Interaction{Reactants: Canonical("Neutron", "Proton", "Neutron")}
	got := in.Distinct()
	if len(got) != 2 || got[0] != "Neutron" || got[1] != "Proton" {
		t.Errorf("unexpected distinct reactants %v", got)
	}
	if len(in.Reactants) != 3 {
		t.Errorf("reactants must be left intact, got %v", in.Reactants)
	}
}

func TestStandardTablesAreValid(t *testing.T) {
	tb := Standard()
	if err := Validate(particles.Standard(), tb); err != nil {
		t.Fatalf("standard tables invalid: %v", err)
	}

	decays, interactions := tb.Len()
	if decays != 5 {
		t.Errorf("expected 5 decay channels, got %d", decays)
	}
	if interactions == 0 {
		t.Error("expected interaction channels")
	}

	gg, ok := tb.InteractionFor("Gluon", "Gluon")
	if !ok {
		t.Fatal("gluon fusion missing")
	}
	if len(gg.Outcomes) != 6 {
		t.Errorf("expected 6 quark pair outcomes, got %d", len(gg.Outcomes))
	}
}

func TestValidateReportsUnknownSpecies(t *testing.T) {
	reg := particles.MustRegistry(
		particles.Species{Name: "A", Lifetime: particles.StableLifetime},
		particles.Species{Name: "B", Lifetime: 2},
	)
	tb := NewTables()
	_ = tb.AddDecay("B", Outcome{"A", "Ghost"})
	_ = tb.AddDecay("Phantom", Outcome{"A"})
	_ = tb.AddInteraction([]string{"A", "Wraith"}, Outcome{"B"})

	err := Validate(reg, tb)
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("expected errors.Is ErrUnknownSpecies, got %v", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigurationError, got %T", err)
	}
	if len(cfgErr.Issues) != 3 {
		t.Errorf("expected 3 issues, got %d: %v", len(cfgErr.Issues), cfgErr.Issues)
	}
	for _, name := range []string{"Ghost", "Phantom", "Wraith"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not mention %s: %v", name, err)
		}
	}
}
