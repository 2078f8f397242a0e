package particles

import (
	"errors"
	"math"
	"testing"
)

func TestStandardRegistry(t *testing.T) {
	reg := Standard()

	if reg.Len() != 38 {
		t.Fatalf("expected 38 species, got %d", reg.Len())
	}

	photon, ok := reg.Lookup(Photon)
	if !ok {
		t.Fatal("photon not registered")
	}
	if !photon.Stable() {
		t.Error("photon should be stable")
	}
	if photon.Kind != Boson {
		t.Errorf("expected boson, got %s", photon.Kind)
	}

	neutron, _ := reg.Lookup("Neutron")
	if neutron.Stable() {
		t.Error("neutron should be unstable")
	}

	if reg.At(0).Name != "Electron" {
		t.Errorf("expected registration order to start with Electron, got %s", reg.At(0).Name)
	}
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		species []Species
	}{
		{"empty name", []Species{{Name: "", Lifetime: 1}}},
		{"negative mass", []Species{{Name: "A", Mass: -1, Lifetime: 1}}},
		{"zero lifetime", []Species{{Name: "A", Lifetime: 0}}},
		{"NaN mass", []Species{{Name: "A", Mass: math.NaN(), Lifetime: 1}}},
		{"infinite mass", []Species{{Name: "A", Mass: math.Inf(1), Lifetime: 1}}},
		{"NaN lifetime", []Species{{Name: "A", Lifetime: math.NaN()}}},
		{"separator in name", []Species{{Name: "A\x1fB", Lifetime: 1}}},
		{"duplicate", []Species{{Name: "A", Lifetime: 1}, {Name: "A", Lifetime: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.species...)
			if !errors.Is(err, ErrInvalidSpecies) {
				t.Errorf("expected ErrInvalidSpecies, got %v", err)
			}
		})
	}
}

func TestRegistryNamesIsACopy(t *testing.T) {
	reg := MustRegistry(Species{Name: "A", Lifetime: 1}, Species{Name: "B", Lifetime: 2})

	names := reg.Names()
	names[0] = "changed"

	if reg.At(0).Name != "A" {
		t.Error("Names() leaked internal storage")
	}
	if !reg.Has("B") || reg.Has("C") {
		t.Error("Has() returned wrong membership")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Fermion, Boson, Composite} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("tachyon"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
