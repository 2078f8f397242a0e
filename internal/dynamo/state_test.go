package dynamo

import (
	"reflect"
	"testing"
)

func TestStateCloneIsIndependent(t *testing.T) {
	s := NewState(ModeDefault, ModeDefaults{Volume: 1, Temperature: 2.7})
	s.counts["A"] = 3
	s.counts["Z"] = 0

	c := s.Clone()
	c.increment("A")
	c.increment("B")

	if s.Count("A") != 3 || s.Count("B") != 0 {
		t.Errorf("clone shares counts with original: %v", s.Counts())
	}
	if _, ok := c.counts["Z"]; ok {
		t.Error("clone kept a zero entry")
	}
}

func TestStateQueries(t *testing.T) {
	s := NewState(ModeExpanding, ModeDefaults{Volume: 0.1, Temperature: 1e12})
	s.counts["Muon"] = 2
	s.counts["Electron"] = 5

	if got := s.Present(); !reflect.DeepEqual(got, []string{"Electron", "Muon"}) {
		t.Errorf("Present = %v", got)
	}
	if s.Population() != 7 {
		t.Errorf("Population = %d, want 7", s.Population())
	}
	if s.ActiveSpecies() != 2 {
		t.Errorf("ActiveSpecies = %d, want 2", s.ActiveSpecies())
	}
	if s.Mode() != ModeExpanding || s.Volume() != 0.1 || s.Temperature() != 1e12 {
		t.Errorf("unexpected initial aggregates")
	}
}

func TestDecrementRemovesEmptyEntries(t *testing.T) {
	s := NewState(ModeDefault, ModeDefaults{Volume: 1})
	s.counts["A"] = 2
	s.decrement("A", 2)
	if _, ok := s.counts["A"]; ok {
		t.Error("zero count left in the map")
	}
	if len(s.Present()) != 0 {
		t.Errorf("Present = %v, want empty", s.Present())
	}
}

func TestHasChecksPresence(t *testing.T) {
	s := NewState(ModeDefault, ModeDefaults{Volume: 1})
	s.counts["D"] = 1
	s.counts["X"] = 4

	tests := []struct {
		species []string
		want    bool
	}{
		{[]string{"X"}, true},
		{[]string{"D"}, true},
		{[]string{"D", "X"}, true},
		{[]string{"D", "Y"}, false},
		{[]string{"Y"}, false},
	}
	for _, tt := range tests {
		if got := s.has(tt.species); got != tt.want {
			t.Errorf("has(%v) = %v, want %v", tt.species, got, tt.want)
		}
	}
}
