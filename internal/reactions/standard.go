package reactions

type channel struct {
	reactants []string
	outcomes  []Outcome
}

func r(names ...string) []string { return names }

func o(names ...string) Outcome { return Outcome(names) }

var standardDecays = []channel{
	{r("Muon"), []Outcome{o("Electron", "Electron Neutrino", "Muon Neutrino")}},
	{r("Tau"), []Outcome{
		o("Muon", "Muon Neutrino", "Tau Neutrino"),
		o("Electron", "Electron Neutrino", "Tau Neutrino"),
	}},
	{r("Neutron"), []Outcome{o("Proton", "Electron", "Electron Neutrino")}},
	{r("W Boson"), []Outcome{
		o("Electron", "Electron Neutrino"),
		o("Muon", "Muon Neutrino"),
		o("Tau", "Tau Neutrino"),
	}},
	{r("Z Boson"), []Outcome{o("Electron", "Positron"), o("Muon", "Anti-Muon")}},
}

var quarkPairs = []Outcome{
	o("Up Quark", "Anti-Up Quark"),
	o("Down Quark", "Anti-Down Quark"),
	o("Charm Quark", "Anti-Charm Quark"),
	o("Strange Quark", "Anti-Strange Quark"),
	o("Top Quark", "Anti-Top Quark"),
	o("Bottom Quark", "Anti-Bottom Quark"),
}

var annihilation = []Outcome{o("Photon"), o("Gluon"), o("Z Boson")}

// Symmetric duplicates are listed once. Gluon+Gluon sits at its first
// position but carries the pair-production outcomes.
var standardInteractions = []channel{
	// Nucleosynthesis
	{r("Proton", "Neutron"), []Outcome{o("Deuterium", "Photon")}},
	{r("Proton", "Electron"), []Outcome{o("Neutron", "Electron Neutrino")}},
	{r("Neutron", "Electron Neutrino"), []Outcome{o("Proton", "Electron")}},
	{r("Deuterium", "Neutron"), []Outcome{o("Tritium", "Photon")}},
	{r("Proton", "Neutron", "Neutron"), []Outcome{o("Tritium")}},
	{r("Tritium"), []Outcome{o("Helium-3", "Electron", "Anti-Electron Neutrino")}},
	{r("Deuterium", "Proton"), []Outcome{o("Helium-3", "Photon")}},
	{r("Tritium", "Proton"), []Outcome{o("Helium-3", "Neutron")}},
	{r("Helium-3", "Neutron"), []Outcome{o("Helium-4", "Photon")}},
	{r("Deuterium", "Deuterium"), []Outcome{o("Helium-4", "Neutron", "Photon")}},

	// Leptons
	{r("Electron", "Positron"), []Outcome{o("Photon", "Photon")}},
	{r("Muon", "Anti-Muon"), []Outcome{o("Photon", "Photon")}},
	{r("Tau", "Anti-Tau"), []Outcome{o("Photon", "Photon")}},
	{r("Electron", "Photon"), []Outcome{o("Electron", "Photon")}},
	{r("Muon", "Photon"), []Outcome{o("Muon", "Photon")}},
	{r("Tau", "Photon"), []Outcome{o("Tau", "Photon")}},
	{r("Electron", "W Boson"), []Outcome{o("Electron Neutrino")}},
	{r("Muon", "W Boson"), []Outcome{o("Muon Neutrino")}},
	{r("Tau", "W Boson"), []Outcome{o("Tau Neutrino")}},

	// Quark annihilation
	{r("Up Quark", "Anti-Up Quark"), annihilation},
	{r("Down Quark", "Anti-Down Quark"), annihilation},
	{r("Charm Quark", "Anti-Charm Quark"), annihilation},
	{r("Strange Quark", "Anti-Strange Quark"), annihilation},
	{r("Top Quark", "Anti-Top Quark"), annihilation},
	{r("Bottom Quark", "Anti-Bottom Quark"), annihilation},

	// Quark-gluon scattering
	{r("Up Quark", "Gluon"), []Outcome{o("Up Quark", "Gluon")}},
	{r("Down Quark", "Gluon"), []Outcome{o("Down Quark", "Gluon")}},
	{r("Charm Quark", "Gluon"), []Outcome{o("Charm Quark", "Gluon")}},
	{r("Strange Quark", "Gluon"), []Outcome{o("Strange Quark", "Gluon")}},
	{r("Top Quark", "Gluon"), []Outcome{o("Top Quark", "Gluon")}},
	{r("Bottom Quark", "Gluon"), []Outcome{o("Bottom Quark", "Gluon")}},

	// Bosons
	{r("Photon", "Proton"), []Outcome{o("Photon", "Proton")}},
	{r("Photon", "Neutron"), []Outcome{o("Photon", "Neutron")}},
	{r("Gluon", "Gluon"), quarkPairs},
	{r("W Boson", "Z Boson"), []Outcome{o("Photon")}},

	// Pions
	{r("Pi+", "Electron"), []Outcome{o("Muon", "Muon Neutrino")}},
	{r("Pi-", "Electron"), []Outcome{o("Muon", "Anti-Muon Neutrino")}},
	{r("Pi0", "Photon"), []Outcome{o("Photon", "Photon")}},

	// Higgs
	{r("Higgs Boson", "Top Quark"), []Outcome{o("Top Quark")}},
	{r("Higgs Boson", "Bottom Quark"), []Outcome{o("Bottom Quark")}},
	{r("Higgs Boson", "Electron"), []Outcome{o("Electron")}},
	{r("Higgs Boson", "Muon"), []Outcome{o("Muon")}},
	{r("Higgs Boson", "Tau"), []Outcome{o("Tau")}},

	// Neutrinos
	{r("Electron Neutrino", "W Boson"), []Outcome{o("Electron")}},
	{r("Muon Neutrino", "W Boson"), []Outcome{o("Muon")}},
	{r("Tau Neutrino", "W Boson"), []Outcome{o("Tau")}},
	{r("Electron Neutrino", "Z Boson"), []Outcome{o("Electron Neutrino")}},
	{r("Muon Neutrino", "Z Boson"), []Outcome{o("Muon Neutrino")}},
	{r("Tau Neutrino", "Z Boson"), []Outcome{o("Tau Neutrino")}},

	// Pair production
	{r("Photon", "Photon"), []Outcome{o("Electron", "Positron")}},
}

// Standard returns the built-in decay and interaction tables. They reference
// only species of particles.Standard.
func Standard() *Tables {
	t := NewTables()
	for _, d := range standardDecays {
		if err := t.AddDecay(d.reactants[0], d.outcomes...); err != nil {
			panic(err)
		}
	}
	for _, in := range standardInteractions {
		if err := t.AddInteraction(in.reactants, in.outcomes...); err != nil {
			panic(err)
		}
	}
	return t
}
