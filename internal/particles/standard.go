package particles

const stable = StableLifetime

var standardSpecies = []Species{
	// Leptons
	{Name: "Electron", Mass: 0.000511, Charge: -1, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Positron", Mass: 0.000511, Charge: 1, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Muon", Mass: 0.105, Charge: -1, Spin: 0.5, Lifetime: 2.2e-6, Kind: Fermion},
	{Name: "Anti-Muon", Mass: 0.105, Charge: 1, Spin: 0.5, Lifetime: 2.2e-6, Kind: Fermion},
	{Name: "Tau", Mass: 1.777, Charge: -1, Spin: 0.5, Lifetime: 2.9e-13, Kind: Fermion},
	{Name: "Anti-Tau", Mass: 1.777, Charge: 1, Spin: 0.5, Lifetime: 2.9e-13, Kind: Fermion},
	{Name: "Electron Neutrino", Mass: 1e-9, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Muon Neutrino", Mass: 1e-9, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Tau Neutrino", Mass: 1e-9, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Anti-Electron Neutrino", Mass: 1e-9, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Anti-Muon Neutrino", Mass: 1e-9, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Anti-Tau Neutrino", Mass: 1e-9, Spin: 0.5, Lifetime: stable, Kind: Fermion},

	// Quarks
	{Name: "Up Quark", Mass: 2.16e-3, Charge: 2.0 / 3, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Anti-Up Quark", Mass: 2.16e-3, Charge: -2.0 / 3, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Down Quark", Mass: 4.67e-3, Charge: -1.0 / 3, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Anti-Down Quark", Mass: 4.67e-3, Charge: 1.0 / 3, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Charm Quark", Mass: 1.27, Charge: 2.0 / 3, Spin: 0.5, Lifetime: 1.56e-12, Kind: Fermion},
	{Name: "Anti-Charm Quark", Mass: 1.27, Charge: -2.0 / 3, Spin: 0.5, Lifetime: 1.56e-12, Kind: Fermion},
	{Name: "Strange Quark", Mass: 0.093, Charge: -1.0 / 3, Spin: 0.5, Lifetime: 1.24e-8, Kind: Fermion},
	{Name: "Anti-Strange Quark", Mass: 0.093, Charge: 1.0 / 3, Spin: 0.5, Lifetime: 1.24e-8, Kind: Fermion},
	{Name: "Top Quark", Mass: 172.76, Charge: 2.0 / 3, Spin: 0.5, Lifetime: 5e-25, Kind: Fermion},
	{Name: "Anti-Top Quark", Mass: 172.76, Charge: -2.0 / 3, Spin: 0.5, Lifetime: 5e-25, Kind: Fermion},
	{Name: "Bottom Quark", Mass: 4.18, Charge: -1.0 / 3, Spin: 0.5, Lifetime: 1.3e-12, Kind: Fermion},
	{Name: "Anti-Bottom Quark", Mass: 4.18, Charge: 1.0 / 3, Spin: 0.5, Lifetime: 1.3e-12, Kind: Fermion},

	// Baryons
	{Name: "Proton", Mass: 0.938, Charge: 1, Spin: 0.5, Lifetime: stable, Kind: Fermion},
	{Name: "Neutron", Mass: 0.939, Spin: 0.5, Lifetime: 880.2, Kind: Fermion},

	// Gauge and scalar bosons
	{Name: Photon, Mass: 0, Spin: 1, Lifetime: stable, Kind: Boson},
	{Name: "Gluon", Mass: 0, Spin: 1, Lifetime: stable, Kind: Boson},
	{Name: "W Boson", Mass: 80.379, Charge: 1, Spin: 1, Lifetime: 3e-25, Kind: Boson},
	{Name: "Z Boson", Mass: 91.1876, Spin: 1, Lifetime: 3e-25, Kind: Boson},
	{Name: "Higgs Boson", Mass: 125.1, Spin: 0, Lifetime: 1.56e-22, Kind: Boson},

	// Light nuclei
	{Name: "Deuterium", Mass: 2.014, Spin: 1, Lifetime: stable, Kind: Composite},
	{Name: "Tritium", Mass: 3.016, Spin: 1, Lifetime: 3.88e8, Kind: Composite},
	{Name: "Helium-3", Mass: 3.016, Charge: 2, Spin: 0.5, Lifetime: stable, Kind: Composite},
	{Name: "Helium-4", Mass: 4.002, Charge: 2, Spin: 0, Lifetime: stable, Kind: Composite},

	// Pions
	{Name: "Pi+", Mass: 0.13957, Charge: 1, Spin: 0, Lifetime: 2.6e-8, Kind: Boson},
	{Name: "Pi-", Mass: 0.13957, Charge: -1, Spin: 0, Lifetime: 2.6e-8, Kind: Boson},
	{Name: "Pi0", Mass: 0.13498, Spin: 0, Lifetime: 8.4e-17, Kind: Boson},
}

// Standard returns the built-in species vocabulary.
func Standard() *Registry {
	return MustRegistry(standardSpecies...)
}
