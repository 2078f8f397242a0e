package particles

// Universal constants. Registry masses are in GeV, so Hbar and KB are in
// GeV units as well.
const (
	// C is the speed of light (m/s).
	C = 3e8
	// Hbar is the reduced Planck constant (GeV*s).
	Hbar = 6.582119569e-25
	// KB is the Boltzmann constant (GeV/K).
	KB = 8.617333262145e-5
	// G is the gravitational constant (m^3/kg/s^2).
	G = 6.67430e-11
	// H0 is the Hubble constant (km/s/Mpc).
	H0 = 67.4
	// DarkEnergyDensity is in kg/m^3.
	DarkEnergyDensity = 7.3e-30

	// H0PerSecond is H0 converted to 1/s.
	H0PerSecond = H0 * 1e3 / 3.086e22

	// ReferenceWavelength is the assumed mean photon wavelength (m).
	ReferenceWavelength = 1e-7

	// StableLifetime is the sentinel lifetime of species that never decay.
	StableLifetime = 1e30
)

// Photon names the species counted by the radiation density observable.
const Photon = "Photon"
