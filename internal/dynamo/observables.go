package dynamo

import (
	"math"
	"time"

	"github.com/san-kum/vacuumsim/internal/particles"
)

// Separation bounds for the sampled gravitational potential (m).
const (
	MinSeparation = 1e-10
	MaxSeparation = 1e-3
)

// ZeroPointEnergy is the simplified harmonic-oscillator ground state energy
// 0.5 * hbar * c * sqrt(mass).
func ZeroPointEnergy(mass float64) float64 {
	return 0.5 * particles.Hbar * particles.C * math.Sqrt(mass)
}

// RadiationDensity is the photon energy per unit volume, assuming every
// photon has the reference wavelength.
func RadiationDensity(s *State) float64 {
	perPhoton := particles.Hbar * particles.C / particles.ReferenceWavelength
	return float64(s.Count(particles.Photon)) * perPhoton / s.volume
}

// GravitationalPotential sums -G*m1*m2*n1*n2/r over unordered pairs of
// distinct present species, with r drawn uniformly from
// [MinSeparation, MaxSeparation] for every pair. It is a sample, not a
// function of the state alone. Pass a source other than the engine's to
// keep the engine's draw sequence intact.
func GravitationalPotential(s *State, reg *particles.Registry, src Source) float64 {
	total := 0.0
	n := reg.Len()
	for i := 0; i < n; i++ {
		a := reg.At(i)
		ca := s.Count(a.Name)
		if ca == 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := reg.At(j)
			cb := s.Count(b.Name)
			if cb == 0 {
				continue
			}
			r := MinSeparation + src.Float64()*(MaxSeparation-MinSeparation)
			total += -particles.G * a.Mass * b.Mass * float64(ca) * float64(cb) / r
		}
	}
	return total
}

// RelativisticEnergy returns gamma*m*c^2; speeds at or above c give +Inf.
func RelativisticEnergy(mass, speed float64) float64 {
	beta2 := speed * speed / (particles.C * particles.C)
	if beta2 >= 1 {
		return math.Inf(1)
	}
	gamma := 1 / math.Sqrt(1-beta2)
	return gamma * mass * particles.C * particles.C
}

// DarkEnergy is the dark energy content of a volume (J).
func DarkEnergy(volume float64) float64 {
	return particles.DarkEnergyDensity * volume * particles.C * particles.C
}

// MeanAppearanceTime is wall time per created particle, 0 before the first.
func MeanAppearanceTime(s *State, elapsed time.Duration) float64 {
	if s.created == 0 {
		return 0
	}
	return elapsed.Seconds() / float64(s.created)
}
