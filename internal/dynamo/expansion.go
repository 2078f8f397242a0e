package dynamo

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/vacuumsim/internal/particles"
)

// ExpansionLaw grows the volume over a tick of length dt. Implementations
// never return less than the input volume.
type ExpansionLaw interface {
	Name() string
	Grow(volume, dt float64) float64
}

// LinearExpansion adds Rate cubic meters per second.
type LinearExpansion struct {
	Rate float64
}

func (l LinearExpansion) Name() string { return "linear" }

func (l LinearExpansion) Grow(volume, dt float64) float64 {
	return math.Max(volume, volume+l.Rate*dt)
}

// HubbleExpansion scales the volume by exp(H*dt).
type HubbleExpansion struct {
	H float64
}

func (h HubbleExpansion) Name() string { return "hubble" }

func (h HubbleExpansion) Grow(volume, dt float64) float64 {
	return math.Max(volume, volume*math.Exp(h.H*dt))
}

// NewExpansion resolves a law by name. A zero rate selects the law's
// default: 0.1 m^3/s for linear, H0 for hubble.
func NewExpansion(law string, rate float64) (ExpansionLaw, error) {
	if rate < 0 || math.IsNaN(rate) {
		return nil, fmt.Errorf("%w: expansion rate must be non-negative, got %g", ErrInvalidConfig, rate)
	}
	switch strings.ToLower(strings.TrimSpace(law)) {
	case "", "linear":
		if rate == 0 {
			rate = DefaultLinearRate
		}
		return LinearExpansion{Rate: rate}, nil
	case "hubble", "exponential":
		if rate == 0 {
			rate = particles.H0PerSecond
		}
		return HubbleExpansion{H: rate}, nil
	}
	return nil, fmt.Errorf("%w: unknown expansion law %q", ErrInvalidConfig, law)
}
