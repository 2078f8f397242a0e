package dynamo

import (
	"fmt"
	"math/rand"
	"strings"
)

// Source is the pseudo-random source the engine draws from. *rand.Rand
// satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type Mode int

const (
	ModeDefault Mode = iota
	ModeExpanding
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeExpanding:
		return "expanding"
	default:
		return "unknown"
	}
}

func (m Mode) Toggle() Mode {
	if m == ModeExpanding {
		return ModeDefault
	}
	return ModeExpanding
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ModeDefault, nil
	case "expanding", "bigbang", "big bang", "big-bang":
		return ModeExpanding, nil
	}
	return ModeDefault, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// ModeDefaults are the volume and temperature a state starts from.
type ModeDefaults struct {
	Volume      float64
	Temperature float64
}

type Defaults struct {
	Default   ModeDefaults
	Expanding ModeDefaults
}

func (d Defaults) For(m Mode) ModeDefaults {
	if m == ModeExpanding {
		return d.Expanding
	}
	return d.Default
}

const (
	DefaultDtBase                 = 0.1
	DefaultInteractionProbability = 0.01
	DefaultLinearRate             = 0.1
	MinMultiplier                 = 1
	MaxMultiplier                 = 1_000_000_000
)

// Config holds the engine's static parameters. Fluctuations enables the
// creation/annihilation phase; it is on by default.
type Config struct {
	DtBase                 float64
	MinMultiplier          int64
	MaxMultiplier          int64
	InteractionProbability float64
	Expansion              ExpansionLaw
	Fluctuations           bool
	Defaults               Defaults
}

func DefaultConfig() Config {
	return Config{
		DtBase:                 DefaultDtBase,
		MinMultiplier:          MinMultiplier,
		MaxMultiplier:          MaxMultiplier,
		InteractionProbability: DefaultInteractionProbability,
		Expansion:              LinearExpansion{Rate: DefaultLinearRate},
		Fluctuations:           true,
		Defaults: Defaults{
			Default:   ModeDefaults{Volume: 1.0, Temperature: 2.7},
			Expanding: ModeDefaults{Volume: 0.1, Temperature: 1e12},
		},
	}
}

func (c Config) validate() error {
	if !(c.DtBase > 0) {
		return fmt.Errorf("%w: dt base must be positive, got %g", ErrInvalidConfig, c.DtBase)
	}
	if c.MinMultiplier < 1 || c.MaxMultiplier < c.MinMultiplier {
		return fmt.Errorf("%w: multiplier bounds [%d, %d]", ErrInvalidConfig, c.MinMultiplier, c.MaxMultiplier)
	}
	if c.InteractionProbability < 0 || c.InteractionProbability > 1 {
		return fmt.Errorf("%w: interaction probability %g outside [0, 1]", ErrInvalidConfig, c.InteractionProbability)
	}
	if c.Expansion == nil {
		return fmt.Errorf("%w: expansion law is required", ErrInvalidConfig)
	}
	for _, m := range []Mode{ModeDefault, ModeExpanding} {
		if d := c.Defaults.For(m); !(d.Volume > 0) {
			return fmt.Errorf("%w: %s volume must be positive, got %g", ErrInvalidConfig, m, d.Volume)
		}
	}
	return nil
}
