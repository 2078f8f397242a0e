package metrics

import "github.com/san-kum/vacuumsim/internal/dynamo"

// Stability is the fraction of ticks whose population stayed at or below
// a threshold.
type Stability struct {
	name       string
	threshold  int64
	violations int
	samples    int
}

func NewStability(threshold int64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(st *dynamo.State) {
	s.samples++
	if st.Population() > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
