package dynamo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/particles"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

type counters struct {
	created, natural, interaction int64
}

func countersOf(s *dynamo.State) counters {
	return counters{s.TotalCreated(), s.TotalDecayedNatural(), s.TotalDecayedInteraction()}
}

var _ = Describe("Engine", func() {
	var (
		reg    *particles.Registry
		tables *reactions.Tables
		cfg    dynamo.Config
	)

	BeforeEach(func() {
		reg = particles.Standard()
		tables = reactions.Standard()
		cfg = dynamo.DefaultConfig()
	})

	newEngine := func(seed int64) *dynamo.Engine {
		eng, err := dynamo.New(reg, tables, cfg, dynamo.NewRand(seed))
		Expect(err).NotTo(HaveOccurred())
		return eng
	}

	Context("with the standard catalog", func() {
		BeforeEach(func() {
			cfg.InteractionProbability = 0.5
		})

		DescribeTable("keeps every count non-negative and counters monotonic",
			func(seed int64, mode dynamo.Mode, mult int64) {
				eng := newEngine(seed)
				s := eng.Reset(mode)
				prev := countersOf(s)

				for i := 0; i < 2000; i++ {
					next, err := eng.Step(s, cfg.DtBase, mult)
					Expect(err).NotTo(HaveOccurred())

					for name, n := range next.Counts() {
						Expect(n).To(BeNumerically(">=", 0), "species %s", name)
						Expect(reg.Has(name)).To(BeTrue())
					}
					cur := countersOf(next)
					Expect(cur.created).To(BeNumerically(">=", prev.created))
					Expect(cur.natural).To(BeNumerically(">=", prev.natural))
					Expect(cur.interaction).To(BeNumerically(">=", prev.interaction))
					Expect(next.Ticks()).To(Equal(s.Ticks() + 1))

					prev, s = cur, next
				}
			},
			Entry("default mode", int64(1), dynamo.ModeDefault, int64(1)),
			Entry("expanding mode", int64(2), dynamo.ModeExpanding, int64(1)),
			Entry("large multiplier", int64(3), dynamo.ModeDefault, int64(1_000_000)),
		)

		It("never shrinks the volume in expanding mode", func() {
			eng := newEngine(42)
			s := eng.Reset(dynamo.ModeExpanding)
			start := s.Volume()

			for i := 0; i < 500; i++ {
				next, err := eng.Step(s, cfg.DtBase, 1)
				Expect(err).NotTo(HaveOccurred())
				Expect(next.Volume()).To(BeNumerically(">=", s.Volume()))
				s = next
			}
			Expect(s.Volume()).To(BeNumerically(">", start))
		})

		It("keeps the volume fixed in default mode", func() {
			eng := newEngine(42)
			s := eng.Reset(dynamo.ModeDefault)
			for i := 0; i < 100; i++ {
				s, _ = eng.Step(s, cfg.DtBase, 10)
			}
			Expect(s.Volume()).To(Equal(1.0))
		})

		It("is reproducible for a fixed seed", func() {
			run := func() *dynamo.State {
				eng := newEngine(2024)
				s := eng.Reset(dynamo.ModeDefault)
				for i := 0; i < 300; i++ {
					s, _ = eng.Step(s, cfg.DtBase, 1)
				}
				return s
			}
			a, b := run(), run()
			Expect(a.Counts()).To(Equal(b.Counts()))
			Expect(countersOf(a)).To(Equal(countersOf(b)))
		})

		It("does not mutate the input state", func() {
			eng := newEngine(9)
			s, err := eng.Populate(eng.Reset(dynamo.ModeDefault), map[string]int64{"Muon": 50, "Gluon": 50})
			Expect(err).NotTo(HaveOccurred())
			before := s.Counts()

			for i := 0; i < 20; i++ {
				_, err := eng.Step(s, cfg.DtBase, 1)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(s.Counts()).To(Equal(before))
			Expect(s.Ticks()).To(BeZero())
		})
	})

	Context("with stable species only", func() {
		BeforeEach(func() {
			reg = particles.MustRegistry(
				particles.Species{Name: "Electron", Mass: 9.109e-31, Lifetime: particles.StableLifetime},
				particles.Species{Name: "Photon", Lifetime: particles.StableLifetime},
			)
			tables = reactions.NewTables()
			cfg.Fluctuations = false
		})

		It("never records a natural decay", func() {
			eng := newEngine(7)
			s, err := eng.Populate(eng.Reset(dynamo.ModeDefault), map[string]int64{"Electron": 100, "Photon": 100})
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 1000; i++ {
				s, _ = eng.Step(s, cfg.DtBase, dynamo.MaxMultiplier)
			}
			Expect(s.TotalDecayedNatural()).To(BeZero())
			Expect(s.Counts()).To(Equal(map[string]int64{"Electron": 100, "Photon": 100}))
		})
	})

	Describe("mode switching", func() {
		It("resets to the expanding defaults and back", func() {
			eng := newEngine(1)
			s := eng.Reset(dynamo.ModeDefault)
			for i := 0; i < 25; i++ {
				s, _ = eng.Step(s, cfg.DtBase, 1)
			}

			expanded := eng.ToggleMode(s)
			Expect(expanded.Mode()).To(Equal(dynamo.ModeExpanding))
			Expect(expanded.Volume()).To(Equal(0.1))
			Expect(expanded.Temperature()).To(Equal(1e12))
			Expect(expanded.Population()).To(BeZero())
			Expect(countersOf(expanded)).To(Equal(counters{}))

			Expect(eng.ToggleMode(expanded)).To(Equal(eng.Reset(dynamo.ModeDefault)))
		})
	})

	Describe("construction", func() {
		It("rejects tables naming unknown species", func() {
			tables = reactions.NewTables()
			Expect(tables.AddDecay("Muon", reactions.Outcome{"Axion"})).To(Succeed())

			_, err := dynamo.New(reg, tables, cfg, dynamo.NewRand(1))
			Expect(err).To(MatchError(reactions.ErrUnknownSpecies))
			var cfgErr *reactions.ConfigurationError
			Expect(err).To(BeAssignableToTypeOf(cfgErr))
		})

		It("requires a random source", func() {
			_, err := dynamo.New(reg, tables, cfg, nil)
			Expect(err).To(MatchError(dynamo.ErrInvalidConfig))
		})
	})
})
