// Package dynamo provides the reaction engine for particle-population
// simulation.
//
// The package defines the population state and the four-phase tick that
// advances it:
//
//   - [State]: per-species counts plus thermodynamic aggregates
//   - [Engine]: applies creation/annihilation, decay, interaction and
//     aggregate derivation, in that order
//   - [ExpansionLaw]: volume growth used in [ModeExpanding]
//   - [RadiationDensity], [GravitationalPotential]: derived observables
//
// # Example
//
//	reg := particles.Standard()
//	eng, err := dynamo.New(reg, reactions.Standard(), dynamo.DefaultConfig(), dynamo.NewRand(42))
//	s := eng.Reset(dynamo.ModeDefault)
//	s, err = eng.Step(s, 0.1, 1)
//
// # Determinism
//
// Every random draw of a tick comes from the engine's single [Source], in
// phase order, iterating species in registry order and interactions in
// table order. Replaying the same seed replays the same run.
//
// # Thread Safety
//
// An Engine is NOT thread-safe; it is driven by exactly one loop. States
// returned by [Engine.Step] are fresh snapshots and are never mutated
// afterwards, so they may be read from other goroutines.
package dynamo
