// Package particles provides the static species registry and the physical
// constants used by the reaction engine.
//
// A [Registry] is immutable once built and iterates in registration order.
// That order is part of the engine's determinism contract: two registries
// with the same species in a different order produce different draw
// sequences for the same seed.
//
//   - [Species]: a named particle type with mass, charge, spin and lifetime
//   - [Registry]: ordered, validated set of species
//   - [Standard]: the built-in 38-species vocabulary
//
// # Stability
//
// A species whose lifetime is at least [StableLifetime] never decays.
package particles
