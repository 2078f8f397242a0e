// Package reactions holds the static decay and interaction tables consumed by
// the reaction engine.
//
// Interaction reactants are stored in canonical (sorted) order and looked up
// through [Key], so ("Electron", "Photon") and ("Photon", "Electron") name
// the same channel. Interactions iterate in insertion order; that order is
// part of the engine's determinism contract.
//
// Tables are checked against a species registry with [Validate] before an
// engine is built. A table that names an unregistered species is a
// [ConfigurationError].
package reactions
