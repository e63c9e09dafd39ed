package gadget

import "github.com/luxfi/fluxe/field"

// CommitVar is intentionally unimplemented. An earlier revision of
// this gadget returned true unconditionally regardless of its inputs,
// which let a prover forge an in-circuit balance proof; it was removed
// rather than fixed because the constrained Pedersen add/scalar-mul
// primitives it needs are not exposed by this module's curve stack
// (§4.11). Calling it is a programmer error, not a runtime condition a
// caller can recover from, so it panics instead of returning a
// falsified bool or a swallowed error.
func CommitVar(value field.Amount, blinding field.F) field.F {
	panic("gadget: in-circuit Pedersen commitment is not available; see CommitVar doc comment")
}
