// Package lineage implements the bounded-depth rolling hash that
// binds a note to its ancestry without letting the chain grow
// unboundedly (§4.7).
package lineage

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// Accumulator tracks a note lineage's rolling hash and depth against
// a fixed horizon. Once depth reaches horizon, the next update resets
// the chain rather than growing it further.
type Accumulator struct {
	Hash    field.F
	Depth   uint32
	Horizon uint32
}

// NewAccumulator starts a fresh accumulator at depth 0.
func NewAccumulator(horizon uint32) *Accumulator {
	return &Accumulator{Hash: field.Zero(), Depth: 0, Horizon: horizon}
}

// Update folds parents into the accumulator. If Depth has already
// reached Horizon, the accumulator resets to (hash=0, depth=0) first,
// so the update that follows a reset always produces Depth == 1.
func (a *Accumulator) Update(parents []field.F) {
	if a.Depth >= a.Horizon {
		a.Hash = field.Zero()
		a.Depth = 0
	}
	inputs := make([]field.F, 0, len(parents)+2)
	inputs = append(inputs, parents...)
	inputs = append(inputs, a.Hash, field.FromUint64(uint64(a.Depth)))
	a.Hash = poseidon.HashDomain(poseidon.DomainLineage, inputs...)
	a.Depth++
}

// ComputeLineageHash is the free-function, stateless form (§4.7):
// returns field.Zero() once currentDepth has reached horizon,
// otherwise H(DOM_LINEAGE, parents…, currentDepth). Unlike Accumulator.Update it
// takes no prior-hash input — it is the formula a verifier uses to
// check a single claimed step in isolation, not to replay a whole
// chain.
func ComputeLineageHash(parents []field.F, horizon, currentDepth uint32) field.F {
	if currentDepth >= horizon {
		return field.Zero()
	}
	inputs := make([]field.F, 0, len(parents)+1)
	inputs = append(inputs, parents...)
	inputs = append(inputs, field.FromUint64(uint64(currentDepth)))
	return poseidon.HashDomain(poseidon.DomainLineage, inputs...)
}

// VerifyLineage reports whether a claimed hash is consistent with
// having just crossed horizon: once currentDepth reaches horizon, the
// accumulated hash must have been reset to zero, so the only valid
// claimed hash is field.Zero(). Below horizon any hash is structurally
// valid (the caller who needs the exact value uses ComputeLineageHash
// or replays Accumulator.Update instead).
func VerifyLineage(claimedHash field.F, horizon, currentDepth uint32) bool {
	if currentDepth >= horizon {
		return claimedHash.IsZero()
	}
	return true
}
