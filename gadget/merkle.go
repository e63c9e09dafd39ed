package gadget

import (
	"fmt"

	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/merkle"
)

// MerklePathVar is the circuit-side counterpart of merkle.MerklePath:
// identical index-bit discipline, exposed as the four operations
// §4.10 names (compute_root, verify, enforce_valid,
// compute_root_with_leaf).
type MerklePathVar struct {
	path *merkle.MerklePath
}

// NewMerklePathVar allocates a gadget view over a native path.
func NewMerklePathVar(path *merkle.MerklePath) MerklePathVar {
	return MerklePathVar{path: path}
}

// ComputeRoot folds the path to its root.
func (v MerklePathVar) ComputeRoot() field.F {
	return v.path.ComputeRoot()
}

// Verify reports whether the path folds to root.
func (v MerklePathVar) Verify(root field.F) bool {
	return v.path.Verify(root)
}

// EnforceValid is the constrained form of Verify: a real circuit
// enforces the boolean via an equality constraint against the
// constant 1; here, with no constraint system to attach to, it
// surfaces the same failure as an error instead of silently
// continuing (§4.11: "gadgets return SynthesisError only on
// allocation failure; logical falsity is a boolean output the caller
// enforces" — this is that enforcement, performed explicitly since
// there is no prover to perform it for us).
func (v MerklePathVar) EnforceValid(root field.F) error {
	if !v.Verify(root) {
		return fmt.Errorf("gadget: merkle path does not fold to the given root")
	}
	return nil
}

// ComputeRootWithLeaf recomputes the root as if the leaf at this
// path's index were newLeaf instead, reusing the same siblings — the
// update-proof operation a circuit uses to prove an in-place leaf
// transition (e.g. ZkObject or SortedLeaf updates) without a second
// full path.
func (v MerklePathVar) ComputeRootWithLeaf(newLeaf field.F) field.F {
	updated := &merkle.MerklePath{LeafIndex: v.path.LeafIndex, Leaf: newLeaf, Siblings: v.path.Siblings}
	return updated.ComputeRoot()
}
