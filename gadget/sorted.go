package gadget

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/merkle"
)

// SortedLeafVar mirrors merkle.SortedLeaf's hash and exposes the
// non-membership gap predicate as a boolean-returning function
// (§4.10).
type SortedLeafVar struct {
	Leaf merkle.SortedLeaf
}

// Hash matches merkle.SortedLeaf.Hash exactly.
func (v SortedLeafVar) Hash() field.F {
	return v.Leaf.Hash()
}

// ContainsGap implements `v > key ∧ (next_key == 0 ∨ v < next_key)` —
// the predicate a circuit constrains when proving target falls in the
// gap this leaf brackets.
func (v SortedLeafVar) ContainsGap(target field.F) bool {
	keyLess := v.Leaf.Key.BigInt().Cmp(target.BigInt()) < 0
	gapOK := v.Leaf.NextKey.IsZero() || target.BigInt().Cmp(v.Leaf.NextKey.BigInt()) < 0
	return keyLess && gapOK
}

// RangePathVar binds a leaf hash, its Merkle proof, and the gap
// predicate into one non-membership check (§4.10).
type RangePathVar struct {
	rangePath *merkle.RangePath
}

// NewRangePathVar allocates a gadget view over a native range path.
func NewRangePathVar(rp *merkle.RangePath) RangePathVar {
	return RangePathVar{rangePath: rp}
}

// Verify checks the same three conditions merkle.RangePath.Verify
// does: leaf-hash binding, Merkle inclusion, and the gap predicate.
func (v RangePathVar) Verify(root field.F) bool {
	return v.rangePath.Verify(root)
}
