package merkle

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// hashPair is the single node-combination function every tree in this
// package uses, including the empty-hash ladder in TreeParams — the
// two must agree or a freshly-constructed empty tree's root would
// never match one built by appending and later trimming back to zero
// leaves.
func hashPair(left, right field.F) field.F {
	return poseidon.HashDomain(poseidon.DomainMerkle, left, right)
}

// MerklePath is a standard Merkle inclusion witness: the leaf at
// LeafIndex, plus one sibling per level. Index bits are little-endian
// — level i folds against bit i of LeafIndex, bit 0 meaning the
// current hash is the left child (§4.6 "bit-ordering contract").
type MerklePath struct {
	LeafIndex uint64
	Leaf      field.F
	Siblings  []field.F
}

// ComputeRoot folds the path from the leaf to the root.
func (mp *MerklePath) ComputeRoot() field.F {
	cur := mp.Leaf
	idx := mp.LeafIndex
	for _, sib := range mp.Siblings {
		if idx&1 == 0 {
			cur = hashPair(cur, sib)
		} else {
			cur = hashPair(sib, cur)
		}
		idx >>= 1
	}
	return cur
}

// Verify reports whether the path folds to root.
func (mp *MerklePath) Verify(root field.F) bool {
	return mp.ComputeRoot().Equal(root)
}
