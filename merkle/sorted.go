package merkle

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// SortedLeaf is one node of the sorted linked list: key, the next
// greater key in the list, and that successor's tree index. NextKey
// == field.Zero() denotes the tail sentinel (§3, §4.6).
type SortedLeaf struct {
	Key       field.F
	NextKey   field.F
	NextIndex uint64
}

// Hash is the leaf's commitment to the tree, H(key, next_key,
// next_index).
func (l SortedLeaf) Hash() field.F {
	return poseidon.Hash(l.Key, l.NextKey, field.FromUint64(l.NextIndex))
}

// SortedTree holds leaves ordered as a linked list by Key, enabling
// both standard membership proofs and non-membership range proofs
// without ever reshuffling already-committed indices (an indexed
// Merkle tree, the construction named in §4.6). Index 0 always holds
// the zero-key sentinel that every tree starts with.
type SortedTree struct {
	params *TreeParams
	tree   *indexedTree
	leaves []SortedLeaf
}

// NewSortedTree builds a tree containing only the zero-key sentinel.
func NewSortedTree(params *TreeParams) *SortedTree {
	st := &SortedTree{params: params, tree: newIndexedTree(params)}
	sentinel := SortedLeaf{Key: field.Zero(), NextKey: field.Zero(), NextIndex: 0}
	st.leaves = append(st.leaves, sentinel)
	st.tree.count = 1
	st.tree.setLeaf(0, sentinel.Hash())
	return st
}

// NumLeaves reports the number of leaves, including the sentinel.
func (st *SortedTree) NumLeaves() uint64 { return uint64(len(st.leaves)) }

// GetLeaf returns the leaf at i, or false if out of range.
func (st *SortedTree) GetLeaf(i uint64) (SortedLeaf, bool) {
	if i >= uint64(len(st.leaves)) {
		return SortedLeaf{}, false
	}
	return st.leaves[i], true
}

// Root returns the tree's current root.
func (st *SortedTree) Root() field.F { return st.tree.root() }

// Insert splices a new leaf for key between the leaf at
// predecessorIndex and its current successor. The caller supplies the
// predecessor (§4.6: "insertion is O(log n) with a known predecessor
// lookup"); Insert validates that the supplied predecessor actually
// brackets key before mutating anything.
func (st *SortedTree) Insert(key field.F, predecessorIndex uint64) (*MerklePath, error) {
	if predecessorIndex >= uint64(len(st.leaves)) {
		return nil, ErrInvalidIndex
	}
	pred := st.leaves[predecessorIndex]
	if pred.Key.BigInt().Cmp(key.BigInt()) >= 0 {
		return nil, ErrCorrupted
	}
	if !pred.NextKey.IsZero() && pred.NextKey.BigInt().Cmp(key.BigInt()) <= 0 {
		return nil, ErrCorrupted
	}
	if uint64(len(st.leaves)) >= st.params.MaxLeaves() {
		return nil, ErrTreeFull
	}

	newIndex := uint64(len(st.leaves))
	newLeaf := SortedLeaf{Key: key, NextKey: pred.NextKey, NextIndex: pred.NextIndex}
	updatedPred := SortedLeaf{Key: pred.Key, NextKey: key, NextIndex: newIndex}

	st.leaves[predecessorIndex] = updatedPred
	st.leaves = append(st.leaves, newLeaf)
	st.tree.count++
	st.tree.setLeaf(predecessorIndex, updatedPred.Hash())
	st.tree.setLeaf(newIndex, newLeaf.Hash())

	return st.tree.path(newIndex), nil
}

// ProvePath returns the standard inclusion path for the leaf at i.
func (st *SortedTree) ProvePath(i uint64) (*MerklePath, error) {
	if i >= uint64(len(st.leaves)) {
		return nil, ErrInvalidIndex
	}
	return st.tree.path(i), nil
}

// RangePath is a non-membership witness: low_leaf brackets target
// from below, its Merkle path proves it is actually in the tree, and
// the gap condition (low_leaf.key < target < low_leaf.next_key, or
// low_leaf is the tail) proves no leaf for target exists.
type RangePath struct {
	LowLeaf SortedLeaf
	LowPath *MerklePath
	Target  field.F
}

// ProveNonMembership finds the bracketing predecessor for target and
// returns the corresponding RangePath. It fails if target is already
// present as some leaf's key (no predecessor brackets it).
func (st *SortedTree) ProveNonMembership(target field.F) (*RangePath, error) {
	for i, l := range st.leaves {
		if l.Key.BigInt().Cmp(target.BigInt()) >= 0 {
			continue
		}
		if l.NextKey.IsZero() || target.BigInt().Cmp(l.NextKey.BigInt()) < 0 {
			path := st.tree.path(uint64(i))
			return &RangePath{LowLeaf: l, LowPath: path, Target: target}, nil
		}
	}
	return nil, ErrInvalidIndex
}

// Verify checks the full non-membership argument: the low leaf
// matches its claimed Merkle path, the path folds to root, and the
// gap predicate (low_leaf.key < target ∧ (low_leaf.next_key == 0 ∨
// target < low_leaf.next_key)) holds.
func (rp *RangePath) Verify(root field.F) bool {
	if !rp.LowPath.Leaf.Equal(rp.LowLeaf.Hash()) {
		return false
	}
	if !rp.LowPath.Verify(root) {
		return false
	}
	lowLess := rp.LowLeaf.Key.BigInt().Cmp(rp.Target.BigInt()) < 0
	gapOK := rp.LowLeaf.NextKey.IsZero() || rp.Target.BigInt().Cmp(rp.LowLeaf.NextKey.BigInt()) < 0
	return lowLess && gapOK
}
