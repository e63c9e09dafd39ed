package merkle

import "github.com/luxfi/fluxe/field"

// IncrementalTree is the append-only tree behind the commitment,
// nullifier, ingress, and exit trees (§4.6).
type IncrementalTree struct {
	params *TreeParams
	tree   *indexedTree
	leaves []field.F
}

// NewIncrementalTree builds an empty tree for the given parameters.
func NewIncrementalTree(params *TreeParams) *IncrementalTree {
	return &IncrementalTree{params: params, tree: newIndexedTree(params)}
}

// NumLeaves reports how many leaves have been appended.
func (t *IncrementalTree) NumLeaves() uint64 { return uint64(len(t.leaves)) }

// GetLeaf returns the leaf at i, or false if i is out of range.
func (t *IncrementalTree) GetLeaf(i uint64) (field.F, bool) {
	if i >= uint64(len(t.leaves)) {
		return field.F{}, false
	}
	return t.leaves[i], true
}

// Append adds a single leaf and returns its inclusion path. Appending
// past MaxLeaves is fatal per §4.11.
func (t *IncrementalTree) Append(leaf field.F) (*MerklePath, error) {
	if uint64(len(t.leaves)) >= t.params.MaxLeaves() {
		return nil, ErrTreeFull
	}
	idx := uint64(len(t.leaves))
	t.leaves = append(t.leaves, leaf)
	t.tree.count++
	t.tree.setLeaf(idx, leaf)
	return t.tree.path(idx), nil
}

// AppendBatch appends leaves in order, matching the root that the
// same sequence of individual Append calls would produce (§8 scenario
// 1).
func (t *IncrementalTree) AppendBatch(leaves []field.F) ([]*MerklePath, error) {
	paths := make([]*MerklePath, 0, len(leaves))
	for _, leaf := range leaves {
		p, err := t.Append(leaf)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// GetPath recomputes the inclusion path for an already-appended leaf.
func (t *IncrementalTree) GetPath(i uint64) (*MerklePath, error) {
	if i >= uint64(len(t.leaves)) {
		return nil, ErrInvalidIndex
	}
	return t.tree.path(i), nil
}

// Root returns the tree's current root, or the empty root if no
// leaves have been appended.
func (t *IncrementalTree) Root() field.F {
	return t.tree.root()
}
