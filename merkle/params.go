// Package merkle implements the append-only commitment/nullifier
// trees and the sorted, linked-list-ordered tree that backs
// non-membership and range proofs (§4.6).
package merkle

import "github.com/luxfi/fluxe/field"

// TreeParams fixes a tree's height and precomputes the empty-hash
// ladder: emptyHashes[0] = 0, emptyHashes[i] = hashPair(emptyHashes[i-1],
// emptyHashes[i-1]), i.e. H(DOM_MERKLE, emptyHashes[i-1],
// emptyHashes[i-1]). It is immutable after construction and freely
// shareable across trees and goroutines (§5).
type TreeParams struct {
	Height      int
	emptyHashes []field.F
}

// NewTreeParams builds the empty-hash ladder for the given height.
func NewTreeParams(height int) *TreeParams {
	eh := make([]field.F, height+1)
	eh[0] = field.Zero()
	for i := 1; i <= height; i++ {
		eh[i] = hashPair(eh[i-1], eh[i-1])
	}
	return &TreeParams{Height: height, emptyHashes: eh}
}

// EmptyRoot is the root of a tree with no leaves at all.
func (p *TreeParams) EmptyRoot() field.F {
	return p.emptyHashes[p.Height]
}

// MaxLeaves is 2^Height.
func (p *TreeParams) MaxLeaves() uint64 {
	return uint64(1) << uint(p.Height)
}
