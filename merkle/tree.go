package merkle

import "github.com/luxfi/fluxe/field"

// indexedTree is the shared node-storage core behind both
// IncrementalTree and SortedTree. It stores only the nodes that have
// actually been written, keyed by (level, index); any untouched node
// reads back as the corresponding entry of TreeParams' empty-hash
// ladder. This keeps memory proportional to the number of leaves
// written rather than to 2^Height, which matters once Height grows
// past a handful of levels.
type indexedTree struct {
	params *TreeParams
	count  uint64
	nodes  []map[uint64]field.F
}

func newIndexedTree(params *TreeParams) *indexedTree {
	nodes := make([]map[uint64]field.F, params.Height+1)
	for i := range nodes {
		nodes[i] = make(map[uint64]field.F)
	}
	return &indexedTree{params: params, nodes: nodes}
}

func (t *indexedTree) nodeAt(level int, index uint64) field.F {
	if v, ok := t.nodes[level][index]; ok {
		return v
	}
	return t.params.emptyHashes[level]
}

// setLeaf writes a leaf at index and recomputes every ancestor up to
// the root.
func (t *indexedTree) setLeaf(index uint64, leaf field.F) {
	t.nodes[0][index] = leaf
	curIdx, curHash := index, leaf
	for level := 0; level < t.params.Height; level++ {
		var left, right field.F
		if curIdx%2 == 0 {
			left, right = curHash, t.nodeAt(level, curIdx+1)
		} else {
			left, right = t.nodeAt(level, curIdx-1), curHash
		}
		parentIdx := curIdx / 2
		parentHash := hashPair(left, right)
		t.nodes[level+1][parentIdx] = parentHash
		curIdx, curHash = parentIdx, parentHash
	}
}

func (t *indexedTree) root() field.F {
	if t.count == 0 {
		return t.params.EmptyRoot()
	}
	return t.nodeAt(t.params.Height, 0)
}

func (t *indexedTree) path(index uint64) *MerklePath {
	siblings := make([]field.F, t.params.Height)
	idx := index
	for level := 0; level < t.params.Height; level++ {
		siblings[level] = t.nodeAt(level, idx^1)
		idx >>= 1
	}
	return &MerklePath{LeafIndex: index, Leaf: t.nodeAt(0, index), Siblings: siblings}
}
