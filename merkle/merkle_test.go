package merkle

import (
	"testing"

	"github.com/luxfi/fluxe/field"
	"github.com/stretchr/testify/require"
)

func TestIncrementalTreeBatchMatchesSequential(t *testing.T) {
	params := NewTreeParams(3)
	leaves := make([]field.F, 8)
	for i := range leaves {
		leaves[i] = field.FromUint64(uint64(i))
	}

	batchTree := NewIncrementalTree(params)
	batchPaths, err := batchTree.AppendBatch(leaves)
	require.NoError(t, err)

	seqTree := NewIncrementalTree(params)
	for _, l := range leaves {
		_, err := seqTree.Append(l)
		require.NoError(t, err)
	}

	require.True(t, batchTree.Root().Equal(seqTree.Root()))
	for _, p := range batchPaths {
		require.True(t, p.Verify(batchTree.Root()))
		require.True(t, p.Verify(seqTree.Root()))
	}
}

func TestMerklePathTamperFlipsFalse(t *testing.T) {
	params := NewTreeParams(3)
	tree := NewIncrementalTree(params)
	for i := 0; i < 4; i++ {
		_, err := tree.Append(field.FromUint64(uint64(i)))
		require.NoError(t, err)
	}
	path, err := tree.GetPath(2)
	require.NoError(t, err)
	require.True(t, path.Verify(tree.Root()))

	path.Siblings[0] = path.Siblings[0].Add(field.One())
	require.False(t, path.Verify(tree.Root()))
}

func TestIncrementalTreeOverflowIsFatal(t *testing.T) {
	params := NewTreeParams(2)
	tree := NewIncrementalTree(params)
	for i := 0; i < 4; i++ {
		_, err := tree.Append(field.FromUint64(uint64(i)))
		require.NoError(t, err)
	}
	_, err := tree.Append(field.FromUint64(99))
	require.ErrorIs(t, err, ErrTreeFull)
}

func TestSortedTreeNonMembership(t *testing.T) {
	params := NewTreeParams(4)
	tree := NewSortedTree(params)

	// sentinel at index 0 (key=0) brackets every positive key initially.
	_, err := tree.Insert(field.FromUint64(100), 0)
	require.NoError(t, err)
	_, err = tree.Insert(field.FromUint64(200), 1)
	require.NoError(t, err)
	_, err = tree.Insert(field.FromUint64(300), 2)
	require.NoError(t, err)

	rp, err := tree.ProveNonMembership(field.FromUint64(150))
	require.NoError(t, err)
	require.True(t, rp.LowLeaf.Key.Equal(field.FromUint64(100)))
	require.True(t, rp.LowLeaf.NextKey.Equal(field.FromUint64(200)))
	require.True(t, rp.Verify(tree.Root()))
}

func TestSortedTreeNonMembershipForExistingKeyFails(t *testing.T) {
	params := NewTreeParams(4)
	tree := NewSortedTree(params)
	_, err := tree.Insert(field.FromUint64(100), 0)
	require.NoError(t, err)

	_, err = tree.ProveNonMembership(field.FromUint64(100))
	require.Error(t, err)
}

func TestSortedTreeRejectsWrongPredecessor(t *testing.T) {
	params := NewTreeParams(4)
	tree := NewSortedTree(params)
	_, err := tree.Insert(field.FromUint64(100), 0)
	require.NoError(t, err)
	_, err = tree.Insert(field.FromUint64(200), 1)
	require.NoError(t, err)

	// 50 does not belong after the leaf for 200.
	_, err = tree.Insert(field.FromUint64(50), 2)
	require.Error(t, err)
}
