package entropy

import (
	"testing"

	"github.com/luxfi/fluxe/field"
	"github.com/stretchr/testify/require"
)

func TestKDFDeterministic(t *testing.T) {
	a, err := KDF([]byte("secret"), []byte("info"), 48)
	require.NoError(t, err)
	b, err := KDF([]byte("secret"), []byte("info"), 48)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 48)
}

func TestKDFDistinctInfo(t *testing.T) {
	a, err := KDF([]byte("secret"), []byte("info-a"), 32)
	require.NoError(t, err)
	b, err := KDF([]byte("secret"), []byte("info-b"), 32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDeriveNoteEntropyDeterministicAndSensitiveToNonce(t *testing.T) {
	secret := field.FromUint64(7)
	var n1, n2 [32]byte
	n1[0] = 1
	n2[0] = 2

	a, err := DeriveNoteEntropy(secret, n1)
	require.NoError(t, err)
	b, err := DeriveNoteEntropy(secret, n1)
	require.NoError(t, err)
	c, err := DeriveNoteEntropy(secret, n2)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestDeriveMemoKey(t *testing.T) {
	var shared [32]byte
	shared[0] = 0xaa
	k1, err := DeriveMemoKey(shared)
	require.NoError(t, err)
	k2, err := DeriveMemoKey(shared)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
}
