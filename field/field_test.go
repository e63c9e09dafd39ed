package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWireRoundTrip(t *testing.T) {
	vals := []F{Zero(), One(), FromUint64(12345), FromUint64(^uint64(0))}
	for _, v := range vals {
		b := v.Bytes()
		got := SetBytes(b)
		require.True(t, v.Equal(got))
	}
}

func TestTruncatedRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0x39, 0x30}, // 12345 little-endian
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, // u64::MAX
	}
	for _, b := range cases {
		f := FromBytesTruncated(b)
		back := ToBytesTruncated(f)
		// re-deriving from the truncated bytes must reproduce f exactly,
		// since b already fits in 31 bytes.
		require.True(t, f.Equal(FromBytesTruncated(back[:])))
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[uint64]uint64{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 17: 32}
	for in, want := range cases {
		require.Equal(t, want, NextPowerOfTwo(in))
	}
}

func TestBitsLERoundTrip(t *testing.T) {
	vals := []F{Zero(), One(), FromUint64(0xdeadbeef), FromUint64(12345)}
	for _, v := range vals {
		bits := v.ToBitsLE()
		require.True(t, v.Equal(FromBitsLE(bits)))
	}
}

func TestFieldFitsAndProjectsU64(t *testing.T) {
	f := FromUint64(424242)
	require.True(t, FieldFitsU64(f))
	require.Equal(t, uint64(424242), FieldToU64(f))
}

func TestFieldRange(t *testing.T) {
	f := FromUint64(50)
	require.True(t, FieldRange(f, FromUint64(10), FromUint64(100)))
	require.False(t, FieldRange(f, FromUint64(60), FromUint64(100)))
}

func TestDeterministicFieldFromSeedIsStable(t *testing.T) {
	a := DeterministicFieldFromSeed("fluxe|poseidon|rc|0|0")
	b := DeterministicFieldFromSeed("fluxe|poseidon|rc|0|0")
	c := DeterministicFieldFromSeed("fluxe|poseidon|rc|0|1")
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestInverse(t *testing.T) {
	f := FromUint64(7)
	inv, err := f.Inverse()
	require.NoError(t, err)
	require.True(t, f.Mul(inv).Equal(One()))

	_, err = Zero().Inverse()
	require.Error(t, err)
}
