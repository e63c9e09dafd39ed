package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountCodecRoundTrip(t *testing.T) {
	cases := []Amount{
		AmountFromU64(0),
		AmountFromU64(1),
		AmountFromU128(0, 1<<63),
		AmountFromU128(1, 0),
		MaxAmount(),
	}
	for _, a := range cases {
		b := a.Bytes()
		got := SetAmountBytes(b)
		require.True(t, a.Equal(got))
	}
}

func TestAmountSaturatingAdd(t *testing.T) {
	require.True(t, MaxAmount().Equal(MaxAmount().SaturatingAdd(AmountFromU64(1))))
	require.True(t, AmountFromU64(3).Equal(AmountFromU64(1).SaturatingAdd(AmountFromU64(2))))
}

func TestAmountSaturatingSub(t *testing.T) {
	require.True(t, AmountFromU64(0).Equal(AmountFromU64(1).SaturatingSub(AmountFromU64(2))))
	require.True(t, AmountFromU64(1).Equal(AmountFromU64(3).SaturatingSub(AmountFromU64(2))))
}

func TestAmountCheckedSub(t *testing.T) {
	_, ok := AmountFromU64(1).CheckedSub(AmountFromU64(2))
	require.False(t, ok)

	got, ok := AmountFromU64(5).CheckedSub(AmountFromU64(2))
	require.True(t, ok)
	require.True(t, AmountFromU64(3).Equal(got))
}

func TestAmountToFieldProjectsLow64Bits(t *testing.T) {
	a := AmountFromU128(42, 99)
	require.True(t, FromUint64(99).Equal(a.ToField()))
}
