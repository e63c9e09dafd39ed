package pedersen

import (
	"testing"

	"github.com/luxfi/fluxe/field"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T) *Params {
	t.Helper()
	p, err := DefaultParams()
	require.NoError(t, err)
	return p
}

func TestCommitDeterministic(t *testing.T) {
	p := mustParams(t)
	v := field.AmountFromU64(100)
	r := field.FromUint64(7)
	a := p.Commit(v, r)
	b := p.Commit(v, r)
	require.True(t, a.Equal(b))
}

func TestCommitHidesValue(t *testing.T) {
	p := mustParams(t)
	r := field.FromUint64(7)
	a := p.Commit(field.AmountFromU64(100), r)
	b := p.Commit(field.AmountFromU64(101), r)
	require.False(t, a.Equal(b))
}

func TestAdditiveHomomorphism(t *testing.T) {
	p := mustParams(t)
	r1, r2 := field.FromUint64(3), field.FromUint64(5)
	c1 := p.Commit(field.AmountFromU64(10), r1)
	c2 := p.Commit(field.AmountFromU64(20), r2)
	sum := Add(c1, c2)

	expected := p.Commit(field.AmountFromU64(30), r1.Add(r2))
	require.True(t, sum.Equal(expected))
}

func TestVerifyBalance(t *testing.T) {
	p := mustParams(t)
	rIn1, rIn2 := field.FromUint64(11), field.FromUint64(13)
	rOut := field.FromUint64(9)

	in1 := p.Commit(field.AmountFromU64(60), rIn1)
	in2 := p.Commit(field.AmountFromU64(40), rIn2)
	out := p.Commit(field.AmountFromU64(100), rOut)

	rNet := rIn1.Add(rIn2).Sub(rOut)
	require.True(t, p.VerifyBalance([]Commitment{in1, in2}, []Commitment{out}, rNet))

	wrongNet := rNet.Add(field.One())
	require.False(t, p.VerifyBalance([]Commitment{in1, in2}, []Commitment{out}, wrongNet))
}

func TestCommitmentWireRoundTrip(t *testing.T) {
	p := mustParams(t)
	c := p.Commit(field.AmountFromU64(42), field.FromUint64(9))
	b := c.Bytes()
	got, err := SetBytes(b)
	require.NoError(t, err)
	require.True(t, c.Equal(got))
}
