// Package pedersen implements the additively homomorphic value
// commitment C = vG + rH used to hide note amounts while still
// letting a transaction circuit check that inputs balance outputs
// (§4.4). G and H are fixed, independently derived bn254 G1
// generators with no known discrete-log relationship between them.
package pedersen

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/luxfi/fluxe/field"
)

// Commitment wraps a bn254 G1 point.
type Commitment struct {
	p bn254.G1Affine
}

// Params holds the two independent generators G (for the value) and
// H (for the blinding factor).
type Params struct {
	G, H bn254.G1Affine
}

// DefaultParams derives G and H deterministically via hash-to-curve,
// so every process in the system agrees on the same generators
// without a trusted setup — mirroring the teacher's hashToG1-derived
// generator approach (zk/pedersen.go) but using gnark-crypto's
// standards-track HashToG1 instead of a hand-rolled try-and-increment
// loop.
func DefaultParams() (*Params, error) {
	g, err := bn254.HashToG1([]byte("FLUXE.pedersen.G.v1"), []byte("FLUXE-PEDERSEN-G1_XMD:SHA-256_SVDW_RO_"))
	if err != nil {
		return nil, fmt.Errorf("pedersen: derive G: %w", err)
	}
	h, err := bn254.HashToG1([]byte("FLUXE.pedersen.H.v1"), []byte("FLUXE-PEDERSEN-G1_XMD:SHA-256_SVDW_RO_"))
	if err != nil {
		return nil, fmt.Errorf("pedersen: derive H: %w", err)
	}
	return &Params{G: g, H: h}, nil
}

// Commit computes C = v*G + r*H for an amount v and blinding factor r.
func (p *Params) Commit(v field.Amount, r field.F) Commitment {
	var vG, rH bn254.G1Jac
	vG.ScalarMultiplication(&p.G, v.BigInt())
	rH.ScalarMultiplication(&p.H, r.BigInt())
	vG.AddAssign(&rH)
	var out bn254.G1Affine
	out.FromJacobian(&vG)
	return Commitment{p: out}
}

// Add returns the commitment to the sum of the two committed values
// (additive homomorphism, no knowledge of either opening required).
func Add(a, b Commitment) Commitment {
	var out bn254.G1Affine
	out.Add(&a.p, &b.p)
	return Commitment{p: out}
}

// Sub returns the commitment to the difference of the two committed
// values.
func Sub(a, b Commitment) Commitment {
	var negB bn254.G1Affine
	negB.Neg(&b.p)
	var out bn254.G1Affine
	out.Add(&a.p, &negB)
	return Commitment{p: out}
}

// Equal reports whether two commitments are to the same point.
func (c Commitment) Equal(other Commitment) bool {
	return c.p.Equal(&other.p)
}

// VerifyBalance checks that Σins - Σouts opens to zero value under a
// known net blinding factor rNet, i.e. Σins - Σouts == rNet*H. This is
// the core conservation check a transaction circuit performs without
// ever learning the individual amounts (§4.4).
func (p *Params) VerifyBalance(ins, outs []Commitment, rNet field.F) bool {
	sumIn := p.zero()
	for _, c := range ins {
		sumIn = Add(sumIn, c)
	}
	sumOut := p.zero()
	for _, c := range outs {
		sumOut = Add(sumOut, c)
	}
	diff := Sub(sumIn, sumOut)

	expected := p.Commit(field.AmountFromU64(0), rNet)
	return diff.Equal(expected)
}

// zero returns the identity commitment (0*G + 0*H), used as the fold
// seed when summing a commitment list.
func (p *Params) zero() Commitment {
	return p.Commit(field.AmountFromU64(0), field.Zero())
}

// Bytes returns the compressed 32-byte encoding of the commitment
// point, the form SetBytes decodes.
func (c Commitment) Bytes() [32]byte {
	return c.p.Bytes()
}

// SetBytes decodes a compressed commitment point.
func SetBytes(b [32]byte) (Commitment, error) {
	var p bn254.G1Affine
	if _, err := p.SetBytes(b[:]); err != nil {
		return Commitment{}, fmt.Errorf("pedersen: decode commitment: %w", err)
	}
	return Commitment{p: p}, nil
}
