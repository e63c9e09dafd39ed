package gadget

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// VerifyWithFqCoords is the in-circuit Schnorr verifier (§4.10),
// taking the embedded curve's coordinates directly (as a circuit
// would allocate them as witnesses) rather than opaque point/key
// types. Coordinates are given in E's base field, which equals F;
// they are still routed through the canonical LE-bit pack/unpack
// recipe before entering the challenge hash, exactly mirroring
// schnorr.Sign/Verify's native recipe so both sides agree on every
// test vector (§4.5, §9).
func VerifyWithFqCoords(pkX, pkY, rX, rY, s field.F, msg []field.F) bool {
	var R, PK twistededwards.PointAffine
	R.X, R.Y = rX.Inner(), rY.Inner()
	PK.X, PK.Y = pkX.Inner(), pkY.Inner()
	if !R.IsOnCurve() || !PK.IsOnCurve() {
		return false
	}

	c := schnorrChallenge(rX, rY, pkX, pkY, msg)

	curve := twistededwards.GetEdwardsCurve()
	var lhs twistededwards.PointAffine
	lhs.ScalarMultiplication(&curve.Base, s.BigInt())

	var cPK twistededwards.PointAffine
	cPK.ScalarMultiplication(&PK, c.BigInt())

	var rhs twistededwards.PointAffine
	rhs.Add(&R, &cPK)

	return lhs.Equal(&rhs)
}

func fqToFr(c field.F) field.F {
	return field.FromBitsLE(c.ToBitsLE())
}

func schnorrChallenge(rX, rY, pkX, pkY field.F, msg []field.F) field.F {
	inputs := make([]field.F, 0, 4+len(msg))
	inputs = append(inputs, fqToFr(rX), fqToFr(rY), fqToFr(pkX), fqToFr(pkY))
	inputs = append(inputs, msg...)
	return poseidon.HashDomain(poseidon.DomainSchnorr, inputs...)
}
