package records

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// IngressReceipt records an asset entering the system from an
// external chain, committed to a beneficiary note commitment (§3).
type IngressReceipt struct {
	AssetType     uint32
	Amount        field.Amount
	BeneficiaryCm field.F
	Nonce         uint64
	Aux           field.F
}

// Hash computes H(DOM_INGRESS, asset, amount, beneficiary_cm, nonce,
// aux). Nonce must be globally unique per receipt kind (§3).
func (r IngressReceipt) Hash() field.F {
	return poseidon.HashDomain(poseidon.DomainIngress,
		field.FromUint64(uint64(r.AssetType)), r.Amount.ToField(), r.BeneficiaryCm, field.FromUint64(r.Nonce), r.Aux)
}

// ExitReceipt records an asset leaving the system, committed to the
// nullifier of the note that was burned to produce it (§3).
type ExitReceipt struct {
	AssetType uint32
	Amount    field.Amount
	BurnedNf  field.F
	Nonce     uint64
	Aux       field.F
}

// Hash computes H(DOM_EXIT, asset, amount, burned_nf, nonce, aux).
func (r ExitReceipt) Hash() field.F {
	return poseidon.HashDomain(poseidon.DomainExit,
		field.FromUint64(uint64(r.AssetType)), r.Amount.ToField(), r.BurnedNf, field.FromUint64(r.Nonce), r.Aux)
}
