package poseidon

import "github.com/luxfi/fluxe/field"

// Domain tags namespace the role-specific hash calls (those made
// through HashDomain) so that, e.g.,
// a note commitment and a nullifier can never collide even when fed
// the same underlying inputs. Each tag is an ASCII string mapped into
// F via the 31-byte truncation codec (§4.3).
type Domain string

const (
	DomainNote     Domain = "FLUXE.note.commitment.v1"
	DomainNullfier Domain = "FLUXE.note.nullifier.v1"
	DomainObject   Domain = "FLUXE.object.commitment.v1"
	DomainCallback Domain = "FLUXE.object.callback.v1"
	DomainPool     Domain = "FLUXE.pool.rules.v1"
	DomainExit     Domain = "FLUXE.exit.receipt.v1"
	DomainIngress  Domain = "FLUXE.ingress.receipt.v1"
	DomainLineage  Domain = "FLUXE.lineage.v1"
	DomainMerkle   Domain = "FLUXE.merkle.node.v1"
	DomainSchnorr  Domain = "FLUXE.schnorr.challenge.v1"
)

// Field projects a domain tag into F via the 31-byte truncation rule,
// the same mapping applied to ψ and jurisdiction bits elsewhere.
func (d Domain) Field() field.F {
	return field.FromBytesTruncated([]byte(d))
}
