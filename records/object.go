package records

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// ZkObject is the per-owner compliance state carried forward across
// every transaction that touches that owner (§3).
type ZkObject struct {
	StateHash  field.F
	Serial     uint64
	CBHeadHash field.F
}

// Commitment computes obj_cm = H(DOM_OBJ, state_hash, serial,
// cb_head_hash). Serial must strictly increase on every transition
// the caller applies; this type does not enforce that itself (it is a
// pure record), the object-update circuit does.
func (o ZkObject) Commitment() field.F {
	return poseidon.HashDomain(poseidon.DomainObject, o.StateHash, field.FromUint64(o.Serial), o.CBHeadHash)
}

// ComplianceState is the policy-relevant state a ZkObject's
// state_hash ultimately commits to: KYC level, risk score, freeze
// flag, review timestamp, jurisdiction bitset, spend limits, and a
// free-form reputation leaf (§3; RepHash is a supplemented field from
// the original data model, carried through hashing unchanged with no
// attached policy logic).
type ComplianceState struct {
	Level            uint8
	RiskScore        uint16
	Frozen           bool
	LastReviewTime   uint64
	JurisdictionBits [32]byte
	DailyLimit       field.Amount
	MonthlyLimit     field.Amount
	YearlyLimit      field.Amount
	RepHash          field.F
}

// Hash computes H(level, risk, frozen∈{0,1}, last_review,
// jurisdiction, daily_limit, monthly_limit, yearly_limit, rep_hash).
// Jurisdiction bits are mapped via the same 31-byte truncation rule
// used in-circuit (§3).
func (c ComplianceState) Hash() field.F {
	frozen := field.Zero()
	if c.Frozen {
		frozen = field.One()
	}
	return poseidon.Hash(
		field.FromUint64(uint64(c.Level)),
		field.FromUint64(uint64(c.RiskScore)),
		frozen,
		field.FromUint64(c.LastReviewTime),
		field.FromBytesTruncated(c.JurisdictionBits[:]),
		c.DailyLimit.ToField(),
		c.MonthlyLimit.ToField(),
		c.YearlyLimit.ToField(),
		c.RepHash,
	)
}
