// Package records implements every hashed data-model entity the
// ledger core exchanges with the transaction circuits: notes,
// nullifiers, the per-owner compliance object, callbacks, ingress/
// exit receipts, the sorted non-membership leaf, and the persisted
// state-root/block-header wire types (§3, §4.8, §4.9, §6).
package records

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// Note is a UTXO-style private balance record. Its commitment binds
// every field via Poseidon under the note domain (§3).
type Note struct {
	AssetType      uint32
	Value          field.Amount
	OwnerAddr      field.F
	Psi            [32]byte
	ChainHint      uint32
	ComplianceHash field.F
	LineageHash    field.F
	PoolID         uint32
	CallbacksHash  field.F
	MemoHash       field.F
}

// Commitment computes cm = H(DOM_NOTE, asset, value, owner, ψ,
// chain_hint, compliance_hash, lineage_hash, pool_id, callbacks_hash,
// memo_hash). ψ is mapped into F via the 31-byte truncation rule
// before hashing (§9 "entropy handling") — its 32nd byte never enters
// the hash.
func (n Note) Commitment() field.F {
	return poseidon.HashDomain(poseidon.DomainNote,
		field.FromUint64(uint64(n.AssetType)),
		n.Value.ToField(),
		n.OwnerAddr,
		field.FromBytesTruncated(n.Psi[:]),
		field.FromUint64(uint64(n.ChainHint)),
		n.ComplianceHash,
		n.LineageHash,
		field.FromUint64(uint64(n.PoolID)),
		n.CallbacksHash,
		n.MemoHash,
	)
}

// Nullify computes this note's nullifier under owner secret sk, nf =
// H(DOM_NF, sk, cm, ψ). Exactly one nullifier exists per spent note
// (§3 Nullifier).
func (n Note) Nullify(sk field.F) field.F {
	return Nullify(sk, n.Commitment(), n.Psi)
}

// Nullify is the free-function form, usable when only (sk, cm, ψ) are
// known and the full Note is not reconstructed.
func Nullify(sk, cm field.F, psi [32]byte) field.F {
	return poseidon.HashDomain(poseidon.DomainNullfier, sk, cm, field.FromBytesTruncated(psi[:]))
}
