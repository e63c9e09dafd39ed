package records

import (
	"fmt"

	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/merkle"
	"github.com/luxfi/fluxe/poseidon"
)

// SortedLeaf re-exports merkle.SortedLeaf: the sorted-tree leaf is
// both a Merkle-layer concern (merkle.SortedTree owns its hashing and
// linked-list splicing) and a data-model entity the rest of this
// module names (§3). A single definition in merkle avoids the two
// packages disagreeing on the leaf's hash formula.
type SortedLeaf = merkle.SortedLeaf

// StateRoots is the authority's entire persisted tree-root state,
// eight roots in a fixed, interface-stable order (§6).
type StateRoots struct {
	CmtRoot       field.F
	NftRoot       field.F
	ObjRoot       field.F
	CbRoot        field.F
	IngressRoot   field.F
	ExitRoot      field.F
	SanctionsRoot field.F
	PoolRulesRoot field.F
}

// Hash computes H(cmt, nft, obj, cb, ingress, exit, sanctions,
// pool_rules) in exactly that field order — changing the order would
// break every already-issued proof (§4.8, §6).
func (s StateRoots) Hash() field.F {
	return poseidon.Hash(
		s.CmtRoot, s.NftRoot, s.ObjRoot, s.CbRoot,
		s.IngressRoot, s.ExitRoot, s.SanctionsRoot, s.PoolRulesRoot,
	)
}

// BlockHeader is the batcher's committed state transition: the roots
// before and after a batch, the batch identifier, the aggregated
// proof bytes, and a timestamp (§6).
type BlockHeader struct {
	PrevRoots     StateRoots
	NewRoots      StateRoots
	BatchID       uint64
	AggProofBytes []byte
	Timestamp     uint64
}

// Supply tracks total minted/burned amounts across the system's
// lifetime (§4.8, from the original's types.rs::Supply).
type Supply struct {
	MintedTotal field.Amount
	BurnedTotal field.Amount
}

// ErrInsufficientBalance is returned by Burn when burning more than
// the current outstanding supply (§7).
var ErrInsufficientBalance = fmt.Errorf("records: insufficient balance")

// CurrentSupply is MintedTotal - BurnedTotal, saturating at zero.
func (s Supply) CurrentSupply() field.Amount {
	return s.MintedTotal.SaturatingSub(s.BurnedTotal)
}

// Mint saturating-adds a to MintedTotal.
func (s *Supply) Mint(a field.Amount) {
	s.MintedTotal = s.MintedTotal.SaturatingAdd(a)
}

// Burn fails with ErrInsufficientBalance when the current supply is
// less than a; otherwise it saturating-adds a to BurnedTotal.
func (s *Supply) Burn(a field.Amount) error {
	if s.CurrentSupply().Less(a) {
		return ErrInsufficientBalance
	}
	s.BurnedTotal = s.BurnedTotal.SaturatingAdd(a)
	return nil
}
