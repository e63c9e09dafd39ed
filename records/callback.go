package records

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/poseidon"
)

// CallbackPackage is what a service provider hands an owner: a ticket
// plus the method to invoke, its expiry, and the material needed to
// encrypt a result back to the owner. It is distinct from
// CallbackEntry — the original data model's data_structures/
// callback.rs keeps the two separate, and this module preserves that
// split rather than folding them together (§5).
type CallbackPackage struct {
	Ticket   field.F
	MethodID uint32
	Expiry   uint64
	EncKey   field.F
	ComRand  field.F
}

// Commit computes H(DOM_CB, ticket, method_id, expiry, enc_key,
// com_rand) — the value a provider can publish to prove it issued
// this package without revealing it (§4.9).
func (p CallbackPackage) Commit() field.F {
	return poseidon.HashDomain(poseidon.DomainCallback,
		p.Ticket, field.FromUint64(uint64(p.MethodID)), field.FromUint64(p.Expiry), p.EncKey, p.ComRand)
}

// ToEntry links this package into an owner's callback list, pointing
// at the current head so the new entry becomes the list's head.
func (p CallbackPackage) ToEntry(priorHead field.F) CallbackEntry {
	return CallbackEntry{MethodID: p.MethodID, Expiry: p.Expiry, Ticket: p.Ticket, NextHash: priorHead}
}

// CallbackEntry is one link of the hash-linked list rooted at
// ZkObject.CBHeadHash (§3, §4.9).
type CallbackEntry struct {
	MethodID uint32
	Expiry   uint64
	Ticket   field.F
	NextHash field.F
}

// Hash computes H(DOM_CB, method_id, expiry, ticket, next_hash).
func (e CallbackEntry) Hash() field.F {
	return poseidon.HashDomain(poseidon.DomainCallback,
		field.FromUint64(uint64(e.MethodID)), field.FromUint64(e.Expiry), e.Ticket, e.NextHash)
}

// Expired reports whether the entry has passed its expiry at now.
func (e CallbackEntry) Expired(now uint64) bool {
	return now >= e.Expiry
}

// CallbackInvocation records a provider actually exercising a
// callback: which ticket, when, and a commitment to the result
// delivered to the owner. Kept as a first-class hashed record
// (supplemented from the original's callback model, §5) so an
// object-update circuit can prove a callback was processed rather
// than merely expired off the list.
type CallbackInvocation struct {
	Ticket     field.F
	InvokedAt  uint64
	ResultHash field.F
}

// Hash computes H(DOM_CB, ticket, invoked_at, result_hash).
func (i CallbackInvocation) Hash() field.F {
	return poseidon.HashDomain(poseidon.DomainCallback, i.Ticket, field.FromUint64(i.InvokedAt), i.ResultHash)
}
