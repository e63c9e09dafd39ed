// Package fluxe is the consumer-facing boundary of the ledger core
// (§6): the functions a transaction circuit or its native counterpart
// calls to commit notes and objects, derive nullifiers, and hash
// compliance state, plus the error taxonomy those callers match on.
// Merkle tree operations are not wrapped here; callers use the merkle
// package directly, whose error values this package re-exports.
//
// Everything here is a thin facade over records (and merkle, for its
// errors) — it holds no state of its own and performs no I/O.
package fluxe

import (
	"errors"
	"fmt"

	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/merkle"
	"github.com/luxfi/fluxe/records"
)

// TransactionType distinguishes the shapes of transaction a block can
// carry, each exercising a different subset of the trees and records
// above (§3, §6).
type TransactionType uint8

const (
	// TxTransfer spends notes and creates new notes under value-balance
	// and compliance constraints.
	TxTransfer TransactionType = iota
	// TxIngress mints a note against an external deposit, recording an
	// IngressReceipt.
	TxIngress
	// TxExit burns a note against an external withdrawal, recording an
	// ExitReceipt.
	TxExit
	// TxObjectUpdate transitions a ZkObject's state hash and serial.
	TxObjectUpdate
	// TxCallback registers or invokes a CallbackPackage/CallbackEntry.
	TxCallback
)

func (t TransactionType) String() string {
	switch t {
	case TxTransfer:
		return "transfer"
	case TxIngress:
		return "ingress"
	case TxExit:
		return "exit"
	case TxObjectUpdate:
		return "object_update"
	case TxCallback:
		return "callback"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Sentinel errors matching the taxonomy in §7. Kind-specific payloads
// (the nullifier in a double-spend, the gate message in a compliance
// violation) are attached with fmt.Errorf's %w so callers can still
// errors.Is against the sentinel.
var (
	ErrInvalidProof        = errors.New("fluxe: invalid proof")
	ErrDoubleSpend         = errors.New("fluxe: nullifier already present")
	ErrInsufficientBalance = errors.New("fluxe: insufficient balance")
	ErrComplianceViolation = errors.New("fluxe: compliance gate failed")
	ErrInvalidMerklePath   = errors.New("fluxe: merkle path does not verify")
	ErrSerialization       = errors.New("fluxe: serialization error")
)

// DoubleSpendError reports the offending nullifier alongside
// ErrDoubleSpend.
type DoubleSpendError struct {
	Nullifier field.F
}

func (e *DoubleSpendError) Error() string {
	return fmt.Sprintf("fluxe: nullifier %s already present", e.Nullifier)
}

func (e *DoubleSpendError) Unwrap() error { return ErrDoubleSpend }

// ComplianceViolationError carries the human-readable reason a
// compliance gate failed (level, limit, freeze, or sanctions list)
// alongside ErrComplianceViolation.
type ComplianceViolationError struct {
	Reason string
}

func (e *ComplianceViolationError) Error() string {
	return fmt.Sprintf("fluxe: compliance violation: %s", e.Reason)
}

func (e *ComplianceViolationError) Unwrap() error { return ErrComplianceViolation }

// TreeError re-exports the merkle package's taxonomy under the
// top-level facade, since §7 lists tree failures alongside the rest
// of the error surface a caller must match on.
type TreeError = error

var (
	ErrTreeFull      = merkle.ErrTreeFull
	ErrInvalidIndex  = merkle.ErrInvalidIndex
	ErrInvalidDepth  = merkle.ErrInvalidDepth
	ErrTreeDuplicate = merkle.ErrDuplicate
	ErrTreeCorrupted = merkle.ErrCorrupted
)

// CommitNote computes a note's commitment (§6).
func CommitNote(note records.Note) field.F {
	return note.Commitment()
}

// Nullify derives the nullifier for a spent note under secret key sk
// (§6).
func Nullify(sk, cm field.F, psi [32]byte) field.F {
	return records.Nullify(sk, cm, psi)
}

// CommitObject computes a ZkObject's commitment (§6).
func CommitObject(obj records.ZkObject) field.F {
	return obj.Commitment()
}

// HashCompliance computes a ComplianceState's hash (§6).
func HashCompliance(state records.ComplianceState) field.F {
	return state.Hash()
}
