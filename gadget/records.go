package gadget

import (
	"github.com/luxfi/fluxe/field"
	"github.com/luxfi/fluxe/records"
)

// The record variable types below allocate as witnesses from a native
// record and expose hash()/commitment() matching the native formula
// exactly (§4.10). Boolean fields (ComplianceState.Frozen) are
// conditionally selected into {1,0} before hashing — the same rule
// ComplianceState.Hash already applies natively, which is why these
// wrappers simply delegate rather than re-deriving the formula.

// NoteVar wraps a Note for the circuit boundary.
type NoteVar struct{ Note records.Note }

func (v NoteVar) Commitment() field.F { return v.Note.Commitment() }

// ZkObjectVar wraps a ZkObject.
type ZkObjectVar struct{ Object records.ZkObject }

func (v ZkObjectVar) Commitment() field.F { return v.Object.Commitment() }

// ComplianceStateVar wraps a ComplianceState.
type ComplianceStateVar struct{ State records.ComplianceState }

func (v ComplianceStateVar) Hash() field.F { return v.State.Hash() }

// IngressReceiptVar wraps an IngressReceipt.
type IngressReceiptVar struct{ Receipt records.IngressReceipt }

func (v IngressReceiptVar) Hash() field.F { return v.Receipt.Hash() }

// ExitReceiptVar wraps an ExitReceipt.
type ExitReceiptVar struct{ Receipt records.ExitReceipt }

func (v ExitReceiptVar) Hash() field.F { return v.Receipt.Hash() }

// CallbackEntryVar wraps a CallbackEntry.
type CallbackEntryVar struct{ Entry records.CallbackEntry }

func (v CallbackEntryVar) Hash() field.F { return v.Entry.Hash() }

// CallbackInvocationVar wraps a CallbackInvocation.
type CallbackInvocationVar struct{ Invocation records.CallbackInvocation }

func (v CallbackInvocationVar) Hash() field.F { return v.Invocation.Hash() }
