package field

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Amount is an unsigned 128-bit quantity. Arithmetic saturates or
// reports overflow explicitly rather than wrapping, matching the
// original's u128 wrapper semantics. It is backed by holiman/uint256
// (a 256-bit integer) constrained to its low 128 bits; the teacher
// pack uses the same type for EVM-width values, here scoped to ledger
// amounts instead of wei.
type Amount struct {
	v uint256.Int
}

var amountMax = func() uint256.Int {
	var m uint256.Int
	m.SetAllOne()
	m.Rsh(&m, 128)
	return m
}()

// MaxAmount is the largest representable Amount, 2^128 - 1.
func MaxAmount() Amount { return Amount{v: amountMax} }

// AmountFromU64 embeds a uint64 as an Amount.
func AmountFromU64(v uint64) Amount {
	var a Amount
	a.v.SetUint64(v)
	return a
}

// AmountFromU128 builds an Amount from explicit high/low 64-bit
// halves (hi holding bits 64-127).
func AmountFromU128(hi, lo uint64) Amount {
	var a Amount
	a.v.SetUint64(hi)
	a.v.Lsh(&a.v, 64)
	var low uint256.Int
	low.SetUint64(lo)
	a.v.Or(&a.v, &low)
	return a
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.v.IsZero() }

// Equal reports whether a and b hold the same value.
func (a Amount) Equal(b Amount) bool { return a.v.Eq(&b.v) }

// Less reports whether a < b.
func (a Amount) Less(b Amount) bool { return a.v.Lt(&b.v) }

// SaturatingAdd returns a+b, clamped to MaxAmount on overflow.
func (a Amount) SaturatingAdd(b Amount) Amount {
	var sum uint256.Int
	overflow := sum.AddOverflow(&a.v, &b.v)
	if overflow || sum.Gt(&amountMax) {
		return Amount{v: amountMax}
	}
	return Amount{v: sum}
}

// SaturatingSub returns a-b, clamped to zero on underflow.
func (a Amount) SaturatingSub(b Amount) Amount {
	var diff uint256.Int
	underflow := diff.SubOverflow(&a.v, &b.v)
	if underflow {
		return Amount{}
	}
	return Amount{v: diff}
}

// CheckedSub returns (a-b, true) when b <= a, or (0, false) on
// underflow — the fallible counterpart to SaturatingSub, used
// wherever an underflow must be rejected rather than silently
// clamped (e.g. Supply.Burn, §4.8).
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	if a.Less(b) {
		return Amount{}, false
	}
	var diff uint256.Int
	diff.Sub(&a.v, &b.v)
	return Amount{v: diff}, true
}

// ToField lossily projects the amount's low 64 bits into F. Amounts
// above math.MaxUint64 lose their high bits under this projection;
// the spec places such amounts out of contract for circuit use (§9
// "amount projection"), so callers that need full 128-bit fidelity on
// the wire must carry the Amount type itself, not its field
// projection.
func (a Amount) ToField() F {
	return FromUint64(a.v.Uint64())
}

// Bytes returns the canonical little-endian 16-byte encoding (low u64
// then high u64), the wire format used by Note and receipt records.
func (a Amount) Bytes() [16]byte {
	be := a.v.Bytes32()
	var out [16]byte
	// the low 128 bits live in the last 16 bytes of the 32-byte
	// big-endian representation; reverse them into little-endian.
	for i := 0; i < 16; i++ {
		out[i] = be[31-i]
	}
	return out
}

// SetAmountBytes decodes the little-endian 16-byte wire encoding
// produced by Bytes.
func SetAmountBytes(le [16]byte) Amount {
	var be [32]byte
	for i := 0; i < 16; i++ {
		be[31-i] = le[i]
	}
	var a Amount
	a.v.SetBytes(be[:])
	return a
}

// BigInt returns the amount's value as a big.Int, the form EC scalar
// multiplication (pedersen.Params.Commit) needs.
func (a Amount) BigInt() *big.Int { return a.v.ToBig() }

func (a Amount) String() string { return a.v.Dec() }

func (a Amount) GoString() string { return fmt.Sprintf("Amount(%s)", a.v.Dec()) }
