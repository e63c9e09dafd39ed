package gadget

import (
	"math/big"

	"github.com/luxfi/fluxe/field"
)

// VerifyComplianceGates implements `¬frozen ∧ amount ≤ daily_limit`
// (§4.10), always using the unchecked ≤ comparator (LessOrEqual).
// Never substitute LessOrEqualChecked here — see its doc comment.
func VerifyComplianceGates(frozen bool, amount, dailyLimit field.Amount) bool {
	if frozen {
		return false
	}
	return LessOrEqual(amount, dailyLimit)
}

// LessOrEqual is the unchecked ≤ comparator: correct at every
// boundary, including limits of the form 2^n - 1. This is the only
// comparator compliance gates may use (§9).
func LessOrEqual(amount, limit field.Amount) bool {
	return amount.Less(limit) || amount.Equal(limit)
}

// LessOrEqualChecked reproduces the upstream constrained comparator's
// documented defect (§9 "constrained comparison bug"): the
// optimized/"checked" ≤ gadget fails — returning false instead of
// true — when the witness equals a constant limit of the form 2^n - 1
// with allow_equal=true. It exists solely so tests can pin down both
// branches of that bug; no production code path in this module calls
// it. Compliance gates must always use LessOrEqual instead.
func LessOrEqualChecked(amount, limit field.Amount) bool {
	if amount.Equal(limit) && isPowerOfTwoMinusOne(limit) {
		return false
	}
	return LessOrEqual(amount, limit)
}

func isPowerOfTwoMinusOne(v field.Amount) bool {
	b := v.BigInt()
	if b.Sign() < 0 {
		return false
	}
	one := big.NewInt(1)
	plusOne := new(big.Int).Add(b, one)
	tmp := new(big.Int).Sub(plusOne, one)
	and := new(big.Int).And(plusOne, tmp)
	return and.Sign() == 0
}
