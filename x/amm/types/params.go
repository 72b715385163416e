package types

import (
	"cosmossdk.io/math"
)

// Params holds the module's fee schedule and issuance pricing.
type Params struct {
	// LpFee is the liquidity-provider fee rate in parts per MaxPercent.
	LpFee uint64 `json:"lp_fee"`

	// OwnerFee is the operator fee rate in parts per MaxPercent.
	OwnerFee uint64 `json:"owner_fee"`

	// IssueCost is the exact deposit required to request LP token issuance.
	IssueCost math.Int `json:"issue_cost"`

	// IssueDenom is the denom the issue cost is paid in.
	IssueDenom string `json:"issue_denom"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		LpFee:      20,                            // 0.20%
		OwnerFee:   10,                            // 0.10%
		IssueCost:  math.NewIntWithDecimal(5, 16), // 0.05 native units
		IssueDenom: "upond",
	}
}

// TotalFee returns the combined fee rate charged on a trade.
func (p Params) TotalFee() uint64 {
	return p.LpFee + p.OwnerFee
}

// FeeScheduleValid reports whether a combined fee schedule stays below
// MaxPercent. Each rate is bounded on its own first so the uint64 sum cannot
// wrap around.
func FeeScheduleValid(lpFee, ownerFee uint64) bool {
	if lpFee >= MaxPercent || ownerFee >= MaxPercent {
		return false
	}
	return lpFee+ownerFee < MaxPercent
}

// Validate validates the set of params
func (p Params) Validate() error {
	if !FeeScheduleValid(p.LpFee, p.OwnerFee) {
		return ErrFeeTooHigh.Wrapf("lp fee %d plus owner fee %d must stay below %d", p.LpFee, p.OwnerFee, MaxPercent)
	}
	if p.IssueCost.IsNil() || p.IssueCost.IsNegative() {
		return ErrInvalidAmount.Wrap("issue cost must be non-negative")
	}
	if p.IssueDenom == "" {
		return ErrInvalidAmount.Wrap("issue denom cannot be empty")
	}
	return nil
}

// SplitForInput splits a charge-on-input trade amount into the LP share, the
// owner share and their sum. The total floors, so the trader is never
// over-charged, and the owner share is the remainder after the LP share so
// the components always reassemble into the total. Nothing collected goes
// untracked.
func (p Params) SplitForInput(amount math.Int) (lpAmount, ownerAmount, totalAmount math.Int) {
	maxPercent := math.NewIntFromUint64(MaxPercent)
	lpAmount = amount.Mul(math.NewIntFromUint64(p.LpFee)).Quo(maxPercent)
	totalAmount = amount.Mul(math.NewIntFromUint64(p.TotalFee())).Quo(maxPercent)
	ownerAmount = totalAmount.Sub(lpAmount)
	return lpAmount, ownerAmount, totalAmount
}

// SplitForOutput inverts the fee relation for a charge-on-output trade where
// amount is already net of fees: it returns the fee components that must be
// charged on top so that amount remains payable after the total fee is
// withheld from the gross output.
func (p Params) SplitForOutput(amount math.Int) (lpAmount, ownerAmount, totalAmount math.Int) {
	totalFee := p.TotalFee()
	if totalFee == 0 {
		zero := math.ZeroInt()
		return zero, zero, zero
	}

	totalFeeInt := math.NewIntFromUint64(totalFee)
	totalAmount = amount.Mul(totalFeeInt).Quo(math.NewIntFromUint64(MaxPercent - totalFee))
	lpAmount = totalAmount.Mul(math.NewIntFromUint64(p.LpFee)).Quo(totalFeeInt)
	ownerAmount = totalAmount.Sub(lpAmount)
	return lpAmount, ownerAmount, totalAmount
}
