package types

import (
	"cosmossdk.io/math"
)

// Pure constant-product pricing. All functions floor-divide except
// AmountInNoFee, whose +1 ceiling bias guarantees the pool never
// under-receives on a fixed-output quote. None of them touch module state.

// Quote converts an amount of one pooled asset into the other at the spot
// reserve ratio: floor(amount * reserveTo / reserveFrom).
func Quote(amount, reserveFrom, reserveTo math.Int) (math.Int, error) {
	if err := validatePricingInputs(amount, reserveFrom, reserveTo); err != nil {
		return math.Int{}, err
	}
	return amount.Mul(reserveTo).Quo(reserveFrom), nil
}

// AmountOutNoFee returns the constant-product output for a fixed input,
// before fees: floor(amountIn * reserveOut / (reserveIn + amountIn)).
func AmountOutNoFee(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if err := validatePricingInputs(amountIn, reserveIn, reserveOut); err != nil {
		return math.Int{}, err
	}
	return amountIn.Mul(reserveOut).Quo(reserveIn.Add(amountIn)), nil
}

// AmountInNoFee returns the constant-product input required for a fixed
// output, before fees: floor(reserveIn * amountOut / (reserveOut -
// amountOut)) + 1. The trailing +1 rounds the requirement up so floor
// division can never short the pool. Fails when amountOut would drain the
// whole output reserve.
func AmountInNoFee(amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	if err := validatePricingInputs(amountOut, reserveIn, reserveOut); err != nil {
		return math.Int{}, err
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf(
			"requested output %s not below reserve %s", amountOut, reserveOut)
	}
	return reserveIn.Mul(amountOut).Quo(reserveOut.Sub(amountOut)).AddRaw(1), nil
}

func validatePricingInputs(amount, reserveA, reserveB math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	if reserveA.IsNil() || reserveB.IsNil() || !reserveA.IsPositive() || !reserveB.IsPositive() {
		return ErrInsufficientLiquidity.Wrap("reserves must be positive")
	}
	return nil
}
