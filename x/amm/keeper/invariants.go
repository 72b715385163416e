package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "non-negative-reserves", NonNegativeReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "fee-schedule", FeeScheduleInvariant(k))
	ir.RegisterRoute(types.ModuleName, "unique-pairs", UniquePairsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "active-pairs-funded", ActivePairsFundedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "shares-supply", SharesSupplyInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := NonNegativeReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = FeeScheduleInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = UniquePairsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ActivePairsFundedInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return SharesSupplyInvariant(k)(ctx)
	}
}

// NonNegativeReservesInvariant checks that no pair carries a negative reserve
// or LP supply.
func NonNegativeReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pair := range k.GetAllPairs(ctx) {
			if pair.LiquidityToken.IsNegative() || pair.LiquidityBase.IsNegative() || pair.LpSupply.IsNegative() {
				return sdk.FormatInvariant(types.ModuleName, "non-negative-reserves",
					fmt.Sprintf("pair %d has negative balances: token %s, base %s, lp %s",
						pair.Id, pair.LiquidityToken, pair.LiquidityBase, pair.LpSupply)), true
			}
		}
		return "", false
	}
}

// FeeScheduleInvariant checks that the combined fee rate stays below
// MaxPercent.
func FeeScheduleInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "fee-schedule", err.Error()), true
		}
		if !types.FeeScheduleValid(params.LpFee, params.OwnerFee) {
			return sdk.FormatInvariant(types.ModuleName, "fee-schedule",
				fmt.Sprintf("lp fee %d plus owner fee %d reaches %d",
					params.LpFee, params.OwnerFee, types.MaxPercent)), true
		}
		return "", false
	}
}

// UniquePairsInvariant checks that no two pairs trade the same unordered
// denom pair.
func UniquePairsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pairs := k.GetAllPairs(ctx)
		for i, pair := range pairs {
			for _, other := range pairs[:i] {
				if pair.Matches(other.Token, other.BaseToken) {
					return sdk.FormatInvariant(types.ModuleName, "unique-pairs",
						fmt.Sprintf("pairs %d and %d both trade %s/%s",
							other.Id, pair.Id, pair.Token, pair.BaseToken)), true
				}
			}
		}
		return "", false
	}
}

// SharesSupplyInvariant checks that the recorded share positions of every
// pair never exceed the pair's LP supply. They may undershoot it: supply
// issued outside the module carries no position record.
func SharesSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[uint64]math.Int)
		for _, pos := range k.GetAllSharesPositions(ctx) {
			sum, ok := sums[pos.PairId]
			if !ok {
				sum = math.ZeroInt()
			}
			sums[pos.PairId] = sum.Add(pos.Shares)
		}

		for pairId, sum := range sums {
			pair, found := k.GetPair(ctx, pairId)
			if !found {
				return sdk.FormatInvariant(types.ModuleName, "shares-supply",
					fmt.Sprintf("share positions reference missing pair %d", pairId)), true
			}
			if sum.GT(pair.LpSupply) {
				return sdk.FormatInvariant(types.ModuleName, "shares-supply",
					fmt.Sprintf("pair %d positions sum to %s, above lp supply %s",
						pairId, sum, pair.LpSupply)), true
			}
		}
		return "", false
	}
}

// ActivePairsFundedInvariant checks that every Active pair holds non-zero
// reserves.
func ActivePairsFundedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, pair := range k.GetAllPairs(ctx) {
			if pair.State == types.PairActive && pair.LiquidityToken.IsZero() {
				return sdk.FormatInvariant(types.ModuleName, "active-pairs-funded",
					fmt.Sprintf("pair %d is active with zero reserves", pair.Id)), true
			}
		}
		return "", false
	}
}
