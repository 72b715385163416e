package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// GetAccruedFee returns the owner fees accrued in a denom
func (k Keeper) GetAccruedFee(ctx context.Context, denom string) math.Int {
	bz := k.getStore(ctx).Get(types.GetAccruedFeeKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt accrued fee for %s: %w", denom, err))
	}
	return amount
}

// GetAllAccruedFees returns every accrued owner fee entry, ordered by denom.
func (k Keeper) GetAllAccruedFees(ctx context.Context) []types.AccruedFee {
	store := prefix.NewStore(k.getStore(ctx), types.AccruedFeeKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var fees []types.AccruedFee
	for ; iterator.Valid(); iterator.Next() {
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupt accrued fee for %s: %w", string(iterator.Key()), err))
		}
		fees = append(fees, types.AccruedFee{
			Denom:  string(iterator.Key()),
			Amount: amount,
		})
	}
	return fees
}

// AccrueFee adds the operator's share of a swap fee to the per-denom
// accumulator, creating the entry on first accrual. The tokens themselves
// already sit in the module account; the accumulator only tracks how much of
// that balance belongs to the owner rather than the pools.
func (k Keeper) AccrueFee(ctx context.Context, denom string, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("cannot accrue %s of %s", amount, denom)
	}
	if amount.IsZero() {
		return nil
	}

	total := k.GetAccruedFee(ctx, denom).Add(amount)
	bz, err := total.Marshal()
	if err != nil {
		return fmt.Errorf("AccrueFee: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.GetAccruedFeeKey(denom), bz)

	if amount.IsInt64() {
		k.metrics.FeesAccrued.WithLabelValues(denom).Add(float64(amount.Int64()))
	}
	return nil
}

// WithdrawFees pays out every accrued denom to the owner in one batched
// transfer and clears the accumulator. Withdrawing with nothing accrued is a
// successful no-op; partial withdrawal is not supported.
func (k Keeper) WithdrawFees(ctx context.Context) ([]types.AccruedFee, error) {
	fees := k.GetAllAccruedFees(ctx)
	if len(fees) == 0 {
		return nil, nil
	}

	coins := sdk.NewCoins()
	for _, fee := range fees {
		if fee.Amount.IsPositive() {
			coins = coins.Add(sdk.NewCoin(fee.Denom, fee.Amount))
		}
	}

	owner := sdk.MustAccAddressFromBech32(k.authority)
	if !coins.IsZero() {
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, coins); err != nil {
			return nil, fmt.Errorf("WithdrawFees: transfer to owner: %w", err)
		}
	}

	store := k.getStore(ctx)
	for _, fee := range fees {
		store.Delete(types.GetAccruedFeeKey(fee.Denom))
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyAmount, coins.String()),
		),
	)
	return fees, nil
}
