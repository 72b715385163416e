package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// SetLpFee updates the liquidity-provider rate. The new rate is validated
// against the current owner rate so the combined schedule always stays below
// MaxPercent.
func (k Keeper) SetLpFee(ctx context.Context, rate uint64) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if !types.FeeScheduleValid(rate, params.OwnerFee) {
		return types.ErrFeeTooHigh.Wrapf(
			"lp fee %d plus owner fee %d must stay below %d", rate, params.OwnerFee, types.MaxPercent)
	}

	params.LpFee = rate
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.emitFeeUpdated(ctx, "lp_fee", rate)
	return nil
}

// SetOwnerFee updates the operator rate, validated against the current LP
// rate.
func (k Keeper) SetOwnerFee(ctx context.Context, rate uint64) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if !types.FeeScheduleValid(params.LpFee, rate) {
		return types.ErrFeeTooHigh.Wrapf(
			"owner fee %d plus lp fee %d must stay below %d", rate, params.LpFee, types.MaxPercent)
	}

	params.OwnerFee = rate
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	k.emitFeeUpdated(ctx, "owner_fee", rate)
	return nil
}

func (k Keeper) emitFeeUpdated(ctx context.Context, kind string, rate uint64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyFeeKind, kind),
			sdk.NewAttribute(types.AttributeKeyRate, fmt.Sprintf("%d", rate)),
		),
	)
}
