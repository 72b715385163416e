package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// GetState returns the contract activation state
func (k Keeper) GetState(ctx context.Context) types.ContractState {
	bz := k.getStore(ctx).Get(types.StateKey)
	if len(bz) == 0 {
		return types.StateInactive
	}
	return types.ContractState(bz[0])
}

// setState writes the contract activation state
func (k Keeper) setState(ctx context.Context, state types.ContractState) {
	k.getStore(ctx).Set(types.StateKey, []byte{byte(state)})
}

// Activate flips the contract to Active. It refuses until a launchpad address
// is configured and at least one base asset is registered, so trading can
// never open against an unseeded registry.
func (k Keeper) Activate(ctx context.Context) error {
	if k.GetLaunchpadAddress(ctx) == "" {
		return types.ErrNotReady.Wrap("launchpad address not configured")
	}
	if len(k.GetBaseAssets(ctx)) == 0 {
		return types.ErrNotReady.Wrap("base asset set is empty")
	}

	k.setState(ctx, types.StateActive)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeActivate))
	return nil
}

// Deactivate flips the contract to Inactive. Always succeeds.
func (k Keeper) Deactivate(ctx context.Context) {
	k.setState(ctx, types.StateInactive)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeDeactivate))
}

// requireActive guards every trading and pair-admin operation.
func (k Keeper) requireActive(ctx context.Context) error {
	if k.GetState(ctx) != types.StateActive {
		return types.ErrNotActive
	}
	return nil
}
