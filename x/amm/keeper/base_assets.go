package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// HasBaseAsset reports whether denom is a member of the base asset set
func (k Keeper) HasBaseAsset(ctx context.Context, denom string) bool {
	return k.getStore(ctx).Has(types.GetBaseAssetKey(denom))
}

// GetBaseAssets returns every member of the base asset set
func (k Keeper) GetBaseAssets(ctx context.Context) []string {
	store := prefix.NewStore(k.getStore(ctx), types.BaseAssetKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var denoms []string
	for ; iterator.Valid(); iterator.Next() {
		denoms = append(denoms, string(iterator.Key()))
	}
	return denoms
}

// seedBaseAsset inserts a denom unconditionally. Used only at genesis, where
// the launchpad's designated asset and the genesis list are trusted.
func (k Keeper) seedBaseAsset(ctx context.Context, denom string) {
	k.getStore(ctx).Set(types.GetBaseAssetKey(denom), []byte{1})
}

// AddBaseAsset registers a denom as eligible to anchor new pairs.
func (k Keeper) AddBaseAsset(ctx context.Context, denom string) error {
	if k.HasBaseAsset(ctx, denom) {
		return types.ErrBaseTokenExists.Wrapf("base token %s already registered", denom)
	}

	k.getStore(ctx).Set(types.GetBaseAssetKey(denom), []byte{1})

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBaseTokenAdded,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
		),
	)
	return nil
}

// RemoveBaseAsset drops a denom from the set. Removal is refused while any
// pair, in any state, still anchors on the denom; existing pairs keep their
// anchor by value, so only the removal direction needs the guard.
func (k Keeper) RemoveBaseAsset(ctx context.Context, denom string) error {
	if !k.HasBaseAsset(ctx, denom) {
		return types.ErrWrongBaseToken.Wrapf("base token %s not registered", denom)
	}

	nextId := k.GetNextPairId(ctx)
	for id := uint64(0); id < nextId; id++ {
		pair, found := k.GetPair(ctx, id)
		if !found {
			// issuance for this id failed; slot was never written
			continue
		}
		if pair.BaseToken == denom {
			return types.ErrBaseTokenInUse.Wrapf("pair %d anchors on %s", id, denom)
		}
	}

	k.getStore(ctx).Delete(types.GetBaseAssetKey(denom))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBaseTokenRemoved,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
		),
	)
	return nil
}
