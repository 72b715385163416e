package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// GetNextPairId returns the next pair id counter without advancing it.
func (k Keeper) GetNextPairId(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.NextPairIdKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextPairId sets the next pair id counter
func (k Keeper) SetNextPairId(ctx context.Context, id uint64) {
	k.getStore(ctx).Set(types.NextPairIdKey, sdk.Uint64ToBigEndian(id))
}

// allocatePairId hands out the next sequential id. Ids are never reused; the
// counter only advances when a pair record is actually committed.
func (k Keeper) allocatePairId(ctx context.Context) uint64 {
	id := k.GetNextPairId(ctx)
	k.SetNextPairId(ctx, id+1)
	return id
}

// GetPair retrieves a pair record by id. The bool reports existence: ids in
// [0, nextId) whose issuance failed have no record.
func (k Keeper) GetPair(ctx context.Context, id uint64) (types.Pair, bool) {
	bz := k.getStore(ctx).Get(types.GetPairKey(id))
	if bz == nil {
		return types.Pair{}, false
	}

	var pair types.Pair
	if err := json.Unmarshal(bz, &pair); err != nil {
		panic(fmt.Errorf("corrupt pair record %d: %w", id, err))
	}
	return pair, true
}

// SetPair writes a pair record
func (k Keeper) SetPair(ctx context.Context, pair types.Pair) error {
	bz, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("SetPair: marshal pair %d: %w", pair.Id, err)
	}
	k.getStore(ctx).Set(types.GetPairKey(pair.Id), bz)
	return nil
}

// GetAllPairs returns every committed pair in id order, skipping the holes
// left by failed issuances.
func (k Keeper) GetAllPairs(ctx context.Context) []types.Pair {
	nextId := k.GetNextPairId(ctx)
	pairs := make([]types.Pair, 0, nextId)
	for id := uint64(0); id < nextId; id++ {
		if pair, found := k.GetPair(ctx, id); found {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

// GetPairByDenoms finds the pair trading the given denoms, in either order.
func (k Keeper) GetPairByDenoms(ctx context.Context, denomA, denomB string) (types.Pair, bool) {
	nextId := k.GetNextPairId(ctx)
	for id := uint64(0); id < nextId; id++ {
		pair, found := k.GetPair(ctx, id)
		if !found {
			continue
		}
		if pair.Matches(denomA, denomB) {
			return pair, true
		}
	}
	return types.Pair{}, false
}

// GetPairByLpToken finds the pair whose receipt token is the given denom.
func (k Keeper) GetPairByLpToken(ctx context.Context, lpToken string) (types.Pair, bool) {
	nextId := k.GetNextPairId(ctx)
	for id := uint64(0); id < nextId; id++ {
		pair, found := k.GetPair(ctx, id)
		if !found {
			continue
		}
		if pair.LpToken == lpToken {
			return pair, true
		}
	}
	return types.Pair{}, false
}

// SetPairActive moves a pair to Active. A pair can only trade once its
// reserves are non-zero.
func (k Keeper) SetPairActive(ctx context.Context, id uint64) error {
	pair, found := k.GetPair(ctx, id)
	if !found {
		return types.ErrPairNotFound.Wrapf("pair %d", id)
	}

	if !pair.LiquidityToken.IsPositive() {
		return types.ErrNoLiquidity.Wrapf("pair %d has zero reserves", id)
	}

	pair.State = types.PairActive
	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	k.emitPairStateChanged(ctx, pair)
	return nil
}

// SetPairActiveNoSwap moves a pair to ActiveNoSwap: deposits stay open,
// trading stops. Transitioning an empty pair down is refused so the endpoint
// cannot mask a pair that was never funded.
func (k Keeper) SetPairActiveNoSwap(ctx context.Context, id uint64) error {
	pair, found := k.GetPair(ctx, id)
	if !found {
		return types.ErrPairNotFound.Wrapf("pair %d", id)
	}

	if !pair.LiquidityToken.IsPositive() {
		return types.ErrNoLiquidity.Wrapf("pair %d has zero reserves", id)
	}

	pair.State = types.PairActiveNoSwap
	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	k.emitPairStateChanged(ctx, pair)
	return nil
}

// SetPairInactive disables a pair unconditionally.
func (k Keeper) SetPairInactive(ctx context.Context, id uint64) error {
	pair, found := k.GetPair(ctx, id)
	if !found {
		return types.ErrPairNotFound.Wrapf("pair %d", id)
	}

	pair.State = types.PairInactive
	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}

	k.emitPairStateChanged(ctx, pair)
	return nil
}

func (k Keeper) emitPairStateChanged(ctx context.Context, pair types.Pair) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairStateChanged,
			sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyPairState, pair.State.String()),
		),
	)
}
