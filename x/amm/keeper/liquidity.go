package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// GetShares returns a provider's share position in a pair, zero if none.
func (k Keeper) GetShares(ctx context.Context, pairId uint64, provider sdk.AccAddress) math.Int {
	bz := k.getStore(ctx).Get(types.GetSharesKey(pairId, provider))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt share position in pair %d: %w", pairId, err))
	}
	return shares
}

// setShares writes a provider's share position, deleting the record at zero.
func (k Keeper) setShares(ctx context.Context, pairId uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(types.GetSharesKey(pairId, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return fmt.Errorf("setShares: marshal: %w", err)
	}
	store.Set(types.GetSharesKey(pairId, provider), bz)
	return nil
}

// GetAllSharesPositions returns every share position, ordered by pair id and
// provider.
func (k Keeper) GetAllSharesPositions(ctx context.Context) []types.SharesPosition {
	store := prefix.NewStore(k.getStore(ctx), types.SharesKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var positions []types.SharesPosition
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("corrupt share position: %w", err))
		}
		positions = append(positions, types.SharesPosition{
			PairId:   sdk.BigEndianToUint64(key[:8]),
			Provider: sdk.AccAddress(key[8:]).String(),
			Shares:   shares,
		})
	}
	return positions
}

// AddLiquidity deposits both legs of a pair and mints shares against the
// pair's LP supply. The first deposit sets the price and mints the geometric
// mean of the two amounts; later deposits are scaled down to the pool ratio,
// so at most the offered amounts are drawn. Deposits stay open in the
// deposits-only pair state and close only when the pair is inactive.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, coinA, coinB sdk.Coin) (types.Pair, math.Int, sdk.Coins, error) {
	pair, found := k.GetPairByDenoms(ctx, coinA.Denom, coinB.Denom)
	if !found {
		return types.Pair{}, math.Int{}, nil, types.ErrPairNotFound.Wrapf("no pair for %s/%s", coinA.Denom, coinB.Denom)
	}
	if pair.State == types.PairInactive {
		return types.Pair{}, math.Int{}, nil, types.ErrPairNotActive.Wrapf("pair %d does not accept deposits", pair.Id)
	}

	amountToken, amountBase := coinA.Amount, coinB.Amount
	if coinA.Denom != pair.Token {
		amountToken, amountBase = coinB.Amount, coinA.Amount
	}
	if !amountToken.IsPositive() || !amountBase.IsPositive() {
		return types.Pair{}, math.Int{}, nil, types.ErrInvalidAmount.Wrap("both deposit amounts must be positive")
	}

	var usedToken, usedBase, minted math.Int

	if pair.LpSupply.IsZero() {
		if pair.LiquidityToken.IsPositive() || pair.LiquidityBase.IsPositive() {
			return types.Pair{}, math.Int{}, nil, types.ErrInsufficientLiquidity.Wrapf(
				"pair %d holds reserves with no recorded supply", pair.Id)
		}

		// First deposit: geometric mean guards against share-price
		// manipulation through a lopsided opening deposit.
		usedToken, usedBase = amountToken, amountBase
		sqrt, err := math.LegacyNewDecFromInt(usedToken.Mul(usedBase)).ApproxSqrt()
		if err != nil {
			return types.Pair{}, math.Int{}, nil, fmt.Errorf("AddLiquidity: initial shares: %w", err)
		}
		minted = sqrt.TruncateInt()
		if minted.IsZero() {
			return types.Pair{}, math.Int{}, nil, types.ErrInvalidAmount.Wrap("initial deposit too small")
		}
	} else {
		if !pair.LiquidityToken.IsPositive() || !pair.LiquidityBase.IsPositive() {
			return types.Pair{}, math.Int{}, nil, types.ErrInsufficientLiquidity.Wrapf(
				"pair %d records supply with drained reserves", pair.Id)
		}

		optimalBase, err := types.Quote(amountToken, pair.LiquidityToken, pair.LiquidityBase)
		if err != nil {
			return types.Pair{}, math.Int{}, nil, err
		}
		if optimalBase.LTE(amountBase) {
			usedToken, usedBase = amountToken, optimalBase
		} else {
			optimalToken, err := types.Quote(amountBase, pair.LiquidityBase, pair.LiquidityToken)
			if err != nil {
				return types.Pair{}, math.Int{}, nil, err
			}
			usedToken, usedBase = optimalToken, amountBase
		}

		minted = math.MinInt(
			usedToken.Mul(pair.LpSupply).Quo(pair.LiquidityToken),
			usedBase.Mul(pair.LpSupply).Quo(pair.LiquidityBase),
		)
		if minted.IsZero() {
			return types.Pair{}, math.Int{}, nil, types.ErrInvalidAmount.Wrap("deposit too small for a share")
		}
	}

	pair.LiquidityToken = pair.LiquidityToken.Add(usedToken)
	pair.LiquidityBase = pair.LiquidityBase.Add(usedBase)
	pair.LpSupply = pair.LpSupply.Add(minted)
	if err := k.SetPair(ctx, pair); err != nil {
		return types.Pair{}, math.Int{}, nil, err
	}

	if err := k.setShares(ctx, pair.Id, provider, k.GetShares(ctx, pair.Id, provider).Add(minted)); err != nil {
		return types.Pair{}, math.Int{}, nil, err
	}

	deposit := sdk.NewCoins(
		sdk.NewCoin(pair.Token, usedToken),
		sdk.NewCoin(pair.BaseToken, usedBase),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
		return types.Pair{}, math.Int{}, nil, fmt.Errorf("AddLiquidity: collect deposit: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, deposit.String()),
			sdk.NewAttribute(types.AttributeKeyShares, minted.String()),
		),
	)
	k.metrics.LiquidityOps.WithLabelValues("add").Inc()

	return pair, minted, deposit, nil
}

// RemoveLiquidity redeems shares for a pro-rata cut of both reserves.
// Redemption stays open in every pair state so positions are never stuck
// behind an admin transition. Draining the last share demotes an active pair
// to the deposits-only state, since an empty pool cannot price a trade.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, pairId uint64, shares math.Int) (math.Int, math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	pair, found := k.GetPair(ctx, pairId)
	if !found {
		return math.Int{}, math.Int{}, types.ErrPairNotFound.Wrapf("pair %d", pairId)
	}
	if pair.LpSupply.IsZero() {
		return math.Int{}, math.Int{}, types.ErrNoLiquidity.Wrapf("pair %d has no outstanding shares", pairId)
	}

	held := k.GetShares(ctx, pairId, provider)
	if shares.GT(held) {
		return math.Int{}, math.Int{}, types.ErrInsufficientShares.Wrapf("have %s, need %s", held, shares)
	}

	amountToken := shares.Mul(pair.LiquidityToken).Quo(pair.LpSupply)
	amountBase := shares.Mul(pair.LiquidityBase).Quo(pair.LpSupply)
	if amountToken.IsZero() && amountBase.IsZero() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("redemption too small")
	}

	pair.LiquidityToken = pair.LiquidityToken.Sub(amountToken)
	pair.LiquidityBase = pair.LiquidityBase.Sub(amountBase)
	pair.LpSupply = pair.LpSupply.Sub(shares)
	if pair.LpSupply.IsZero() && pair.State == types.PairActive {
		pair.State = types.PairActiveNoSwap
	}
	if err := k.SetPair(ctx, pair); err != nil {
		return math.Int{}, math.Int{}, err
	}

	if err := k.setShares(ctx, pairId, provider, held.Sub(shares)); err != nil {
		return math.Int{}, math.Int{}, err
	}

	payout := sdk.NewCoins(
		sdk.NewCoin(pair.Token, amountToken),
		sdk.NewCoin(pair.BaseToken, amountBase),
	)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, payout); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("RemoveLiquidity: pay out: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pairId)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, payout.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)
	k.metrics.LiquidityOps.WithLabelValues("remove").Inc()

	return amountToken, amountBase, nil
}
