package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pondswap/pond/testutil/keeper"
	"github.com/pondswap/pond/x/amm/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

func TestQueryParams(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	resp, err := qs.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), resp.Params)

	_, err = qs.Params(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
}

func TestQueryState(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	resp, err := qs.State(ctx, &types.QueryStateRequest{})
	require.NoError(t, err)
	require.Equal(t, types.StateInactive, resp.State)

	require.NoError(t, k.Activate(ctx))
	resp, err = qs.State(ctx, &types.QueryStateRequest{})
	require.NoError(t, err)
	require.Equal(t, types.StateActive, resp.State)
}

func TestQueryLaunchpadAddressAndBaseAssets(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	lp, err := qs.LaunchpadAddress(ctx, &types.QueryLaunchpadAddressRequest{})
	require.NoError(t, err)
	require.Equal(t, keepertest.TestLaunchpad, lp.Address)

	assets, err := qs.BaseAssets(ctx, &types.QueryBaseAssetsRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{"uusdc"}, assets.Denoms)
}

func TestQueryPairLookups(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	pair := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.NewInt(1000), sdkmath.NewInt(1000))

	byId, err := qs.Pair(ctx, &types.QueryPairRequest{PairId: pair.Id})
	require.NoError(t, err)
	require.Equal(t, pair.LpToken, byId.Pair.LpToken)

	_, err = qs.Pair(ctx, &types.QueryPairRequest{PairId: 7})
	require.ErrorIs(t, err, types.ErrPairNotFound)

	// Denom lookup is unordered.
	byDenoms, err := qs.PairByDenoms(ctx, &types.QueryPairByDenomsRequest{DenomA: "uusdc", DenomB: "utkn"})
	require.NoError(t, err)
	require.Equal(t, pair.Id, byDenoms.Pair.Id)

	byLp, err := qs.PairByLpToken(ctx, &types.QueryPairByLpTokenRequest{LpToken: pair.LpToken})
	require.NoError(t, err)
	require.Equal(t, pair.Id, byLp.Pair.Id)

	all, err := qs.Pairs(ctx, &types.QueryPairsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Pairs, 1)
}

func TestQueryAccruedFees(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	require.NoError(t, k.AccrueFee(ctx, "uusdc", sdkmath.NewInt(42)))

	resp, err := qs.AccruedFees(ctx, &types.QueryAccruedFeesRequest{})
	require.NoError(t, err)
	require.Equal(t, []types.AccruedFee{{Denom: "uusdc", Amount: sdkmath.NewInt(42)}}, resp.Fees)
}

func TestQueryShares(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	resp, err := qs.Shares(ctx, &types.QuerySharesRequest{PairId: 0, Provider: keepertest.TestTrader})
	require.NoError(t, err)
	require.True(t, resp.Shares.IsZero())

	_, err = qs.Shares(ctx, &types.QuerySharesRequest{PairId: 9, Provider: keepertest.TestTrader})
	require.ErrorIs(t, err, types.ErrPairNotFound)

	_, err = qs.Shares(ctx, &types.QuerySharesRequest{PairId: 0, Provider: "not-an-address"})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}
