package keeper_test

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pondswap/pond/testutil/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)
	require.NoError(t, k.Activate(ctx))

	// Populate every store section through regular operations.
	owner := sdk.MustAccAddressFromBech32(keepertest.TestOwner)
	fee := issueFee(t, k, ctx)
	bank.Fund(keepertest.TestOwner, sdk.NewCoins(fee))
	_, err := k.RequestPairIssuance(ctx, owner, "uusdc", "uatom", 6, fee)
	require.NoError(t, err)

	keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())
	provider := sdk.MustAccAddressFromBech32(keepertest.TestTrader)
	bank.Fund(keepertest.TestTrader, sdk.NewCoins(
		sdk.NewCoin("utkn", sdkmath.NewInt(1000)),
		sdk.NewCoin("uusdc", sdkmath.NewInt(4000)),
	))
	_, _, _, err = k.AddLiquidity(ctx, provider,
		sdk.NewCoin("utkn", sdkmath.NewInt(1000)), sdk.NewCoin("uusdc", sdkmath.NewInt(4000)))
	require.NoError(t, err)

	require.NoError(t, k.AccrueFee(ctx, "uusdc", sdkmath.NewInt(42)))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, types.StateActive, exported.State)
	require.Len(t, exported.Pairs, 1)
	require.Len(t, exported.PendingIssuances, 1)
	require.Len(t, exported.Shares, 1)

	// Replaying the export into a fresh keeper yields an identical export.
	fresh, freshCtx, _, _ := keepertest.AmmKeeper(t)
	require.NoError(t, fresh.InitGenesis(freshCtx, *exported, nil))

	reexported, err := fresh.ExportGenesis(freshCtx)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	genesis := types.DefaultGenesis()
	genesis.Params.LpFee = types.MaxPercent
	require.Error(t, k.InitGenesis(ctx, *genesis, nil))
}

// A genesis schedule whose rates wrap the uint64 sum back under the cap is
// still out of range.
func TestInitGenesisRejectsWrappingFeeSchedule(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	genesis := types.DefaultGenesis()
	genesis.Params.LpFee = math.MaxUint64
	genesis.Params.OwnerFee = 2
	err := k.InitGenesis(ctx, *genesis, nil)
	require.ErrorIs(t, err, types.ErrFeeTooHigh)
}
