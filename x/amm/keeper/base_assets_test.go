package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pondswap/pond/testutil/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

func TestLaunchpadAssetSeededAtGenesis(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	require.True(t, k.HasBaseAsset(ctx, "uusdc"))
	require.Equal(t, []string{"uusdc"}, k.GetBaseAssets(ctx))
}

func TestAddBaseAsset(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.AddBaseAsset(ctx, "uatom"))
	require.True(t, k.HasBaseAsset(ctx, "uatom"))

	err := k.AddBaseAsset(ctx, "uatom")
	require.ErrorIs(t, err, types.ErrBaseTokenExists)
}

func TestRemoveBaseAsset(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.AddBaseAsset(ctx, "uatom"))
	require.NoError(t, k.RemoveBaseAsset(ctx, "uatom"))
	require.False(t, k.HasBaseAsset(ctx, "uatom"))

	err := k.RemoveBaseAsset(ctx, "uatom")
	require.ErrorIs(t, err, types.ErrWrongBaseToken)
}

func TestRemoveBaseAssetBlockedByAnchoringPair(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc", sdkmath.ZeroInt(), sdkmath.ZeroInt())

	err := k.RemoveBaseAsset(ctx, "uusdc")
	require.ErrorIs(t, err, types.ErrBaseTokenInUse)
	require.True(t, k.HasBaseAsset(ctx, "uusdc"))
}

// An inactive pair still anchors its base token; only the pair's existence
// matters, not its state.
func TestRemoveBaseAssetBlockedByInactivePair(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	keepertest.SeedPair(t, k, ctx, bank, types.PairInactive, "utkn", "uusdc", sdkmath.ZeroInt(), sdkmath.ZeroInt())

	err := k.RemoveBaseAsset(ctx, "uusdc")
	require.ErrorIs(t, err, types.ErrBaseTokenInUse)
}

// Pairs quoting a denom as the non-anchor leg do not block its removal.
func TestRemoveBaseAssetIgnoresQuotedLeg(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.AddBaseAsset(ctx, "uatom"))
	keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "uatom", "uusdc", sdkmath.ZeroInt(), sdkmath.ZeroInt())

	require.NoError(t, k.RemoveBaseAsset(ctx, "uatom"))
}
