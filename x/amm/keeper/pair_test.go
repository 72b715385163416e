package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pondswap/pond/testutil/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

func TestPairRoundTrip(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	seeded := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.NewInt(1000), sdkmath.NewInt(2000))

	pair, found := k.GetPair(ctx, seeded.Id)
	require.True(t, found)
	require.Equal(t, seeded, pair)

	_, found = k.GetPair(ctx, 99)
	require.False(t, found)
}

func TestGetPairByDenoms(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	seeded := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	pair, found := k.GetPairByDenoms(ctx, "utkn", "uusdc")
	require.True(t, found)
	require.Equal(t, seeded.Id, pair.Id)

	// Order does not matter.
	pair, found = k.GetPairByDenoms(ctx, "uusdc", "utkn")
	require.True(t, found)
	require.Equal(t, seeded.Id, pair.Id)

	_, found = k.GetPairByDenoms(ctx, "utkn", "uatom")
	require.False(t, found)
}

func TestGetPairByLpToken(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	seeded := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	pair, found := k.GetPairByLpToken(ctx, seeded.LpToken)
	require.True(t, found)
	require.Equal(t, seeded.Id, pair.Id)

	_, found = k.GetPairByLpToken(ctx, "NOPE")
	require.False(t, found)
}

// Failed issuances leave holes in the id space; every scan must tolerate
// them.
func TestGetAllPairsSkipsHoles(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	first := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())
	k.SetNextPairId(ctx, 3)
	second := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "uatom", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	pairs := k.GetAllPairs(ctx)
	require.Len(t, pairs, 2)
	require.Equal(t, first.Id, pairs[0].Id)
	require.Equal(t, second.Id, pairs[1].Id)
	require.Equal(t, uint64(3), second.Id)
}

func TestSetPairActiveRequiresLiquidity(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	empty := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	err := k.SetPairActive(ctx, empty.Id)
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	funded := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "uatom", "uusdc",
		sdkmath.NewInt(1000), sdkmath.NewInt(1000))

	require.NoError(t, k.SetPairActive(ctx, funded.Id))
	pair, _ := k.GetPair(ctx, funded.Id)
	require.Equal(t, types.PairActive, pair.State)
}

func TestSetPairActiveNoSwapRequiresLiquidity(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	empty := keepertest.SeedPair(t, k, ctx, bank, types.PairInactive, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	err := k.SetPairActiveNoSwap(ctx, empty.Id)
	require.ErrorIs(t, err, types.ErrNoLiquidity)

	funded := keepertest.SeedPair(t, k, ctx, bank, types.PairActive, "uatom", "uusdc",
		sdkmath.NewInt(1000), sdkmath.NewInt(1000))

	require.NoError(t, k.SetPairActiveNoSwap(ctx, funded.Id))
	pair, _ := k.GetPair(ctx, funded.Id)
	require.Equal(t, types.PairActiveNoSwap, pair.State)
}

func TestSetPairInactiveAlwaysAllowed(t *testing.T) {
	k, ctx, bank, _ := keepertest.AmmKeeper(t)

	empty := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.ZeroInt(), sdkmath.ZeroInt())

	require.NoError(t, k.SetPairInactive(ctx, empty.Id))
	pair, _ := k.GetPair(ctx, empty.Id)
	require.Equal(t, types.PairInactive, pair.State)
}

func TestPairLifecycleUnknownPair(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	require.ErrorIs(t, k.SetPairActive(ctx, 7), types.ErrPairNotFound)
	require.ErrorIs(t, k.SetPairActiveNoSwap(ctx, 7), types.ErrPairNotFound)
	require.ErrorIs(t, k.SetPairInactive(ctx, 7), types.ErrPairNotFound)
}
