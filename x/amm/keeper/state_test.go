package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/pondswap/pond/testutil/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

func TestStateStartsInactive(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)
	require.Equal(t, types.StateInactive, k.GetState(ctx))
}

func TestActivate(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.Activate(ctx))
	require.Equal(t, types.StateActive, k.GetState(ctx))
}

func TestActivateRequiresLaunchpad(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	k.SetLaunchpadAddress(ctx, "")
	err := k.Activate(ctx)
	require.ErrorIs(t, err, types.ErrNotReady)
	require.Equal(t, types.StateInactive, k.GetState(ctx))
}

func TestActivateRequiresBaseAssets(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	require.NoError(t, k.RemoveBaseAsset(ctx, "uusdc"))
	err := k.Activate(ctx)
	require.ErrorIs(t, err, types.ErrNotReady)
}

func TestDeactivate(t *testing.T) {
	k, ctx, _, _ := keepertest.AmmKeeper(t)

	keepertest.ActivateContract(t, k, ctx)
	k.Deactivate(ctx)
	require.Equal(t, types.StateInactive, k.GetState(ctx))
}
