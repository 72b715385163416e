package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pondswap/pond/testutil/keeper"
	"github.com/pondswap/pond/x/amm/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

func msgServerFixture(t *testing.T) (types.MsgServer, keeper.Keeper, sdk.Context, *keepertest.MockBankKeeper, *keepertest.MockIssuerKeeper) {
	k, ctx, bank, issuer := keepertest.AmmKeeper(t)
	return keeper.NewMsgServerImpl(k), k, ctx, bank, issuer
}

func TestMsgServerOwnerOnlyGates(t *testing.T) {
	srv, _, ctx, _, _ := msgServerFixture(t)

	tests := []struct {
		name string
		call func() error
	}{
		{"activate", func() error {
			_, err := srv.Activate(ctx, types.NewMsgActivate(keepertest.TestTrader))
			return err
		}},
		{"deactivate", func() error {
			_, err := srv.Deactivate(ctx, types.NewMsgDeactivate(keepertest.TestTrader))
			return err
		}},
		{"set launchpad address", func() error {
			_, err := srv.SetLaunchpadAddress(ctx, types.NewMsgSetLaunchpadAddress(keepertest.TestTrader, keepertest.TestLaunchpad))
			return err
		}},
		{"set lp fee", func() error {
			_, err := srv.SetLpFee(ctx, types.NewMsgSetLpFee(keepertest.TestTrader, 25))
			return err
		}},
		{"set owner fee", func() error {
			_, err := srv.SetOwnerFee(ctx, types.NewMsgSetOwnerFee(keepertest.TestTrader, 5))
			return err
		}},
		{"withdraw fees", func() error {
			_, err := srv.WithdrawFees(ctx, types.NewMsgWithdrawFees(keepertest.TestTrader))
			return err
		}},
		{"add base token", func() error {
			_, err := srv.AddBaseToken(ctx, types.NewMsgAddBaseToken(keepertest.TestTrader, "ueur"))
			return err
		}},
		{"remove base token", func() error {
			_, err := srv.RemoveBaseToken(ctx, types.NewMsgRemoveBaseToken(keepertest.TestTrader, "uusdc"))
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), types.ErrUnauthorized)
		})
	}
}

func TestMsgServerPairAdminAllowsLaunchpad(t *testing.T) {
	srv, k, ctx, bank, _ := msgServerFixture(t)
	require.NoError(t, k.Activate(ctx))
	pair := keepertest.SeedPair(t, k, ctx, bank, types.PairActiveNoSwap, "utkn", "uusdc",
		sdkmath.NewInt(1000), sdkmath.NewInt(1000))

	_, err := srv.SetPairActive(ctx, types.NewMsgSetPairActive(keepertest.TestTrader, pair.Id))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.SetPairActive(ctx, types.NewMsgSetPairActive(keepertest.TestLaunchpad, pair.Id))
	require.NoError(t, err)

	_, err = srv.SetPairInactive(ctx, types.NewMsgSetPairInactive(keepertest.TestOwner, pair.Id))
	require.NoError(t, err)
}

func TestMsgServerCallbackOnlyFromIssuer(t *testing.T) {
	srv, _, ctx, _, _ := msgServerFixture(t)

	// Not even the owner may deliver the callback.
	_, err := srv.LpTokenIssueCallback(ctx,
		types.NewMsgLpTokenIssueCallback(keepertest.TestOwner, 0, "TKNUSDC-1a2b3c", true))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMsgServerContractGates(t *testing.T) {
	srv, _, ctx, bank, _ := msgServerFixture(t)
	bank.Fund(keepertest.TestOwner, sdk.NewCoins(sdk.NewCoin("upond", sdkmath.NewIntWithDecimal(1, 18))))

	tests := []struct {
		name string
		call func() error
	}{
		{"create pair", func() error {
			_, err := srv.CreatePair(ctx, types.NewMsgCreatePair(
				keepertest.TestOwner, "uusdc", "utkn", 6, sdk.NewCoin("upond", sdkmath.NewIntWithDecimal(5, 16))))
			return err
		}},
		{"swap fixed input", func() error {
			_, err := srv.SwapFixedInput(ctx, types.NewMsgSwapFixedInput(
				keepertest.TestTrader, sdk.NewCoin("uusdc", sdkmath.NewInt(100)), "utkn", sdkmath.ZeroInt()))
			return err
		}},
		{"swap fixed output", func() error {
			_, err := srv.SwapFixedOutput(ctx, types.NewMsgSwapFixedOutput(
				keepertest.TestTrader, sdk.NewCoin("uusdc", sdkmath.NewInt(100)), "utkn", sdkmath.NewInt(10)))
			return err
		}},
		{"add liquidity", func() error {
			_, err := srv.AddLiquidity(ctx, types.NewMsgAddLiquidity(
				keepertest.TestTrader,
				sdk.NewCoin("utkn", sdkmath.NewInt(1000)), sdk.NewCoin("uusdc", sdkmath.NewInt(1000))))
			return err
		}},
		{"add base token", func() error {
			_, err := srv.AddBaseToken(ctx, types.NewMsgAddBaseToken(keepertest.TestOwner, "ueur"))
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), types.ErrNotActive)
		})
	}
}

// Full lifecycle: activation, two-phase pair creation, seeding liquidity,
// trading, fee withdrawal, shutdown and a final exit after shutdown.
func TestMsgServerLifecycle(t *testing.T) {
	srv, k, ctx, bank, issuer := msgServerFixture(t)

	fee := issueFee(t, k, ctx)
	bank.Fund(keepertest.TestOwner, sdk.NewCoins(fee))
	bank.Fund(keepertest.TestTrader, sdk.NewCoins(
		sdk.NewCoin("utkn", sdkmath.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", sdkmath.NewInt(1_000_000)),
	))

	_, err := srv.Activate(ctx, types.NewMsgActivate(keepertest.TestOwner))
	require.NoError(t, err)

	createResp, err := srv.CreatePair(ctx, types.NewMsgCreatePair(
		keepertest.TestOwner, "uusdc", "utkn", 6, fee))
	require.NoError(t, err)
	require.Len(t, issuer.Requests, 1)

	cbResp, err := srv.LpTokenIssueCallback(ctx, types.NewMsgLpTokenIssueCallback(
		keepertest.TestIssuer, createResp.CorrelationId, "TKNUSDC-1a2b3c", true))
	require.NoError(t, err)

	addResp, err := srv.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		keepertest.TestTrader,
		sdk.NewCoin("utkn", sdkmath.NewInt(1000)), sdk.NewCoin("uusdc", sdkmath.NewInt(1000))))
	require.NoError(t, err)
	require.Equal(t, cbResp.PairId, addResp.PairId)
	require.Equal(t, sdkmath.NewInt(1000), addResp.Shares)

	_, err = srv.SetPairActive(ctx, types.NewMsgSetPairActive(keepertest.TestOwner, cbResp.PairId))
	require.NoError(t, err)

	swapResp, err := srv.SwapFixedInput(ctx, types.NewMsgSwapFixedInput(
		keepertest.TestTrader, sdk.NewCoin("uusdc", sdkmath.NewInt(10000)), "utkn", sdkmath.ZeroInt()))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(908), swapResp.AmountOut)
	require.Equal(t, sdkmath.NewInt(10), k.GetAccruedFee(ctx, "uusdc"))

	wdResp, err := srv.WithdrawFees(ctx, types.NewMsgWithdrawFees(keepertest.TestOwner))
	require.NoError(t, err)
	require.Equal(t, []types.AccruedFee{{Denom: "uusdc", Amount: sdkmath.NewInt(10)}}, wdResp.Withdrawn)
	require.Equal(t, sdkmath.NewInt(10), bank.Balances[keepertest.TestOwner].AmountOf("uusdc"))

	_, err = srv.Deactivate(ctx, types.NewMsgDeactivate(keepertest.TestOwner))
	require.NoError(t, err)

	// Providers are not trapped by the shutdown.
	rmResp, err := srv.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		keepertest.TestTrader, cbResp.PairId, sdkmath.NewInt(1000)))
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(92), rmResp.AmountToken)
	require.Equal(t, sdkmath.NewInt(10990), rmResp.AmountBase)
}
