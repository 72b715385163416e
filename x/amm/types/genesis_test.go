package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pondswap/pond/x/amm/types"
)

var (
	genOwner     = sdk.AccAddress([]byte("genesis_test_owner__")).String()
	genLaunchpad = sdk.AccAddress([]byte("genesis_test_lpad___")).String()
)

func validGenesis() *types.GenesisState {
	gs := types.DefaultGenesis()
	gs.LaunchpadAddress = genLaunchpad
	gs.BaseAssets = []string{"uusdc"}
	gs.State = types.StateActive
	gs.NextPairId = 2
	gs.Pairs = []types.Pair{
		{
			Id:             0,
			State:          types.PairActive,
			Token:          "utkn",
			BaseToken:      "uusdc",
			Decimals:       6,
			LpToken:        "TKNUSDC",
			LpSupply:       sdkmath.NewInt(1000),
			LiquidityToken: sdkmath.NewInt(1000),
			LiquidityBase:  sdkmath.NewInt(1000),
		},
	}
	gs.NextIssuanceId = 3
	gs.PendingIssuances = []types.PendingIssuance{
		{
			CorrelationId: 2,
			Caller:        genOwner,
			BaseToken:     "uusdc",
			Token:         "uatom",
			Decimals:      6,
			FeePaid:       sdk.NewCoin("upond", sdkmath.NewInt(50)),
		},
	}
	gs.AccruedFees = []types.AccruedFee{{Denom: "uusdc", Amount: sdkmath.NewInt(42)}}
	gs.Shares = []types.SharesPosition{{PairId: 0, Provider: genOwner, Shares: sdkmath.NewInt(600)}}
	return gs
}

func TestDefaultGenesisValidates(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, validGenesis().Validate())

	tests := []struct {
		name   string
		mutate func(*types.GenesisState)
	}{
		{"bad params", func(gs *types.GenesisState) { gs.Params.LpFee = 20000 }},
		{"bad launchpad address", func(gs *types.GenesisState) { gs.LaunchpadAddress = "not-bech32" }},
		{"active without launchpad", func(gs *types.GenesisState) { gs.LaunchpadAddress = "" }},
		{"active without base assets", func(gs *types.GenesisState) { gs.BaseAssets = nil }},
		{"empty base asset", func(gs *types.GenesisState) { gs.BaseAssets = []string{""} }},
		{"duplicate base asset", func(gs *types.GenesisState) { gs.BaseAssets = []string{"uusdc", "uusdc"} }},
		{"pair id beyond counter", func(gs *types.GenesisState) { gs.Pairs[0].Id = 5 }},
		{"duplicate denom pair", func(gs *types.GenesisState) {
			dup := gs.Pairs[0]
			dup.Id = 1
			dup.Token, dup.BaseToken = dup.BaseToken, dup.Token
			gs.Pairs = append(gs.Pairs, dup)
		}},
		{"pending id beyond counter", func(gs *types.GenesisState) { gs.PendingIssuances[0].CorrelationId = 9 }},
		{"bad pending caller", func(gs *types.GenesisState) { gs.PendingIssuances[0].Caller = "nope" }},
		{"negative accrued fee", func(gs *types.GenesisState) { gs.AccruedFees[0].Amount = sdkmath.NewInt(-1) }},
		{"duplicate accrued denom", func(gs *types.GenesisState) {
			gs.AccruedFees = append(gs.AccruedFees, gs.AccruedFees[0])
		}},
		{"shares for unknown pair", func(gs *types.GenesisState) { gs.Shares[0].PairId = 1 }},
		{"non-positive shares", func(gs *types.GenesisState) { gs.Shares[0].Shares = sdkmath.ZeroInt() }},
		{"duplicate position", func(gs *types.GenesisState) { gs.Shares = append(gs.Shares, gs.Shares[0]) }},
		{"positions above lp supply", func(gs *types.GenesisState) { gs.Shares[0].Shares = sdkmath.NewInt(1001) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(gs)
			require.Error(t, gs.Validate())
		})
	}
}

// Positions may undershoot the LP supply: supply issued outside the module
// has no position record.
func TestGenesisSharesMayUndershootSupply(t *testing.T) {
	gs := validGenesis()
	gs.Shares[0].Shares = sdkmath.NewInt(1)
	require.NoError(t, gs.Validate())
}
