package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pondswap/pond/x/amm/types"
)

func TestLpTokenNaming(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		baseToken  string
		wantName   string
		wantTicker string
	}{
		{"short legs", "utkn", "uusdc", "PondTKNUSDCLP", "TKNUSDC"},
		{"no micro marker", "atom", "uusdc", "PondATOMUSDCLP", "ATOMUSDC"},
		{"long leg truncated", "uverylongtokenname", "uusdc", "PondVERYLONGTOKENNLP", "VERYLONGTO"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, ticker := types.LpTokenNaming(tc.token, tc.baseToken)
			require.Equal(t, tc.wantName, name)
			require.Equal(t, tc.wantTicker, ticker)
			require.LessOrEqual(t, len(name), types.MaxLpNameLen)
			require.LessOrEqual(t, len(ticker), types.MaxLpTickerLen)
		})
	}
}

func TestPairMatches(t *testing.T) {
	pair := types.Pair{Token: "utkn", BaseToken: "uusdc"}

	require.True(t, pair.Matches("utkn", "uusdc"))
	require.True(t, pair.Matches("uusdc", "utkn"))
	require.False(t, pair.Matches("utkn", "uatom"))
	require.False(t, pair.Matches("utkn", "utkn"))
}

func TestPairValidate(t *testing.T) {
	valid := types.Pair{
		Id:             0,
		State:          types.PairActiveNoSwap,
		Token:          "utkn",
		BaseToken:      "uusdc",
		Decimals:       6,
		LpToken:        "TKNUSDC",
		LpSupply:       sdkmath.ZeroInt(),
		LiquidityToken: sdkmath.ZeroInt(),
		LiquidityBase:  sdkmath.ZeroInt(),
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*types.Pair)
	}{
		{"empty token", func(p *types.Pair) { p.Token = "" }},
		{"same legs", func(p *types.Pair) { p.BaseToken = p.Token }},
		{"nil lp supply", func(p *types.Pair) { p.LpSupply = sdkmath.Int{} }},
		{"negative token reserve", func(p *types.Pair) { p.LiquidityToken = sdkmath.NewInt(-1) }},
		{"negative base reserve", func(p *types.Pair) { p.LiquidityBase = sdkmath.NewInt(-1) }},
		{"active without reserves", func(p *types.Pair) { p.State = types.PairActive }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pair := valid
			tc.mutate(&pair)
			require.Error(t, pair.Validate())
		})
	}

	funded := valid
	funded.State = types.PairActive
	funded.LiquidityToken = sdkmath.NewInt(1000)
	funded.LiquidityBase = sdkmath.NewInt(1000)
	require.NoError(t, funded.Validate())
}

func TestContractStateString(t *testing.T) {
	require.Equal(t, "inactive", types.StateInactive.String())
	require.Equal(t, "active", types.StateActive.String())
}

func TestPairStateString(t *testing.T) {
	require.Equal(t, "inactive", types.PairInactive.String())
	require.Equal(t, "active_no_swap", types.PairActiveNoSwap.String())
	require.Equal(t, "active", types.PairActive.String())
}
