package types_test

import (
	"math"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pondswap/pond/x/amm/types"
)

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, uint64(20), params.LpFee)
	require.Equal(t, uint64(10), params.OwnerFee)
	require.Equal(t, uint64(30), params.TotalFee())
	require.Equal(t, "upond", params.IssueDenom)
	require.True(t, params.IssueCost.IsPositive())
}

func TestParamsValidate(t *testing.T) {
	valid := types.Params{LpFee: 20, OwnerFee: 10, IssueCost: sdkmath.NewInt(1), IssueDenom: "upond"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*types.Params)
	}{
		{"fee sum reaches cap", func(p *types.Params) { p.LpFee = 9990; p.OwnerFee = 10 }},
		{"fee sum above cap", func(p *types.Params) { p.LpFee = 20000 }},
		{"lp fee wraps the sum", func(p *types.Params) { p.LpFee = math.MaxUint64; p.OwnerFee = 2 }},
		{"owner fee wraps the sum", func(p *types.Params) { p.LpFee = 2; p.OwnerFee = math.MaxUint64 }},
		{"nil issue cost", func(p *types.Params) { p.IssueCost = sdkmath.Int{} }},
		{"negative issue cost", func(p *types.Params) { p.IssueCost = sdkmath.NewInt(-1) }},
		{"empty issue denom", func(p *types.Params) { p.IssueDenom = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := valid
			tc.mutate(&params)
			require.Error(t, params.Validate())
		})
	}
}

func TestSplitForInput(t *testing.T) {
	params := types.Params{LpFee: 20, OwnerFee: 10}

	lp, owner, total := params.SplitForInput(sdkmath.NewInt(10000))
	require.Equal(t, sdkmath.NewInt(20), lp)
	require.Equal(t, sdkmath.NewInt(10), owner)
	require.Equal(t, sdkmath.NewInt(30), total)

	// Everything floors to zero below one fee unit.
	lp, owner, total = params.SplitForInput(sdkmath.NewInt(100))
	require.True(t, lp.IsZero())
	require.True(t, owner.IsZero())
	require.True(t, total.IsZero())

	// When the per-rate floors diverge from the total's floor, the
	// remainder lands in the owner share instead of vanishing.
	divergent := types.Params{LpFee: 3, OwnerFee: 3}
	lp, owner, total = divergent.SplitForInput(sdkmath.NewInt(5000))
	require.Equal(t, sdkmath.NewInt(1), lp)
	require.Equal(t, sdkmath.NewInt(2), owner)
	require.Equal(t, sdkmath.NewInt(3), total)
}

func TestSplitForInputNeverOvercharges(t *testing.T) {
	params := types.Params{LpFee: 137, OwnerFee: 263}

	for _, amount := range []int64{1, 99, 1000, 31337, 9999999} {
		lp, owner, total := params.SplitForInput(sdkmath.NewInt(amount))
		require.Equal(t, total, lp.Add(owner), "split leaked at %d", amount)
		require.True(t, total.LT(sdkmath.NewInt(amount)), "fee swallowed the whole amount at %d", amount)
	}
}

func TestSplitForOutput(t *testing.T) {
	params := types.Params{LpFee: 20, OwnerFee: 10}

	lp, owner, total := params.SplitForOutput(sdkmath.NewInt(1000))
	require.Equal(t, sdkmath.NewInt(2), lp)
	require.Equal(t, sdkmath.NewInt(1), owner)
	require.Equal(t, sdkmath.NewInt(3), total)

	// Exact case: 9970 net of a 30/10000 fee corresponds to a gross of
	// exactly 10000.
	lp, owner, total = params.SplitForOutput(sdkmath.NewInt(9970))
	require.Equal(t, sdkmath.NewInt(20), lp)
	require.Equal(t, sdkmath.NewInt(10), owner)
	require.Equal(t, sdkmath.NewInt(30), total)
}

func TestSplitForOutputZeroFees(t *testing.T) {
	params := types.Params{LpFee: 0, OwnerFee: 0}

	lp, owner, total := params.SplitForOutput(sdkmath.NewInt(12345))
	require.True(t, lp.IsZero())
	require.True(t, owner.IsZero())
	require.True(t, total.IsZero())
}

// The two components of an output split always reassemble into the total, by
// construction: the owner share is the remainder.
func TestSplitForOutputComponentsSum(t *testing.T) {
	params := types.Params{LpFee: 123, OwnerFee: 77}

	for _, amount := range []int64{1, 500, 9970, 123456} {
		lp, owner, total := params.SplitForOutput(sdkmath.NewInt(amount))
		require.Equal(t, total, lp.Add(owner), "split leaked at %d", amount)
	}
}
