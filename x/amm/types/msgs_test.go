package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pondswap/pond/x/amm/types"
)

var msgSigner = sdk.AccAddress([]byte("msg_test_signer_____")).String()

func TestMsgCreatePairValidateBasic(t *testing.T) {
	fee := sdk.NewCoin("upond", sdkmath.NewInt(50))

	require.NoError(t, types.NewMsgCreatePair(msgSigner, "uusdc", "utkn", 6, fee).ValidateBasic())

	tests := []struct {
		name string
		msg  *types.MsgCreatePair
	}{
		{"bad creator", types.NewMsgCreatePair("nope", "uusdc", "utkn", 6, fee)},
		{"empty base", types.NewMsgCreatePair(msgSigner, "", "utkn", 6, fee)},
		{"empty token", types.NewMsgCreatePair(msgSigner, "uusdc", "", 6, fee)},
		{"same legs", types.NewMsgCreatePair(msgSigner, "utkn", "utkn", 6, fee)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.msg.ValidateBasic())
		})
	}
}

func TestMsgLpTokenIssueCallbackValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgLpTokenIssueCallback(msgSigner, 0, "TKNUSDC", true).ValidateBasic())
	require.NoError(t, types.NewMsgLpTokenIssueCallback(msgSigner, 0, "", false).ValidateBasic())

	require.Error(t, types.NewMsgLpTokenIssueCallback("nope", 0, "TKNUSDC", true).ValidateBasic())
	require.Error(t, types.NewMsgLpTokenIssueCallback(msgSigner, 0, "", true).ValidateBasic())
}

func TestMsgSetFeesValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgSetLpFee(msgSigner, 25).ValidateBasic())
	require.NoError(t, types.NewMsgSetOwnerFee(msgSigner, 0).ValidateBasic())

	require.Error(t, types.NewMsgSetLpFee(msgSigner, types.MaxPercent).ValidateBasic())
	require.Error(t, types.NewMsgSetOwnerFee(msgSigner, types.MaxPercent+1).ValidateBasic())
	require.Error(t, types.NewMsgSetLpFee("nope", 25).ValidateBasic())
}

func TestMsgSwapFixedInputValidateBasic(t *testing.T) {
	in := sdk.NewCoin("uusdc", sdkmath.NewInt(100))

	require.NoError(t, types.NewMsgSwapFixedInput(msgSigner, in, "utkn", sdkmath.ZeroInt()).ValidateBasic())

	tests := []struct {
		name string
		msg  *types.MsgSwapFixedInput
	}{
		{"bad trader", types.NewMsgSwapFixedInput("nope", in, "utkn", sdkmath.ZeroInt())},
		{"zero input", types.NewMsgSwapFixedInput(msgSigner, sdk.NewCoin("uusdc", sdkmath.ZeroInt()), "utkn", sdkmath.ZeroInt())},
		{"empty output denom", types.NewMsgSwapFixedInput(msgSigner, in, "", sdkmath.ZeroInt())},
		{"self swap", types.NewMsgSwapFixedInput(msgSigner, in, "uusdc", sdkmath.ZeroInt())},
		{"negative minimum", types.NewMsgSwapFixedInput(msgSigner, in, "utkn", sdkmath.NewInt(-1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.msg.ValidateBasic())
		})
	}
}

func TestMsgSwapFixedOutputValidateBasic(t *testing.T) {
	maxIn := sdk.NewCoin("uusdc", sdkmath.NewInt(1000))

	require.NoError(t, types.NewMsgSwapFixedOutput(msgSigner, maxIn, "utkn", sdkmath.NewInt(90)).ValidateBasic())

	require.Error(t, types.NewMsgSwapFixedOutput(msgSigner, maxIn, "utkn", sdkmath.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgSwapFixedOutput(msgSigner, maxIn, "uusdc", sdkmath.NewInt(90)).ValidateBasic())
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	coinA := sdk.NewCoin("utkn", sdkmath.NewInt(1000))
	coinB := sdk.NewCoin("uusdc", sdkmath.NewInt(1000))

	require.NoError(t, types.NewMsgAddLiquidity(msgSigner, coinA, coinB).ValidateBasic())

	require.Error(t, types.NewMsgAddLiquidity("nope", coinA, coinB).ValidateBasic())
	require.Error(t, types.NewMsgAddLiquidity(msgSigner, sdk.NewCoin("utkn", sdkmath.ZeroInt()), coinB).ValidateBasic())
	require.Error(t, types.NewMsgAddLiquidity(msgSigner, coinA, coinA).ValidateBasic())
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgRemoveLiquidity(msgSigner, 0, sdkmath.NewInt(10)).ValidateBasic())

	require.Error(t, types.NewMsgRemoveLiquidity("nope", 0, sdkmath.NewInt(10)).ValidateBasic())
	require.Error(t, types.NewMsgRemoveLiquidity(msgSigner, 0, sdkmath.ZeroInt()).ValidateBasic())
	require.Error(t, types.NewMsgRemoveLiquidity(msgSigner, 0, sdkmath.Int{}).ValidateBasic())
}

func TestMsgRoutesAndTypes(t *testing.T) {
	require.Equal(t, types.RouterKey, types.MsgCreatePair{}.Route())
	require.Equal(t, "create_pair", types.MsgCreatePair{}.Type())
	require.Equal(t, "swap_fixed_input", types.MsgSwapFixedInput{}.Type())
	require.Equal(t, "swap_fixed_output", types.MsgSwapFixedOutput{}.Type())
	require.Equal(t, "add_liquidity", types.MsgAddLiquidity{}.Type())
	require.Equal(t, "remove_liquidity", types.MsgRemoveLiquidity{}.Type())
	require.Equal(t, "lp_token_issue_callback", types.MsgLpTokenIssueCallback{}.Type())
}
