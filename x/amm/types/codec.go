package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the legacy
// amino codec used for sign bytes.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePair{}, "amm/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgLpTokenIssueCallback{}, "amm/MsgLpTokenIssueCallback", nil)
	cdc.RegisterConcrete(&MsgSetPairActive{}, "amm/MsgSetPairActive", nil)
	cdc.RegisterConcrete(&MsgSetPairActiveNoSwap{}, "amm/MsgSetPairActiveNoSwap", nil)
	cdc.RegisterConcrete(&MsgSetPairInactive{}, "amm/MsgSetPairInactive", nil)
	cdc.RegisterConcrete(&MsgAddBaseToken{}, "amm/MsgAddBaseToken", nil)
	cdc.RegisterConcrete(&MsgRemoveBaseToken{}, "amm/MsgRemoveBaseToken", nil)
	cdc.RegisterConcrete(&MsgSetLpFee{}, "amm/MsgSetLpFee", nil)
	cdc.RegisterConcrete(&MsgSetOwnerFee{}, "amm/MsgSetOwnerFee", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "amm/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgSwapFixedInput{}, "amm/MsgSwapFixedInput", nil)
	cdc.RegisterConcrete(&MsgSwapFixedOutput{}, "amm/MsgSwapFixedOutput", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgActivate{}, "amm/MsgActivate", nil)
	cdc.RegisterConcrete(&MsgDeactivate{}, "amm/MsgDeactivate", nil)
	cdc.RegisterConcrete(&MsgSetLaunchpadAddress{}, "amm/MsgSetLaunchpadAddress", nil)
}

// ModuleCdc is the module's legacy amino codec
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
