package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	// Pair creation and issuance
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	LpTokenIssueCallback(context.Context, *MsgLpTokenIssueCallback) (*MsgLpTokenIssueCallbackResponse, error)

	// Pair lifecycle
	SetPairActive(context.Context, *MsgSetPairActive) (*MsgSetPairActiveResponse, error)
	SetPairActiveNoSwap(context.Context, *MsgSetPairActiveNoSwap) (*MsgSetPairActiveNoSwapResponse, error)
	SetPairInactive(context.Context, *MsgSetPairInactive) (*MsgSetPairInactiveResponse, error)

	// Base asset registry
	AddBaseToken(context.Context, *MsgAddBaseToken) (*MsgAddBaseTokenResponse, error)
	RemoveBaseToken(context.Context, *MsgRemoveBaseToken) (*MsgRemoveBaseTokenResponse, error)

	// Fee administration
	SetLpFee(context.Context, *MsgSetLpFee) (*MsgSetLpFeeResponse, error)
	SetOwnerFee(context.Context, *MsgSetOwnerFee) (*MsgSetOwnerFeeResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)

	// Trading
	SwapFixedInput(context.Context, *MsgSwapFixedInput) (*MsgSwapFixedInputResponse, error)
	SwapFixedOutput(context.Context, *MsgSwapFixedOutput) (*MsgSwapFixedOutputResponse, error)

	// Liquidity provisioning
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)

	// Activation and configuration
	Activate(context.Context, *MsgActivate) (*MsgActivateResponse, error)
	Deactivate(context.Context, *MsgDeactivate) (*MsgDeactivateResponse, error)
	SetLaunchpadAddress(context.Context, *MsgSetLaunchpadAddress) (*MsgSetLaunchpadAddressResponse, error)
}

// Response types

// MsgCreatePairResponse defines the response for CreatePair. The pair itself
// does not exist until the issuance callback commits it; the correlation id
// identifies the pending request.
type MsgCreatePairResponse struct {
	CorrelationId uint64 `json:"correlation_id"`
}

// MsgLpTokenIssueCallbackResponse defines the response for LpTokenIssueCallback
type MsgLpTokenIssueCallbackResponse struct {
	PairId uint64 `json:"pair_id,omitempty"`
}

// MsgSetPairActiveResponse defines the response for SetPairActive
type MsgSetPairActiveResponse struct{}

// MsgSetPairActiveNoSwapResponse defines the response for SetPairActiveNoSwap
type MsgSetPairActiveNoSwapResponse struct{}

// MsgSetPairInactiveResponse defines the response for SetPairInactive
type MsgSetPairInactiveResponse struct{}

// MsgAddBaseTokenResponse defines the response for AddBaseToken
type MsgAddBaseTokenResponse struct{}

// MsgRemoveBaseTokenResponse defines the response for RemoveBaseToken
type MsgRemoveBaseTokenResponse struct{}

// MsgSetLpFeeResponse defines the response for SetLpFee
type MsgSetLpFeeResponse struct{}

// MsgSetOwnerFeeResponse defines the response for SetOwnerFee
type MsgSetOwnerFeeResponse struct{}

// MsgWithdrawFeesResponse defines the response for WithdrawFees
type MsgWithdrawFeesResponse struct {
	Withdrawn []AccruedFee `json:"withdrawn"`
}

// MsgSwapFixedInputResponse defines the response for SwapFixedInput
type MsgSwapFixedInputResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgSwapFixedOutputResponse defines the response for SwapFixedOutput
type MsgSwapFixedOutputResponse struct {
	AmountIn math.Int `json:"amount_in"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity. The used
// amounts may be below the offered ones when the deposit is scaled to the
// pool ratio.
type MsgAddLiquidityResponse struct {
	PairId    uint64   `json:"pair_id"`
	Shares    math.Int `json:"shares"`
	UsedToken math.Int `json:"used_token"`
	UsedBase  math.Int `json:"used_base"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountToken math.Int `json:"amount_token"`
	AmountBase  math.Int `json:"amount_base"`
}

// MsgActivateResponse defines the response for Activate
type MsgActivateResponse struct{}

// MsgDeactivateResponse defines the response for Deactivate
type MsgDeactivateResponse struct{}

// MsgSetLaunchpadAddressResponse defines the response for SetLaunchpadAddress
type MsgSetLaunchpadAddressResponse struct{}
