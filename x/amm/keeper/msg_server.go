package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePair starts the two-phase creation of a trading pair
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}
	if err := ms.requireOwnerOrLaunchpad(goCtx, msg.Creator); err != nil {
		return nil, err
	}
	if err := ms.requireActive(goCtx); err != nil {
		return nil, err
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: invalid creator address: %w", err)
	}

	correlationId, err := ms.Keeper.RequestPairIssuance(goCtx, creator, msg.BaseToken, msg.Token, msg.Decimals, msg.IssueFee)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePairResponse{CorrelationId: correlationId}, nil
}

// LpTokenIssueCallback completes or unwinds a pending pair creation. Only the
// configured issuance service may deliver it.
func (ms msgServer) LpTokenIssueCallback(goCtx context.Context, msg *types.MsgLpTokenIssueCallback) (*types.MsgLpTokenIssueCallbackResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("LpTokenIssueCallback: validate: %w", err)
	}

	issuer := ms.GetIssuerAddress(goCtx)
	if issuer == "" || msg.Issuer != issuer {
		return nil, types.ErrUnauthorized.Wrap("callback sender is not the issuance service")
	}

	if !msg.Success {
		if err := ms.Keeper.RefundFailedIssuance(goCtx, msg.CorrelationId); err != nil {
			return nil, err
		}
		return &types.MsgLpTokenIssueCallbackResponse{}, nil
	}

	pair, err := ms.Keeper.CommitIssuedPair(goCtx, msg.CorrelationId, msg.LpToken)
	if err != nil {
		return nil, err
	}
	return &types.MsgLpTokenIssueCallbackResponse{PairId: pair.Id}, nil
}

// SetPairActive handles the pair activation transition
func (ms msgServer) SetPairActive(goCtx context.Context, msg *types.MsgSetPairActive) (*types.MsgSetPairActiveResponse, error) {
	if err := ms.pairAdminGate(goCtx, msg.ValidateBasic, msg.Signer); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetPairActive(goCtx, msg.PairId); err != nil {
		return nil, err
	}
	return &types.MsgSetPairActiveResponse{}, nil
}

// SetPairActiveNoSwap handles the deposits-only transition
func (ms msgServer) SetPairActiveNoSwap(goCtx context.Context, msg *types.MsgSetPairActiveNoSwap) (*types.MsgSetPairActiveNoSwapResponse, error) {
	if err := ms.pairAdminGate(goCtx, msg.ValidateBasic, msg.Signer); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetPairActiveNoSwap(goCtx, msg.PairId); err != nil {
		return nil, err
	}
	return &types.MsgSetPairActiveNoSwapResponse{}, nil
}

// SetPairInactive handles the pair shutdown transition
func (ms msgServer) SetPairInactive(goCtx context.Context, msg *types.MsgSetPairInactive) (*types.MsgSetPairInactiveResponse, error) {
	if err := ms.pairAdminGate(goCtx, msg.ValidateBasic, msg.Signer); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetPairInactive(goCtx, msg.PairId); err != nil {
		return nil, err
	}
	return &types.MsgSetPairInactiveResponse{}, nil
}

// AddBaseToken registers a new base asset. Owner-only, contract must be
// active.
func (ms msgServer) AddBaseToken(goCtx context.Context, msg *types.MsgAddBaseToken) (*types.MsgAddBaseTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddBaseToken: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}
	if err := ms.requireActive(goCtx); err != nil {
		return nil, err
	}

	if err := ms.Keeper.AddBaseAsset(goCtx, msg.Denom); err != nil {
		return nil, err
	}
	return &types.MsgAddBaseTokenResponse{}, nil
}

// RemoveBaseToken removes a base asset. Owner-only, contract must be active.
func (ms msgServer) RemoveBaseToken(goCtx context.Context, msg *types.MsgRemoveBaseToken) (*types.MsgRemoveBaseTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveBaseToken: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}
	if err := ms.requireActive(goCtx); err != nil {
		return nil, err
	}

	if err := ms.Keeper.RemoveBaseAsset(goCtx, msg.Denom); err != nil {
		return nil, err
	}
	return &types.MsgRemoveBaseTokenResponse{}, nil
}

// SetLpFee updates the liquidity-provider fee rate. Owner-only.
func (ms msgServer) SetLpFee(goCtx context.Context, msg *types.MsgSetLpFee) (*types.MsgSetLpFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetLpFee: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetLpFee(goCtx, msg.Rate); err != nil {
		return nil, err
	}
	return &types.MsgSetLpFeeResponse{}, nil
}

// SetOwnerFee updates the operator fee rate. Owner-only.
func (ms msgServer) SetOwnerFee(goCtx context.Context, msg *types.MsgSetOwnerFee) (*types.MsgSetOwnerFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetOwnerFee: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetOwnerFee(goCtx, msg.Rate); err != nil {
		return nil, err
	}
	return &types.MsgSetOwnerFeeResponse{}, nil
}

// WithdrawFees drains every accrued owner fee to the owner. Owner-only.
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFees: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}

	withdrawn, err := ms.Keeper.WithdrawFees(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawFeesResponse{Withdrawn: withdrawn}, nil
}

// SwapFixedInput handles an exact-input trade
func (ms msgServer) SwapFixedInput(goCtx context.Context, msg *types.MsgSwapFixedInput) (*types.MsgSwapFixedInputResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapFixedInput: validate: %w", err)
	}
	if err := ms.requireActive(goCtx); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapFixedInput: invalid trader address: %w", err)
	}

	amountOut, err := ms.Keeper.SwapFixedInput(goCtx, trader, msg.AmountIn, msg.TokenOut, msg.MinAmountOut)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapFixedInputResponse{AmountOut: amountOut}, nil
}

// SwapFixedOutput handles an exact-output trade
func (ms msgServer) SwapFixedOutput(goCtx context.Context, msg *types.MsgSwapFixedOutput) (*types.MsgSwapFixedOutputResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapFixedOutput: validate: %w", err)
	}
	if err := ms.requireActive(goCtx); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapFixedOutput: invalid trader address: %w", err)
	}

	amountIn, err := ms.Keeper.SwapFixedOutput(goCtx, trader, msg.MaxAmountIn, msg.TokenOut, msg.AmountOut)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapFixedOutputResponse{AmountIn: amountIn}, nil
}

// AddLiquidity handles a two-leg deposit into a pair
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}
	if err := ms.requireActive(goCtx); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	pair, shares, used, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.AmountA, msg.AmountB)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddLiquidityResponse{
		PairId:    pair.Id,
		Shares:    shares,
		UsedToken: used.AmountOf(pair.Token),
		UsedBase:  used.AmountOf(pair.BaseToken),
	}, nil
}

// RemoveLiquidity handles a share redemption. Deliberately not gated on the
// contract switch: providers can always exit.
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	amountToken, amountBase, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PairId, msg.Shares)
	if err != nil {
		return nil, err
	}
	return &types.MsgRemoveLiquidityResponse{
		AmountToken: amountToken,
		AmountBase:  amountBase,
	}, nil
}

// Activate flips the contract on. Owner-only.
func (ms msgServer) Activate(goCtx context.Context, msg *types.MsgActivate) (*types.MsgActivateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Activate: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}

	if err := ms.Keeper.Activate(goCtx); err != nil {
		return nil, err
	}
	return &types.MsgActivateResponse{}, nil
}

// Deactivate flips the contract off. Owner-only, never fails.
func (ms msgServer) Deactivate(goCtx context.Context, msg *types.MsgDeactivate) (*types.MsgDeactivateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deactivate: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}

	ms.Keeper.Deactivate(goCtx)
	return &types.MsgDeactivateResponse{}, nil
}

// SetLaunchpadAddress configures the launchpad service address. Owner-only.
func (ms msgServer) SetLaunchpadAddress(goCtx context.Context, msg *types.MsgSetLaunchpadAddress) (*types.MsgSetLaunchpadAddressResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetLaunchpadAddress: validate: %w", err)
	}
	if err := ms.requireOwner(msg.Signer); err != nil {
		return nil, err
	}

	ms.Keeper.SetLaunchpadAddress(goCtx, msg.Address)
	return &types.MsgSetLaunchpadAddressResponse{}, nil
}

// pairAdminGate bundles the checks shared by the three lifecycle endpoints:
// basic validation, owner-or-launchpad authorization and the contract-active
// guard.
func (ms msgServer) pairAdminGate(goCtx context.Context, validate func() error, signer string) error {
	if err := validate(); err != nil {
		return err
	}
	if err := ms.requireOwnerOrLaunchpad(goCtx, signer); err != nil {
		return err
	}
	return ms.requireActive(goCtx)
}
