package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddLiquidity deposits both legs of a pair. The pair is resolved from the
// two coin denoms; at most the stated amounts are drawn, scaled down to the
// pool ratio.
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	AmountA  sdk.Coin `json:"amount_a"`
	AmountB  sdk.Coin `json:"amount_b"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, amountA, amountB sdk.Coin) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider: provider,
		AmountA:  amountA,
		AmountB:  amountB,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Provider)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if err := msg.AmountA.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid deposit coin: %s", err)
	}
	if err := msg.AmountB.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid deposit coin: %s", err)
	}
	if msg.AmountA.IsZero() || msg.AmountB.IsZero() {
		return sdkerrors.Wrap(ErrInvalidAmount, "both deposit amounts must be positive")
	}
	if msg.AmountA.Denom == msg.AmountB.Denom {
		return sdkerrors.Wrap(ErrInvalidAmount, "deposit legs must differ")
	}

	return nil
}

// MsgRemoveLiquidity redeems a share position for the underlying reserves.
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PairId   uint64   `json:"pair_id"`
	Shares   math.Int `json:"shares"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, pairId uint64, shares math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider: provider,
		PairId:   pairId,
		Shares:   shares,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Provider)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}

	return nil
}
