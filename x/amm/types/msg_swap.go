package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSwapFixedInput trades an exact deposited amount for at least
// MinAmountOut of TokenOut.
type MsgSwapFixedInput struct {
	Trader       string   `json:"trader"`
	AmountIn     sdk.Coin `json:"amount_in"`
	TokenOut     string   `json:"token_out"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// NewMsgSwapFixedInput creates a new MsgSwapFixedInput instance
func NewMsgSwapFixedInput(trader string, amountIn sdk.Coin, tokenOut string, minAmountOut math.Int) *MsgSwapFixedInput {
	return &MsgSwapFixedInput{
		Trader:       trader,
		AmountIn:     amountIn,
		TokenOut:     tokenOut,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapFixedInput) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapFixedInput) Type() string { return "swap_fixed_input" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapFixedInput) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Trader)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapFixedInput) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapFixedInput) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if err := msg.AmountIn.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid input coin: %s", err)
	}
	if msg.AmountIn.IsZero() {
		return sdkerrors.Wrap(ErrInvalidAmount, "input amount must be positive")
	}

	if msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidAmount, "output denom cannot be empty")
	}
	if msg.TokenOut == msg.AmountIn.Denom {
		return sdkerrors.Wrap(ErrInvalidAmount, "cannot swap a token for itself")
	}

	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum output must be non-negative")
	}

	return nil
}

// MsgSwapFixedOutput trades at most the deposited MaxAmountIn for exactly
// AmountOut of TokenOut. Only the required input is drawn from the trader.
type MsgSwapFixedOutput struct {
	Trader      string   `json:"trader"`
	MaxAmountIn sdk.Coin `json:"max_amount_in"`
	TokenOut    string   `json:"token_out"`
	AmountOut   math.Int `json:"amount_out"`
}

// NewMsgSwapFixedOutput creates a new MsgSwapFixedOutput instance
func NewMsgSwapFixedOutput(trader string, maxAmountIn sdk.Coin, tokenOut string, amountOut math.Int) *MsgSwapFixedOutput {
	return &MsgSwapFixedOutput{
		Trader:      trader,
		MaxAmountIn: maxAmountIn,
		TokenOut:    tokenOut,
		AmountOut:   amountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapFixedOutput) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwapFixedOutput) Type() string { return "swap_fixed_output" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapFixedOutput) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Trader)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapFixedOutput) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapFixedOutput) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if err := msg.MaxAmountIn.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid input coin: %s", err)
	}
	if msg.MaxAmountIn.IsZero() {
		return sdkerrors.Wrap(ErrInvalidAmount, "maximum input must be positive")
	}

	if msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidAmount, "output denom cannot be empty")
	}
	if msg.TokenOut == msg.MaxAmountIn.Denom {
		return sdkerrors.Wrap(ErrInvalidAmount, "cannot swap a token for itself")
	}

	if msg.AmountOut.IsNil() || !msg.AmountOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "requested output must be positive")
	}

	return nil
}
