package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSetLpFee sets the liquidity-provider fee rate.
type MsgSetLpFee struct {
	Signer string `json:"signer"`
	Rate   uint64 `json:"rate"`
}

// NewMsgSetLpFee creates a new MsgSetLpFee instance
func NewMsgSetLpFee(signer string, rate uint64) *MsgSetLpFee {
	return &MsgSetLpFee{Signer: signer, Rate: rate}
}

// Route implements the sdk.Msg interface
func (msg MsgSetLpFee) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetLpFee) Type() string { return "set_lp_fee" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetLpFee) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetLpFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetLpFee) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.Rate >= MaxPercent {
		return sdkerrors.Wrapf(ErrFeeTooHigh, "rate %d must stay below %d", msg.Rate, MaxPercent)
	}
	return nil
}

// MsgSetOwnerFee sets the operator fee rate.
type MsgSetOwnerFee struct {
	Signer string `json:"signer"`
	Rate   uint64 `json:"rate"`
}

// NewMsgSetOwnerFee creates a new MsgSetOwnerFee instance
func NewMsgSetOwnerFee(signer string, rate uint64) *MsgSetOwnerFee {
	return &MsgSetOwnerFee{Signer: signer, Rate: rate}
}

// Route implements the sdk.Msg interface
func (msg MsgSetOwnerFee) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetOwnerFee) Type() string { return "set_owner_fee" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetOwnerFee) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetOwnerFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetOwnerFee) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.Rate >= MaxPercent {
		return sdkerrors.Wrapf(ErrFeeTooHigh, "rate %d must stay below %d", msg.Rate, MaxPercent)
	}
	return nil
}

// MsgWithdrawFees drains every accrued owner fee to the owner in one batch.
type MsgWithdrawFees struct {
	Signer string `json:"signer"`
}

// NewMsgWithdrawFees creates a new MsgWithdrawFees instance
func NewMsgWithdrawFees(signer string) *MsgWithdrawFees {
	return &MsgWithdrawFees{Signer: signer}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawFees) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdrawFees) Type() string { return "withdraw_fees" }

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawFees) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawFees) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawFees) ValidateBasic() error {
	return validateSigner(msg.Signer)
}
