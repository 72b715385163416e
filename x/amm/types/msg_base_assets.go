package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgAddBaseToken registers a denom as eligible to anchor new pairs.
type MsgAddBaseToken struct {
	Signer string `json:"signer"`
	Denom  string `json:"denom"`
}

// NewMsgAddBaseToken creates a new MsgAddBaseToken instance
func NewMsgAddBaseToken(signer, denom string) *MsgAddBaseToken {
	return &MsgAddBaseToken{Signer: signer, Denom: denom}
}

// Route implements the sdk.Msg interface
func (msg MsgAddBaseToken) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddBaseToken) Type() string { return "add_base_token" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddBaseToken) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddBaseToken) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddBaseToken) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.Denom == "" {
		return sdkerrors.Wrap(ErrWrongBaseToken, "denom cannot be empty")
	}
	return nil
}

// MsgRemoveBaseToken removes a denom from the base asset set. Rejected while
// any pair still anchors on it.
type MsgRemoveBaseToken struct {
	Signer string `json:"signer"`
	Denom  string `json:"denom"`
}

// NewMsgRemoveBaseToken creates a new MsgRemoveBaseToken instance
func NewMsgRemoveBaseToken(signer, denom string) *MsgRemoveBaseToken {
	return &MsgRemoveBaseToken{Signer: signer, Denom: denom}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveBaseToken) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveBaseToken) Type() string { return "remove_base_token" }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveBaseToken) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveBaseToken) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveBaseToken) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if msg.Denom == "" {
		return sdkerrors.Wrap(ErrWrongBaseToken, "denom cannot be empty")
	}
	return nil
}
