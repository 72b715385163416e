package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgActivate flips the contract to Active. Requires a configured launchpad
// address and a non-empty base asset set.
type MsgActivate struct {
	Signer string `json:"signer"`
}

// NewMsgActivate creates a new MsgActivate instance
func NewMsgActivate(signer string) *MsgActivate {
	return &MsgActivate{Signer: signer}
}

// Route implements the sdk.Msg interface
func (msg MsgActivate) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgActivate) Type() string { return "activate" }

// GetSigners implements the sdk.Msg interface
func (msg MsgActivate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgActivate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgActivate) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgDeactivate flips the contract to Inactive, unconditionally.
type MsgDeactivate struct {
	Signer string `json:"signer"`
}

// NewMsgDeactivate creates a new MsgDeactivate instance
func NewMsgDeactivate(signer string) *MsgDeactivate {
	return &MsgDeactivate{Signer: signer}
}

// Route implements the sdk.Msg interface
func (msg MsgDeactivate) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgDeactivate) Type() string { return "deactivate" }

// GetSigners implements the sdk.Msg interface
func (msg MsgDeactivate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeactivate) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeactivate) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgSetLaunchpadAddress configures the launchpad service address that is
// authorized equally with the owner for pair administration.
type MsgSetLaunchpadAddress struct {
	Signer  string `json:"signer"`
	Address string `json:"address"`
}

// NewMsgSetLaunchpadAddress creates a new MsgSetLaunchpadAddress instance
func NewMsgSetLaunchpadAddress(signer, address string) *MsgSetLaunchpadAddress {
	return &MsgSetLaunchpadAddress{Signer: signer, Address: address}
}

// Route implements the sdk.Msg interface
func (msg MsgSetLaunchpadAddress) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetLaunchpadAddress) Type() string { return "set_launchpad_address" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetLaunchpadAddress) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetLaunchpadAddress) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetLaunchpadAddress) ValidateBasic() error {
	if err := validateSigner(msg.Signer); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid launchpad address: %s", err)
	}
	return nil
}
