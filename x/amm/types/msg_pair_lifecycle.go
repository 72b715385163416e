package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgSetPairActive moves a pair into the Active state, enabling swaps.
type MsgSetPairActive struct {
	Signer string `json:"signer"`
	PairId uint64 `json:"pair_id"`
}

// NewMsgSetPairActive creates a new MsgSetPairActive instance
func NewMsgSetPairActive(signer string, pairId uint64) *MsgSetPairActive {
	return &MsgSetPairActive{Signer: signer, PairId: pairId}
}

// Route implements the sdk.Msg interface
func (msg MsgSetPairActive) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetPairActive) Type() string { return "set_pair_active" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetPairActive) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetPairActive) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetPairActive) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgSetPairActiveNoSwap moves a pair into the ActiveNoSwap state: deposits
// remain possible, trading stops.
type MsgSetPairActiveNoSwap struct {
	Signer string `json:"signer"`
	PairId uint64 `json:"pair_id"`
}

// NewMsgSetPairActiveNoSwap creates a new MsgSetPairActiveNoSwap instance
func NewMsgSetPairActiveNoSwap(signer string, pairId uint64) *MsgSetPairActiveNoSwap {
	return &MsgSetPairActiveNoSwap{Signer: signer, PairId: pairId}
}

// Route implements the sdk.Msg interface
func (msg MsgSetPairActiveNoSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetPairActiveNoSwap) Type() string { return "set_pair_active_no_swap" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetPairActiveNoSwap) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetPairActiveNoSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetPairActiveNoSwap) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

// MsgSetPairInactive disables a pair entirely.
type MsgSetPairInactive struct {
	Signer string `json:"signer"`
	PairId uint64 `json:"pair_id"`
}

// NewMsgSetPairInactive creates a new MsgSetPairInactive instance
func NewMsgSetPairInactive(signer string, pairId uint64) *MsgSetPairInactive {
	return &MsgSetPairInactive{Signer: signer, PairId: pairId}
}

// Route implements the sdk.Msg interface
func (msg MsgSetPairInactive) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetPairInactive) Type() string { return "set_pair_inactive" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetPairInactive) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Signer)}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetPairInactive) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetPairInactive) ValidateBasic() error {
	return validateSigner(msg.Signer)
}

func validateSigner(signer string) error {
	if _, err := sdk.AccAddressFromBech32(signer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid signer address: %s", err)
	}
	return nil
}

func mustAccAddress(addr string) sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return acc
}
