package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgCreatePair begins the two-phase creation of a trading pair. The attached
// issue fee must equal the configured issue cost exactly.
type MsgCreatePair struct {
	Creator   string   `json:"creator"`
	BaseToken string   `json:"base_token"`
	Token     string   `json:"token"`
	Decimals  uint32   `json:"decimals"`
	IssueFee  sdk.Coin `json:"issue_fee"`
}

// NewMsgCreatePair creates a new MsgCreatePair instance
func NewMsgCreatePair(creator, baseToken, token string, decimals uint32, issueFee sdk.Coin) *MsgCreatePair {
	return &MsgCreatePair{
		Creator:   creator,
		BaseToken: baseToken,
		Token:     token,
		Decimals:  decimals,
		IssueFee:  issueFee,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePair) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePair) Type() string { return "create_pair" }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePair) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.BaseToken == "" || msg.Token == "" {
		return sdkerrors.Wrap(ErrWrongBaseToken, "token denominations cannot be empty")
	}

	if msg.BaseToken == msg.Token {
		return sdkerrors.Wrap(ErrWrongBaseToken, "token denominations must be different")
	}

	if err := msg.IssueFee.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrWrongIssueCost, "invalid issue fee: %s", err)
	}

	return nil
}

// MsgLpTokenIssueCallback is phase two of pair creation, sent only by the
// asset issuance service. Success carries the freshly issued LP token denom;
// failure triggers the fee refund.
type MsgLpTokenIssueCallback struct {
	Issuer        string `json:"issuer"`
	CorrelationId uint64 `json:"correlation_id"`
	LpToken       string `json:"lp_token"`
	Success       bool   `json:"success"`
}

// NewMsgLpTokenIssueCallback creates a new MsgLpTokenIssueCallback instance
func NewMsgLpTokenIssueCallback(issuer string, correlationId uint64, lpToken string, success bool) *MsgLpTokenIssueCallback {
	return &MsgLpTokenIssueCallback{
		Issuer:        issuer,
		CorrelationId: correlationId,
		LpToken:       lpToken,
		Success:       success,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgLpTokenIssueCallback) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgLpTokenIssueCallback) Type() string { return "lp_token_issue_callback" }

// GetSigners implements the sdk.Msg interface
func (msg MsgLpTokenIssueCallback) GetSigners() []sdk.AccAddress {
	issuer, err := sdk.AccAddressFromBech32(msg.Issuer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{issuer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgLpTokenIssueCallback) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgLpTokenIssueCallback) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Issuer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid issuer address: %s", err)
	}

	if msg.Success && msg.LpToken == "" {
		return sdkerrors.Wrap(ErrInvalidAmount, "successful issuance must carry the lp token denom")
	}

	return nil
}
