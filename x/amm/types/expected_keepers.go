package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the asset transfer service: it moves value between trader
// accounts and the module's pooled holdings, single coins or batched.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// IssuerKeeper is the asset issuance service boundary. RequestIssue submits a
// fungible-token issuance carrying the correlation id; the service answers in
// a later transaction through MsgLpTokenIssueCallback, exactly once per
// request.
type IssuerKeeper interface {
	RequestIssue(ctx context.Context, name, ticker string, decimals uint32, correlationId uint64) error
}

// LaunchpadKeeper is the external governance service. Its designated base
// asset seeds the base asset set at genesis.
type LaunchpadKeeper interface {
	DesignatedBaseAsset(ctx context.Context) (string, error)
}
