package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/pondswap/pond/x/amm/types"
)

// Keeper of the amm store. The keeper exclusively owns all pair records, the
// fee schedule, the accrued fee map and the base asset set; external
// collaborators are reached only through the expected-keeper interfaces.
type Keeper struct {
	storeKey     storetypes.StoreKey
	bankKeeper   types.BankKeeper
	issuerKeeper types.IssuerKeeper

	// authority is the owner identity: the only caller allowed to configure
	// fees and the base asset set, and the recipient of withdrawn fees.
	authority string

	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	issuerKeeper types.IssuerKeeper,
	authority string,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic("invalid amm authority address: " + err.Error())
	}

	return Keeper{
		storeKey:     key,
		bankKeeper:   bankKeeper,
		issuerKeeper: issuerKeeper,
		authority:    authority,
		metrics:      NewMetrics(),
	}
}

// GetAuthority returns the module's owner address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding pooled reserves,
// pending issue fees and accrued owner fees.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetLaunchpadAddress returns the configured launchpad service address, or
// empty if none is set.
func (k Keeper) GetLaunchpadAddress(ctx context.Context) string {
	bz := k.getStore(ctx).Get(types.LaunchpadAddressKey)
	return string(bz)
}

// SetLaunchpadAddress stores the launchpad service address
func (k Keeper) SetLaunchpadAddress(ctx context.Context, address string) {
	k.getStore(ctx).Set(types.LaunchpadAddressKey, []byte(address))
}

// GetIssuerAddress returns the configured asset issuance service address, or
// empty if none is set.
func (k Keeper) GetIssuerAddress(ctx context.Context) string {
	bz := k.getStore(ctx).Get(types.IssuerAddressKey)
	return string(bz)
}

// SetIssuerAddress stores the asset issuance service address
func (k Keeper) SetIssuerAddress(ctx context.Context, address string) {
	k.getStore(ctx).Set(types.IssuerAddressKey, []byte(address))
}

// requireOwner authorizes owner-only operations: fee configuration, base
// asset mutation and fee withdrawal.
func (k Keeper) requireOwner(signer string) error {
	if signer != k.authority {
		return types.ErrUnauthorized.Wrapf("caller %s is not the owner", signer)
	}
	return nil
}

// requireOwnerOrLaunchpad authorizes pair-admin operations: the owner and the
// launchpad service are equally privileged.
func (k Keeper) requireOwnerOrLaunchpad(ctx context.Context, signer string) error {
	if signer == k.authority {
		return nil
	}
	if launchpad := k.GetLaunchpadAddress(ctx); launchpad != "" && signer == launchpad {
		return nil
	}
	return types.ErrUnauthorized.Wrapf("caller %s is neither owner nor launchpad", signer)
}
