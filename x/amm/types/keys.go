package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	ParamsKey                = []byte{0x01} // key for module parameters
	StateKey                 = []byte{0x02} // key for the contract activation state
	LaunchpadAddressKey      = []byte{0x03} // key for the launchpad service address
	IssuerAddressKey         = []byte{0x04} // key for the asset issuance service address
	BaseAssetKeyPrefix       = []byte{0x05} // prefix for the base asset set
	PairKeyPrefix            = []byte{0x06} // prefix for pair records by id
	NextPairIdKey            = []byte{0x07} // key for the next pair id counter
	PendingIssuanceKeyPrefix = []byte{0x08} // prefix for pending issuance records
	NextIssuanceIdKey        = []byte{0x09} // key for the issuance correlation id counter
	AccruedFeeKeyPrefix      = []byte{0x0A} // prefix for accrued owner fees per denom
	SharesKeyPrefix          = []byte{0x0B} // prefix for provider share positions per pair
)

// GetBaseAssetKey returns the store key for a base asset set member
func GetBaseAssetKey(denom string) []byte {
	return append(BaseAssetKeyPrefix, []byte(denom)...)
}

// GetPairKey returns the store key for a pair record
func GetPairKey(id uint64) []byte {
	return append(PairKeyPrefix, sdk.Uint64ToBigEndian(id)...)
}

// GetPendingIssuanceKey returns the store key for a pending issuance record
func GetPendingIssuanceKey(correlationId uint64) []byte {
	return append(PendingIssuanceKeyPrefix, sdk.Uint64ToBigEndian(correlationId)...)
}

// GetAccruedFeeKey returns the store key for accrued owner fees in a denom
func GetAccruedFeeKey(denom string) []byte {
	return append(AccruedFeeKeyPrefix, []byte(denom)...)
}

// GetSharesKey returns the store key for a provider's share position in a pair
func GetSharesKey(pairId uint64, provider sdk.AccAddress) []byte {
	return append(GetSharesPairPrefix(pairId), provider.Bytes()...)
}

// GetSharesPairPrefix returns the store prefix covering every share position
// in a pair.
func GetSharesPairPrefix(pairId uint64) []byte {
	return append(SharesKeyPrefix, sdk.Uint64ToBigEndian(pairId)...)
}
