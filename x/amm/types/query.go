package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	State(ctx context.Context, req *QueryStateRequest) (*QueryStateResponse, error)
	LaunchpadAddress(ctx context.Context, req *QueryLaunchpadAddressRequest) (*QueryLaunchpadAddressResponse, error)
	BaseAssets(ctx context.Context, req *QueryBaseAssetsRequest) (*QueryBaseAssetsResponse, error)
	Pair(ctx context.Context, req *QueryPairRequest) (*QueryPairResponse, error)
	Pairs(ctx context.Context, req *QueryPairsRequest) (*QueryPairsResponse, error)
	PairByDenoms(ctx context.Context, req *QueryPairByDenomsRequest) (*QueryPairByDenomsResponse, error)
	PairByLpToken(ctx context.Context, req *QueryPairByLpTokenRequest) (*QueryPairByLpTokenResponse, error)
	AccruedFees(ctx context.Context, req *QueryAccruedFeesRequest) (*QueryAccruedFeesResponse, error)
	Shares(ctx context.Context, req *QuerySharesRequest) (*QuerySharesResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryStateRequest requests the contract activation state
type QueryStateRequest struct{}

// QueryStateResponse returns the contract activation state
type QueryStateResponse struct {
	State ContractState `json:"state"`
}

// QueryLaunchpadAddressRequest requests the configured launchpad address
type QueryLaunchpadAddressRequest struct{}

// QueryLaunchpadAddressResponse returns the configured launchpad address
type QueryLaunchpadAddressResponse struct {
	Address string `json:"address"`
}

// QueryBaseAssetsRequest requests the base asset set
type QueryBaseAssetsRequest struct{}

// QueryBaseAssetsResponse returns the base asset set
type QueryBaseAssetsResponse struct {
	Denoms []string `json:"denoms"`
}

// QueryPairRequest requests a single pair by id
type QueryPairRequest struct {
	PairId uint64 `json:"pair_id"`
}

// QueryPairResponse returns a single pair
type QueryPairResponse struct {
	Pair Pair `json:"pair"`
}

// QueryPairsRequest requests all pairs
type QueryPairsRequest struct{}

// QueryPairsResponse returns all pairs
type QueryPairsResponse struct {
	Pairs []Pair `json:"pairs"`
}

// QueryPairByDenomsRequest requests a pair by its unordered denom pair
type QueryPairByDenomsRequest struct {
	DenomA string `json:"denom_a"`
	DenomB string `json:"denom_b"`
}

// QueryPairByDenomsResponse returns the matching pair
type QueryPairByDenomsResponse struct {
	Pair Pair `json:"pair"`
}

// QueryPairByLpTokenRequest requests a pair by its LP token denom
type QueryPairByLpTokenRequest struct {
	LpToken string `json:"lp_token"`
}

// QueryPairByLpTokenResponse returns the matching pair
type QueryPairByLpTokenResponse struct {
	Pair Pair `json:"pair"`
}

// QueryAccruedFeesRequest requests the accumulated owner fees
type QueryAccruedFeesRequest struct{}

// QueryAccruedFeesResponse returns the accumulated owner fees
type QueryAccruedFeesResponse struct {
	Fees []AccruedFee `json:"fees"`
}

// QuerySharesRequest requests a provider's share position in a pair
type QuerySharesRequest struct {
	PairId   uint64 `json:"pair_id"`
	Provider string `json:"provider"`
}

// QuerySharesResponse returns a provider's share position
type QuerySharesResponse struct {
	Shares math.Int `json:"shares"`
}
