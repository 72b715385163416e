package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/pondswap/pond/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the amm QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// State returns the contract activation state
func (qs queryServer) State(goCtx context.Context, req *types.QueryStateRequest) (*types.QueryStateResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryStateResponse{State: qs.Keeper.GetState(goCtx)}, nil
}

// LaunchpadAddress returns the configured launchpad service address
func (qs queryServer) LaunchpadAddress(goCtx context.Context, req *types.QueryLaunchpadAddressRequest) (*types.QueryLaunchpadAddressResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryLaunchpadAddressResponse{Address: qs.Keeper.GetLaunchpadAddress(goCtx)}, nil
}

// BaseAssets returns the base asset set
func (qs queryServer) BaseAssets(goCtx context.Context, req *types.QueryBaseAssetsRequest) (*types.QueryBaseAssetsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryBaseAssetsResponse{Denoms: qs.Keeper.GetBaseAssets(goCtx)}, nil
}

// Pair returns a single pair by id
func (qs queryServer) Pair(goCtx context.Context, req *types.QueryPairRequest) (*types.QueryPairResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, found := qs.Keeper.GetPair(goCtx, req.PairId)
	if !found {
		return nil, types.ErrPairNotFound.Wrapf("pair %d", req.PairId)
	}
	return &types.QueryPairResponse{Pair: pair}, nil
}

// Pairs returns every committed pair
func (qs queryServer) Pairs(goCtx context.Context, req *types.QueryPairsRequest) (*types.QueryPairsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryPairsResponse{Pairs: qs.Keeper.GetAllPairs(goCtx)}, nil
}

// PairByDenoms returns the pair trading the given unordered denom pair
func (qs queryServer) PairByDenoms(goCtx context.Context, req *types.QueryPairByDenomsRequest) (*types.QueryPairByDenomsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, found := qs.Keeper.GetPairByDenoms(goCtx, req.DenomA, req.DenomB)
	if !found {
		return nil, types.ErrPairNotFound.Wrapf("no pair trades %s/%s", req.DenomA, req.DenomB)
	}
	return &types.QueryPairByDenomsResponse{Pair: pair}, nil
}

// PairByLpToken returns the pair owning the given LP token denom
func (qs queryServer) PairByLpToken(goCtx context.Context, req *types.QueryPairByLpTokenRequest) (*types.QueryPairByLpTokenResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, found := qs.Keeper.GetPairByLpToken(goCtx, req.LpToken)
	if !found {
		return nil, types.ErrPairNotFound.Wrapf("no pair issued %s", req.LpToken)
	}
	return &types.QueryPairByLpTokenResponse{Pair: pair}, nil
}

// AccruedFees returns the accumulated owner fees per denom
func (qs queryServer) AccruedFees(goCtx context.Context, req *types.QueryAccruedFeesRequest) (*types.QueryAccruedFeesResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}
	return &types.QueryAccruedFeesResponse{Fees: qs.Keeper.GetAllAccruedFees(goCtx)}, nil
}

// Shares returns a provider's share position in a pair
func (qs queryServer) Shares(goCtx context.Context, req *types.QuerySharesRequest) (*types.QuerySharesResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if _, found := qs.Keeper.GetPair(goCtx, req.PairId); !found {
		return nil, types.ErrPairNotFound.Wrapf("pair %d", req.PairId)
	}
	return &types.QuerySharesResponse{Shares: qs.Keeper.GetShares(goCtx, req.PairId, provider)}, nil
}
