package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state. When a
// launchpad keeper is wired, its designated base asset seeds the registry in
// addition to the genesis list.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState, launchpad types.LaunchpadKeeper) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.LaunchpadAddress != "" {
		k.SetLaunchpadAddress(ctx, genState.LaunchpadAddress)
	}
	if genState.IssuerAddress != "" {
		k.SetIssuerAddress(ctx, genState.IssuerAddress)
	}

	for _, denom := range genState.BaseAssets {
		k.seedBaseAsset(ctx, denom)
	}
	if launchpad != nil {
		designated, err := launchpad.DesignatedBaseAsset(ctx)
		if err != nil {
			return fmt.Errorf("failed to query designated base asset: %w", err)
		}
		if designated != "" {
			k.seedBaseAsset(ctx, designated)
		}
	}

	k.setState(ctx, genState.State)

	k.SetNextPairId(ctx, genState.NextPairId)
	for _, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			return fmt.Errorf("failed to set pair %d: %w", pair.Id, err)
		}
	}

	k.SetNextIssuanceId(ctx, genState.NextIssuanceId)
	for _, pending := range genState.PendingIssuances {
		if err := k.SetPendingIssuance(ctx, pending); err != nil {
			return fmt.Errorf("failed to set pending issuance %d: %w", pending.CorrelationId, err)
		}
	}

	for _, fee := range genState.AccruedFees {
		if err := k.AccrueFee(ctx, fee.Denom, fee.Amount); err != nil {
			return fmt.Errorf("failed to accrue fee for %s: %w", fee.Denom, err)
		}
	}

	for _, pos := range genState.Shares {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return fmt.Errorf("invalid share position provider: %w", err)
		}
		if err := k.setShares(ctx, pos.PairId, provider, pos.Shares); err != nil {
			return fmt.Errorf("failed to set share position for %s: %w", pos.Provider, err)
		}
	}

	return nil
}

// ExportGenesis returns the amm module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export params: %w", err)
	}

	return &types.GenesisState{
		Params:           params,
		State:            k.GetState(ctx),
		LaunchpadAddress: k.GetLaunchpadAddress(ctx),
		IssuerAddress:    k.GetIssuerAddress(ctx),
		BaseAssets:       k.GetBaseAssets(ctx),
		Pairs:            k.GetAllPairs(ctx),
		NextPairId:       k.GetNextPairId(ctx),
		NextIssuanceId:   k.GetNextIssuanceId(ctx),
		PendingIssuances: k.GetAllPendingIssuances(ctx),
		AccruedFees:      k.GetAllAccruedFees(ctx),
		Shares:           k.GetAllSharesPositions(ctx),
	}, nil
}
