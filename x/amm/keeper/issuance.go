package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// Two-phase pair creation. Phase one validates the request, takes the issue
// fee into custody and submits an LP token issuance to the external issuer,
// keyed by a correlation id. Phase two, delivered exactly once by the issuer
// in a later transaction, either commits the pair record or refunds the fee.
// Between the phases the only observable state is the pending record and the
// held fee; no pair exists and the pair id counter has not moved.

// getNextIssuanceId hands out a fresh correlation id. The issuance counter is
// separate from the pair id counter: correlation ids are consumed by every
// request, pair ids only by committed pairs.
func (k Keeper) getNextIssuanceId(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.NextIssuanceIdKey)

	var id uint64
	if bz != nil {
		id = sdk.BigEndianToUint64(bz)
	}
	store.Set(types.NextIssuanceIdKey, sdk.Uint64ToBigEndian(id+1))
	return id
}

// SetNextIssuanceId sets the issuance correlation id counter
func (k Keeper) SetNextIssuanceId(ctx context.Context, id uint64) {
	k.getStore(ctx).Set(types.NextIssuanceIdKey, sdk.Uint64ToBigEndian(id))
}

// GetNextIssuanceId returns the issuance correlation id counter
func (k Keeper) GetNextIssuanceId(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.NextIssuanceIdKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// GetPendingIssuance retrieves a pending issuance record by correlation id
func (k Keeper) GetPendingIssuance(ctx context.Context, correlationId uint64) (types.PendingIssuance, bool) {
	bz := k.getStore(ctx).Get(types.GetPendingIssuanceKey(correlationId))
	if bz == nil {
		return types.PendingIssuance{}, false
	}

	var pending types.PendingIssuance
	if err := json.Unmarshal(bz, &pending); err != nil {
		panic(fmt.Errorf("corrupt pending issuance %d: %w", correlationId, err))
	}
	return pending, true
}

// SetPendingIssuance writes a pending issuance record
func (k Keeper) SetPendingIssuance(ctx context.Context, pending types.PendingIssuance) error {
	bz, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("SetPendingIssuance: marshal %d: %w", pending.CorrelationId, err)
	}
	k.getStore(ctx).Set(types.GetPendingIssuanceKey(pending.CorrelationId), bz)
	return nil
}

// GetAllPendingIssuances returns every in-flight issuance record, for genesis
// export.
func (k Keeper) GetAllPendingIssuances(ctx context.Context) []types.PendingIssuance {
	nextId := k.GetNextIssuanceId(ctx)
	var pendings []types.PendingIssuance
	for id := uint64(0); id < nextId; id++ {
		if pending, found := k.GetPendingIssuance(ctx, id); found {
			pendings = append(pendings, pending)
		}
	}
	return pendings
}

// RequestPairIssuance is phase one of createPair. The caller's deposit must
// equal the configured issue cost exactly; it is moved into module custody
// before the issuance request leaves the module.
func (k Keeper) RequestPairIssuance(ctx context.Context, creator sdk.AccAddress, baseToken, token string, decimals uint32, issueFee sdk.Coin) (uint64, error) {
	if !k.HasBaseAsset(ctx, baseToken) {
		return 0, types.ErrWrongBaseToken.Wrapf("%s is not a registered base token", baseToken)
	}
	if baseToken == token {
		return 0, types.ErrWrongBaseToken.Wrap("pair legs must differ")
	}

	if _, found := k.GetPairByDenoms(ctx, token, baseToken); found {
		return 0, types.ErrPairExists.Wrapf("pair %s/%s already exists", token, baseToken)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if issueFee.Denom != params.IssueDenom || !issueFee.Amount.Equal(params.IssueCost) {
		return 0, types.ErrWrongIssueCost.Wrapf(
			"issue cost is %s%s, got %s", params.IssueCost, params.IssueDenom, issueFee)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, sdk.NewCoins(issueFee)); err != nil {
		return 0, fmt.Errorf("RequestPairIssuance: collect issue fee: %w", err)
	}

	correlationId := k.getNextIssuanceId(ctx)
	pending := types.PendingIssuance{
		CorrelationId: correlationId,
		Caller:        creator.String(),
		BaseToken:     baseToken,
		Token:         token,
		Decimals:      decimals,
		FeePaid:       issueFee,
	}
	if err := k.SetPendingIssuance(ctx, pending); err != nil {
		return 0, err
	}

	name, ticker := types.LpTokenNaming(token, baseToken)
	if err := k.issuerKeeper.RequestIssue(ctx, name, ticker, types.LpTokenDecimals, correlationId); err != nil {
		return 0, fmt.Errorf("RequestPairIssuance: submit issuance: %w", err)
	}

	k.metrics.IssuanceRequests.WithLabelValues("requested").Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIssuanceRequested,
			sdk.NewAttribute(types.AttributeKeyCorrelationId, fmt.Sprintf("%d", correlationId)),
			sdk.NewAttribute(types.AttributeKeyCaller, creator.String()),
			sdk.NewAttribute(types.AttributeKeyBaseToken, baseToken),
			sdk.NewAttribute(types.AttributeKeyToken, token),
		),
	)
	return correlationId, nil
}

// CommitIssuedPair is the success arm of phase two: it consumes the pending
// record, allocates the next pair id and commits the pair in ActiveNoSwap
// with zero reserves.
func (k Keeper) CommitIssuedPair(ctx context.Context, correlationId uint64, lpToken string) (types.Pair, error) {
	pending, found := k.GetPendingIssuance(ctx, correlationId)
	if !found {
		return types.Pair{}, types.ErrIssuanceNotFound.Wrapf("correlation id %d", correlationId)
	}
	k.getStore(ctx).Delete(types.GetPendingIssuanceKey(correlationId))

	pair := types.Pair{
		Id:             k.allocatePairId(ctx),
		State:          types.PairActiveNoSwap,
		Token:          pending.Token,
		BaseToken:      pending.BaseToken,
		Decimals:       pending.Decimals,
		LpToken:        lpToken,
		LpSupply:       math.ZeroInt(),
		LiquidityToken: math.ZeroInt(),
		LiquidityBase:  math.ZeroInt(),
	}
	if err := k.SetPair(ctx, pair); err != nil {
		return types.Pair{}, err
	}

	k.metrics.IssuanceRequests.WithLabelValues("committed").Inc()
	k.metrics.PairsTotal.Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyToken, pair.Token),
			sdk.NewAttribute(types.AttributeKeyBaseToken, pair.BaseToken),
			sdk.NewAttribute(types.AttributeKeyLpToken, pair.LpToken),
		),
	)
	return pair, nil
}

// RefundFailedIssuance is the failure arm of phase two: it consumes the
// pending record and returns exactly the deposited fee to the original
// caller. No pair is created and the pair id counter does not move.
func (k Keeper) RefundFailedIssuance(ctx context.Context, correlationId uint64) error {
	pending, found := k.GetPendingIssuance(ctx, correlationId)
	if !found {
		return types.ErrIssuanceNotFound.Wrapf("correlation id %d", correlationId)
	}
	k.getStore(ctx).Delete(types.GetPendingIssuanceKey(correlationId))

	caller := sdk.MustAccAddressFromBech32(pending.Caller)
	refund := sdk.NewCoins(pending.FeePaid)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, caller, refund); err != nil {
		return fmt.Errorf("RefundFailedIssuance: refund %s: %w", pending.Caller, err)
	}

	k.metrics.IssuanceRequests.WithLabelValues("refunded").Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIssuanceRefunded,
			sdk.NewAttribute(types.AttributeKeyCorrelationId, fmt.Sprintf("%d", correlationId)),
			sdk.NewAttribute(types.AttributeKeyCaller, pending.Caller),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
		),
	)
	return nil
}
