package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// swapResult carries one settled trade: the amounts that actually move, the
// pair's new reserves and the owner-fee accrual.
type swapResult struct {
	amountIn      math.Int
	amountOut     math.Int
	newReserveIn  math.Int
	newReserveOut math.Int
	ownerFee      math.Int
	feeDenom      string
}

// SwapFixedInput trades an exact input for at least minAmountOut of tokenOut.
// The fee is charged on whichever side of the trade is the base asset, so
// fees always accrue in quote currency when one leg is an anchor.
func (k Keeper) SwapFixedInput(ctx context.Context, trader sdk.AccAddress, amountIn sdk.Coin, tokenOut string, minAmountOut math.Int) (amountOut math.Int, err error) {
	defer func() { k.recordSwap("fixed_input", err) }()

	pair, params, err := k.prepareSwap(ctx, amountIn.Denom, tokenOut)
	if err != nil {
		return math.Int{}, err
	}

	reserveIn, reserveOut := k.orientReserves(pair, amountIn.Denom)
	feeIn := k.HasBaseAsset(ctx, amountIn.Denom)

	var res swapResult
	if feeIn {
		lpFee, ownerFee, totalFee := params.SplitForInput(amountIn.Amount)
		netIn := amountIn.Amount.Sub(totalFee)
		if !netIn.IsPositive() {
			return math.Int{}, types.ErrInvalidAmount.Wrap("input too small after fees")
		}
		out, err := types.AmountOutNoFee(netIn, reserveIn, reserveOut)
		if err != nil {
			return math.Int{}, err
		}
		res = swapResult{
			amountIn:      amountIn.Amount,
			amountOut:     out,
			newReserveIn:  reserveIn.Add(netIn).Add(lpFee),
			newReserveOut: reserveOut.Sub(out),
			ownerFee:      ownerFee,
			feeDenom:      amountIn.Denom,
		}
	} else {
		out, err := types.AmountOutNoFee(amountIn.Amount, reserveIn, reserveOut)
		if err != nil {
			return math.Int{}, err
		}
		lpFee, ownerFee, totalFee := params.SplitForInput(out)
		res = swapResult{
			amountIn:      amountIn.Amount,
			amountOut:     out.Sub(totalFee),
			newReserveIn:  reserveIn.Add(amountIn.Amount),
			newReserveOut: reserveOut.Sub(out).Add(lpFee),
			ownerFee:      ownerFee,
			feeDenom:      tokenOut,
		}
	}

	if res.amountOut.IsNegative() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("input too small after fees")
	}
	if res.amountOut.LT(minAmountOut) {
		return math.Int{}, types.ErrInsufficientOutputAmount.Wrapf(
			"output %s below minimum %s", res.amountOut, minAmountOut)
	}

	if err := k.settleSwap(ctx, trader, pair, amountIn.Denom, tokenOut, res); err != nil {
		return math.Int{}, err
	}

	return res.amountOut, nil
}

// SwapFixedOutput trades for exactly amountOut of tokenOut, spending at most
// maxAmountIn of the deposited denom. Only the computed requirement is drawn
// from the trader, so no refund path is needed.
func (k Keeper) SwapFixedOutput(ctx context.Context, trader sdk.AccAddress, maxAmountIn sdk.Coin, tokenOut string, amountOut math.Int) (amountIn math.Int, err error) {
	defer func() { k.recordSwap("fixed_output", err) }()

	pair, params, err := k.prepareSwap(ctx, maxAmountIn.Denom, tokenOut)
	if err != nil {
		return math.Int{}, err
	}

	reserveIn, reserveOut := k.orientReserves(pair, maxAmountIn.Denom)
	feeIn := k.HasBaseAsset(ctx, maxAmountIn.Denom)

	var res swapResult
	if feeIn {
		inNoFee, err := types.AmountInNoFee(amountOut, reserveIn, reserveOut)
		if err != nil {
			return math.Int{}, err
		}
		lpFee, ownerFee, totalFee := params.SplitForInput(inNoFee)
		res = swapResult{
			amountIn:      inNoFee.Add(totalFee),
			amountOut:     amountOut,
			newReserveIn:  reserveIn.Add(inNoFee).Add(lpFee),
			newReserveOut: reserveOut.Sub(amountOut),
			ownerFee:      ownerFee,
			feeDenom:      maxAmountIn.Denom,
		}
	} else {
		// amountOut is what the trader must receive net of fees; the pool
		// is quoted for the grossed-up output.
		lpFee, ownerFee, totalFee := params.SplitForOutput(amountOut)
		grossOut := amountOut.Add(totalFee)
		in, err := types.AmountInNoFee(grossOut, reserveIn, reserveOut)
		if err != nil {
			return math.Int{}, err
		}
		res = swapResult{
			amountIn:      in,
			amountOut:     amountOut,
			newReserveIn:  reserveIn.Add(in),
			newReserveOut: reserveOut.Sub(grossOut).Add(lpFee),
			ownerFee:      ownerFee,
			feeDenom:      tokenOut,
		}
	}

	if res.amountIn.GT(maxAmountIn.Amount) {
		return math.Int{}, types.ErrExcessiveInputAmount.Wrapf(
			"required input %s exceeds deposit %s", res.amountIn, maxAmountIn.Amount)
	}

	if err := k.settleSwap(ctx, trader, pair, maxAmountIn.Denom, tokenOut, res); err != nil {
		return math.Int{}, err
	}

	return res.amountIn, nil
}

// recordSwap bumps the swap counter with the trade's final outcome. Every
// exit of a swap entry point passes through here so failed trades are never
// undercounted.
func (k Keeper) recordSwap(mode string, err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	k.metrics.SwapsTotal.WithLabelValues(mode, result).Inc()
}

// prepareSwap resolves and gates the pair for a trade.
func (k Keeper) prepareSwap(ctx context.Context, tokenIn, tokenOut string) (types.Pair, types.Params, error) {
	pair, found := k.GetPairByDenoms(ctx, tokenIn, tokenOut)
	if !found {
		return types.Pair{}, types.Params{}, types.ErrPairNotFound.Wrapf("no pair trades %s/%s", tokenIn, tokenOut)
	}
	if pair.State != types.PairActive {
		return types.Pair{}, types.Params{}, types.ErrPairNotActive.Wrapf("pair %d is %s", pair.Id, pair.State)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Pair{}, types.Params{}, err
	}
	return pair, params, nil
}

// orientReserves returns the pair's reserves as (in, out) for the given input
// denom.
func (k Keeper) orientReserves(pair types.Pair, tokenIn string) (reserveIn, reserveOut math.Int) {
	if tokenIn == pair.BaseToken {
		return pair.LiquidityBase, pair.LiquidityToken
	}
	return pair.LiquidityToken, pair.LiquidityBase
}

// settleSwap moves the trade's coins, writes back the pair's reserves and
// accrues the owner fee, all within the calling transaction.
func (k Keeper) settleSwap(ctx context.Context, trader sdk.AccAddress, pair types.Pair, tokenIn, tokenOut string, res swapResult) error {
	if tokenIn == pair.BaseToken {
		pair.LiquidityBase = res.newReserveIn
		pair.LiquidityToken = res.newReserveOut
	} else {
		pair.LiquidityToken = res.newReserveIn
		pair.LiquidityBase = res.newReserveOut
	}
	if pair.LiquidityBase.IsNegative() || pair.LiquidityToken.IsNegative() {
		return types.ErrInsufficientLiquidity.Wrapf("pair %d reserves would go negative", pair.Id)
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, sdk.NewCoins(sdk.NewCoin(tokenIn, res.amountIn))); err != nil {
		return fmt.Errorf("settleSwap: collect input: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, trader, sdk.NewCoins(sdk.NewCoin(tokenOut, res.amountOut))); err != nil {
		return fmt.Errorf("settleSwap: pay output: %w", err)
	}

	if err := k.SetPair(ctx, pair); err != nil {
		return err
	}
	if err := k.AccrueFee(ctx, res.feeDenom, res.ownerFee); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPairId, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, res.amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, res.amountOut.String()),
		),
	)
	return nil
}
