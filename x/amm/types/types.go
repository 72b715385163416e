package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxPercent is the denominator for all fee rates: rates are expressed in
// parts per ten thousand.
const MaxPercent uint64 = 10_000

// LP token naming constraints imposed by the asset issuance service.
const (
	LpTokenNamePrefix = "Pond"
	LpTokenNameSuffix = "LP"
	LpTokenDecimals   = 18

	// MaxLpTickerLen bounds the issued symbol length.
	MaxLpTickerLen = 10

	// MaxLpNameLen bounds the issued display name length, prefix and
	// suffix included.
	MaxLpNameLen = 20
)

// ContractState is the process-wide activation switch gating all trading and
// pair-admin operations.
type ContractState int32

const (
	StateInactive ContractState = iota
	StateActive
)

// String returns the human-readable contract state
func (s ContractState) String() string {
	switch s {
	case StateActive:
		return "active"
	default:
		return "inactive"
	}
}

// PairState is the lifecycle state of a single trading pair.
type PairState int32

const (
	PairInactive PairState = iota
	PairActiveNoSwap
	PairActive
)

// String returns the human-readable pair state
func (s PairState) String() string {
	switch s {
	case PairActive:
		return "active"
	case PairActiveNoSwap:
		return "active_no_swap"
	default:
		return "inactive"
	}
}

// Pair is one trading market: a quoted token against a base-asset anchor,
// backed by two pooled reserves and an issued LP receipt token.
type Pair struct {
	Id             uint64    `json:"id"`
	State          PairState `json:"state"`
	Token          string    `json:"token"`
	BaseToken      string    `json:"base_token"`
	Decimals       uint32    `json:"decimals"`
	LpToken        string    `json:"lp_token"`
	LpSupply       math.Int  `json:"lp_supply"`
	LiquidityToken math.Int  `json:"liquidity_token"`
	LiquidityBase  math.Int  `json:"liquidity_base"`
}

// Matches reports whether the pair trades the given unordered denom pair.
func (p Pair) Matches(denomA, denomB string) bool {
	if p.BaseToken == denomA && p.Token == denomB {
		return true
	}
	return p.Token == denomA && p.BaseToken == denomB
}

// Validate checks the pair record's internal invariants.
func (p Pair) Validate() error {
	if p.Token == "" || p.BaseToken == "" {
		return ErrInvalidAmount.Wrap("pair token denoms cannot be empty")
	}
	if p.Token == p.BaseToken {
		return ErrWrongBaseToken.Wrap("pair legs must differ")
	}
	if p.LpSupply.IsNil() || p.LpSupply.IsNegative() {
		return ErrInvalidAmount.Wrapf("pair %d lp supply must be non-negative", p.Id)
	}
	if p.LiquidityToken.IsNil() || p.LiquidityToken.IsNegative() {
		return ErrInvalidAmount.Wrapf("pair %d token reserve must be non-negative", p.Id)
	}
	if p.LiquidityBase.IsNil() || p.LiquidityBase.IsNegative() {
		return ErrInvalidAmount.Wrapf("pair %d base reserve must be non-negative", p.Id)
	}
	if p.State == PairActive && p.LiquidityToken.IsZero() {
		return ErrNoLiquidity.Wrapf("pair %d cannot be active with zero reserves", p.Id)
	}
	return nil
}

// PendingIssuance is the correlation record for an in-flight LP token
// issuance. It is the only state observable between the createPair request
// and the issuer's callback, and it is consumed exactly once by that
// callback. It is never surfaced as a Pair.
type PendingIssuance struct {
	CorrelationId uint64   `json:"correlation_id"`
	Caller        string   `json:"caller"`
	BaseToken     string   `json:"base_token"`
	Token         string   `json:"token"`
	Decimals      uint32   `json:"decimals"`
	FeePaid       sdk.Coin `json:"fee_paid"`
}

// SharesPosition is one provider's stake in one pair's pooled reserves. The
// sum of all positions in a pair never exceeds the pair's LP supply; supply
// issued off-module carries no position record.
type SharesPosition struct {
	PairId   uint64   `json:"pair_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// AccruedFee is one accumulated owner-fee entry, used in genesis and queries.
type AccruedFee struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// LpTokenNaming derives the issuance service's display name and symbol for a
// pair's LP token from the two leg tickers, truncated to the registrar's
// length limits.
func LpTokenNaming(token, baseToken string) (name, ticker string) {
	ticker = tickerOf(token) + tickerOf(baseToken)

	maxBody := MaxLpNameLen - len(LpTokenNamePrefix) - len(LpTokenNameSuffix)
	if len(ticker) > maxBody {
		ticker = ticker[:maxBody]
	}
	name = LpTokenNamePrefix + ticker + LpTokenNameSuffix

	if len(ticker) > MaxLpTickerLen {
		ticker = ticker[:MaxLpTickerLen]
	}
	return name, ticker
}

// tickerOf strips a single leading micro-denom marker so that "upond"
// contributes "POND" to derived LP names.
func tickerOf(denom string) string {
	body := denom
	if len(body) > 1 && body[0] == 'u' {
		body = body[1:]
	}
	upper := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return string(upper)
}
