package types

// Event types for the AMM module
const (
	EventTypeActivate          = "amm_activate"
	EventTypeDeactivate        = "amm_deactivate"
	EventTypeIssuanceRequested = "amm_issuance_requested"
	EventTypePairCreated       = "amm_pair_created"
	EventTypeIssuanceRefunded  = "amm_issuance_refunded"
	EventTypePairStateChanged  = "amm_pair_state_changed"
	EventTypeBaseTokenAdded    = "amm_base_token_added"
	EventTypeBaseTokenRemoved  = "amm_base_token_removed"
	EventTypeFeeUpdated        = "amm_fee_updated"
	EventTypeFeesWithdrawn     = "amm_fees_withdrawn"
	EventTypeSwap              = "amm_swap"
	EventTypeLiquidityAdded    = "amm_liquidity_added"
	EventTypeLiquidityRemoved  = "amm_liquidity_removed"
)

// Event attribute keys
const (
	AttributeKeyPairId        = "pair_id"
	AttributeKeyCorrelationId = "correlation_id"
	AttributeKeyCaller        = "caller"
	AttributeKeyBaseToken     = "base_token"
	AttributeKeyToken         = "token"
	AttributeKeyLpToken       = "lp_token"
	AttributeKeyPairState     = "pair_state"
	AttributeKeyDenom         = "denom"
	AttributeKeyFeeKind       = "fee_kind"
	AttributeKeyRate          = "rate"
	AttributeKeyAmount        = "amount"
	AttributeKeyAmountIn      = "amount_in"
	AttributeKeyAmountOut     = "amount_out"
	AttributeKeyTokenIn       = "token_in"
	AttributeKeyTokenOut      = "token_out"
	AttributeKeyRefund        = "refund"
	AttributeKeyProvider      = "provider"
	AttributeKeyShares        = "shares"
)
