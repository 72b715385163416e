package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the full exported state of the amm module.
type GenesisState struct {
	Params           Params            `json:"params"`
	State            ContractState     `json:"state"`
	LaunchpadAddress string            `json:"launchpad_address,omitempty"`
	IssuerAddress    string            `json:"issuer_address,omitempty"`
	BaseAssets       []string          `json:"base_assets"`
	Pairs            []Pair            `json:"pairs"`
	NextPairId       uint64            `json:"next_pair_id"`
	NextIssuanceId   uint64            `json:"next_issuance_id"`
	PendingIssuances []PendingIssuance `json:"pending_issuances"`
	AccruedFees      []AccruedFee      `json:"accrued_fees"`
	Shares           []SharesPosition  `json:"shares"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		State:            StateInactive,
		BaseAssets:       []string{},
		Pairs:            []Pair{},
		NextPairId:       0,
		NextIssuanceId:   0,
		PendingIssuances: []PendingIssuance{},
		AccruedFees:      []AccruedFee{},
		Shares:           []SharesPosition{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	if gs.LaunchpadAddress != "" {
		if _, err := sdk.AccAddressFromBech32(gs.LaunchpadAddress); err != nil {
			return fmt.Errorf("invalid launchpad address: %w", err)
		}
	}
	if gs.IssuerAddress != "" {
		if _, err := sdk.AccAddressFromBech32(gs.IssuerAddress); err != nil {
			return fmt.Errorf("invalid issuer address: %w", err)
		}
	}

	if gs.State == StateActive && (gs.LaunchpadAddress == "" || len(gs.BaseAssets) == 0) {
		return fmt.Errorf("active state requires a launchpad address and a non-empty base asset set")
	}

	seenAssets := make(map[string]struct{}, len(gs.BaseAssets))
	for _, denom := range gs.BaseAssets {
		if denom == "" {
			return fmt.Errorf("base asset denom cannot be empty")
		}
		if _, ok := seenAssets[denom]; ok {
			return fmt.Errorf("duplicate base asset %s", denom)
		}
		seenAssets[denom] = struct{}{}
	}

	seenIds := make(map[uint64]struct{}, len(gs.Pairs))
	pairById := make(map[uint64]Pair, len(gs.Pairs))
	for i, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %d: %w", pair.Id, err)
		}
		if pair.Id >= gs.NextPairId {
			return fmt.Errorf("pair id %d not below next pair id %d", pair.Id, gs.NextPairId)
		}
		if _, ok := seenIds[pair.Id]; ok {
			return fmt.Errorf("duplicate pair id %d", pair.Id)
		}
		seenIds[pair.Id] = struct{}{}
		pairById[pair.Id] = pair

		for _, other := range gs.Pairs[:i] {
			if pair.Matches(other.Token, other.BaseToken) {
				return fmt.Errorf("pairs %d and %d trade the same denom pair", other.Id, pair.Id)
			}
		}
	}

	seenCids := make(map[uint64]struct{}, len(gs.PendingIssuances))
	for _, pending := range gs.PendingIssuances {
		if pending.CorrelationId >= gs.NextIssuanceId {
			return fmt.Errorf("pending issuance id %d not below next issuance id %d", pending.CorrelationId, gs.NextIssuanceId)
		}
		if _, ok := seenCids[pending.CorrelationId]; ok {
			return fmt.Errorf("duplicate pending issuance id %d", pending.CorrelationId)
		}
		seenCids[pending.CorrelationId] = struct{}{}
		if _, err := sdk.AccAddressFromBech32(pending.Caller); err != nil {
			return fmt.Errorf("invalid pending issuance caller: %w", err)
		}
		if err := pending.FeePaid.Validate(); err != nil {
			return fmt.Errorf("pending issuance %d fee: %w", pending.CorrelationId, err)
		}
	}

	seenFees := make(map[string]struct{}, len(gs.AccruedFees))
	for _, fee := range gs.AccruedFees {
		if fee.Denom == "" {
			return fmt.Errorf("accrued fee denom cannot be empty")
		}
		if _, ok := seenFees[fee.Denom]; ok {
			return fmt.Errorf("duplicate accrued fee denom %s", fee.Denom)
		}
		seenFees[fee.Denom] = struct{}{}
		if fee.Amount.IsNil() || fee.Amount.IsNegative() {
			return fmt.Errorf("accrued fee for %s must be non-negative", fee.Denom)
		}
	}

	seenPositions := make(map[string]struct{}, len(gs.Shares))
	sharesByPair := make(map[uint64]math.Int)
	for _, pos := range gs.Shares {
		if _, err := sdk.AccAddressFromBech32(pos.Provider); err != nil {
			return fmt.Errorf("invalid share position provider: %w", err)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return fmt.Errorf("share position for %s in pair %d must be positive", pos.Provider, pos.PairId)
		}
		if _, ok := pairById[pos.PairId]; !ok {
			return fmt.Errorf("share position references unknown pair %d", pos.PairId)
		}
		key := fmt.Sprintf("%d/%s", pos.PairId, pos.Provider)
		if _, ok := seenPositions[key]; ok {
			return fmt.Errorf("duplicate share position for %s in pair %d", pos.Provider, pos.PairId)
		}
		seenPositions[key] = struct{}{}

		sum, ok := sharesByPair[pos.PairId]
		if !ok {
			sum = math.ZeroInt()
		}
		sharesByPair[pos.PairId] = sum.Add(pos.Shares)
	}
	// Supply held outside the module carries no position record, so the
	// recorded positions may undershoot the pair's LP supply but never
	// exceed it.
	for pairId, sum := range sharesByPair {
		if sum.GT(pairById[pairId].LpSupply) {
			return fmt.Errorf("share positions for pair %d exceed its lp supply", pairId)
		}
	}

	return nil
}
