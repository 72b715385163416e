package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pondswap/pond/x/amm/keeper"
	"github.com/pondswap/pond/x/amm/types"
)

// Test identities used across the amm keeper suites.
var (
	TestOwner     = sdk.AccAddress([]byte("amm_test_owner______")).String()
	TestLaunchpad = sdk.AccAddress([]byte("amm_test_launchpad__")).String()
	TestIssuer    = sdk.AccAddress([]byte("amm_test_issuer_____")).String()
	TestTrader    = sdk.AccAddress([]byte("amm_test_trader_____")).String()
)

// MockBankKeeper is an in-memory asset transfer service. Transfers always
// succeed; the mock records balances per account so tests can assert exact
// payouts and refunds.
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty mock bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{Balances: make(map[string]sdk.Coins)}
}

// Fund credits an account without a counterparty
func (m *MockBankKeeper) Fund(addr string, coins sdk.Coins) {
	m.Balances[addr] = m.Balances[addr].Add(coins...)
}

// SpendableCoins implements types.BankKeeper
func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Balances[addr.String()]
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	m.Balances[senderAddr.String()] = m.Balances[senderAddr.String()].Sub(amt...)
	m.Balances[recipientModule] = m.Balances[recipientModule].Add(amt...)
	return nil
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	m.Balances[senderModule] = m.Balances[senderModule].Sub(amt...)
	m.Balances[recipientAddr.String()] = m.Balances[recipientAddr.String()].Add(amt...)
	return nil
}

// IssueRequest is one recorded issuance submission.
type IssueRequest struct {
	Name          string
	Ticker        string
	Decimals      uint32
	CorrelationId uint64
}

// MockIssuerKeeper records issuance requests; tests drive the asynchronous
// callback themselves through the msg server.
type MockIssuerKeeper struct {
	Requests []IssueRequest
	FailNext bool
}

// NewMockIssuerKeeper creates an empty mock issuer
func NewMockIssuerKeeper() *MockIssuerKeeper {
	return &MockIssuerKeeper{}
}

// RequestIssue implements types.IssuerKeeper
func (m *MockIssuerKeeper) RequestIssue(_ context.Context, name, ticker string, decimals uint32, correlationId uint64) error {
	if m.FailNext {
		m.FailNext = false
		return types.ErrInvalidAmount.Wrap("issuer rejected request")
	}
	m.Requests = append(m.Requests, IssueRequest{
		Name:          name,
		Ticker:        ticker,
		Decimals:      decimals,
		CorrelationId: correlationId,
	})
	return nil
}

// MockLaunchpadKeeper serves a fixed designated base asset.
type MockLaunchpadKeeper struct {
	Designated string
}

// DesignatedBaseAsset implements types.LaunchpadKeeper
func (m MockLaunchpadKeeper) DesignatedBaseAsset(_ context.Context) (string, error) {
	return m.Designated, nil
}

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// multistore and mock collaborators.
func AmmKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *MockBankKeeper, *MockIssuerKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	issuer := NewMockIssuerKeeper()

	k := keeper.NewKeeper(storeKey, bank, issuer, TestOwner)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	genesis := types.DefaultGenesis()
	genesis.LaunchpadAddress = TestLaunchpad
	genesis.IssuerAddress = TestIssuer
	require.NoError(t, k.InitGenesis(ctx, *genesis, MockLaunchpadKeeper{Designated: "uusdc"}))

	return k, ctx, bank, issuer
}

// ActivateContract flips the contract on for tests that exercise trading.
func ActivateContract(t testing.TB, k keeper.Keeper, ctx sdk.Context) {
	require.NoError(t, k.Activate(ctx))
}

// SeedPair writes a committed pair directly into state, bypassing the
// issuance round-trip, and backs the reserves with module balance so swaps
// and redemptions can settle.
func SeedPair(t testing.TB, k keeper.Keeper, ctx sdk.Context, bank *MockBankKeeper, state types.PairState, token, baseToken string, reserveToken, reserveBase math.Int) types.Pair {
	_, ticker := types.LpTokenNaming(token, baseToken)

	id := k.GetNextPairId(ctx)
	pair := types.Pair{
		Id:             id,
		State:          state,
		Token:          token,
		BaseToken:      baseToken,
		Decimals:       6,
		LpToken:        ticker,
		LpSupply:       math.ZeroInt(),
		LiquidityToken: reserveToken,
		LiquidityBase:  reserveBase,
	}
	require.NoError(t, k.SetPair(ctx, pair))
	k.SetNextPairId(ctx, id+1)

	backing := sdk.NewCoins(
		sdk.NewCoin(token, reserveToken),
		sdk.NewCoin(baseToken, reserveBase),
	)
	if bank != nil && !backing.IsZero() {
		bank.Fund(types.ModuleName, backing)
	}
	return pair
}
