package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrUnauthorized             = errors.Register(ModuleName, 1, "caller is neither owner nor launchpad")
	ErrNotActive                = errors.Register(ModuleName, 2, "contract is not active")
	ErrNotReady                 = errors.Register(ModuleName, 3, "contract is not ready for activation")
	ErrWrongBaseToken           = errors.Register(ModuleName, 4, "wrong base token")
	ErrPairExists               = errors.Register(ModuleName, 5, "pair already exists")
	ErrPairNotFound             = errors.Register(ModuleName, 6, "pair not found")
	ErrBaseTokenExists          = errors.Register(ModuleName, 7, "base token already registered")
	ErrBaseTokenInUse           = errors.Register(ModuleName, 8, "base token anchors an existing pair")
	ErrFeeTooHigh               = errors.Register(ModuleName, 9, "combined fee rates too high")
	ErrWrongIssueCost           = errors.Register(ModuleName, 10, "wrong lp token issue cost")
	ErrNoLiquidity              = errors.Register(ModuleName, 11, "pair has no liquidity")
	ErrInsufficientOutputAmount = errors.Register(ModuleName, 12, "output amount less than minimum required")
	ErrExcessiveInputAmount     = errors.Register(ModuleName, 13, "required input exceeds maximum deposit")
	ErrPairNotActive            = errors.Register(ModuleName, 14, "pair is not active")
	ErrInvalidAmount            = errors.Register(ModuleName, 15, "invalid amount")
	ErrIssuanceNotFound         = errors.Register(ModuleName, 16, "pending issuance not found")
	ErrInvalidAddress           = errors.Register(ModuleName, 17, "invalid address")
	ErrInsufficientLiquidity    = errors.Register(ModuleName, 18, "insufficient liquidity in pair")
	ErrInsufficientShares       = errors.Register(ModuleName, 19, "insufficient share balance")
)
