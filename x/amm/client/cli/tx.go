package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePair(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwapExactInput(),
		CmdSwapExactOutput(),
	)
	ammTxCmd.AddCommand(adminTxCommands()...)

	return ammTxCmd
}

// CmdCreatePair returns a CLI command handler for requesting a new trading pair
func CmdCreatePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pair [base-token] [token] [decimals] [issue-fee]",
		Short: "Request creation of a new trading pair",
		Long: `Request creation of a trading pair between a registered base asset and a
token. The issue fee pays the LP token issuance service; the pair is committed
asynchronously once the issuance callback arrives.

Example:
  $ pondd tx amm create-pair uusdc utkn 6 50000000000000000upond --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			decimals, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid decimals: %w", err)
			}

			issueFee, err := sdk.ParseCoinNormalized(args[3])
			if err != nil {
				return fmt.Errorf("invalid issue fee: %w", err)
			}

			msg := types.NewMsgCreatePair(
				clientCtx.GetFromAddress().String(), args[0], args[1], uint32(decimals), issueFee)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing into a pair
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [coin-a] [coin-b]",
		Short: "Deposit both legs of a pair for LP shares",
		Long: `Deposit both legs of a trading pair. Deposits after the first are scaled
down to the pool's current price, so at most the offered amounts are drawn.

Example:
  $ pondd tx amm add-liquidity 1000000utkn 2000000uusdc --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			coinA, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid coin-a: %w", err)
			}
			coinB, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return fmt.Errorf("invalid coin-b: %w", err)
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), coinA, coinB)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for redeeming LP shares
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pair-id] [shares]",
		Short: "Redeem LP shares for both legs of a pair",
		Long: `Redeem LP shares for a pro-rata cut of both reserves.

Example:
  $ pondd tx amm remove-liquidity 1 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			pairId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pair id: %w", err)
			}

			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), pairId, shares)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactInput returns a CLI command handler for an exact-input trade
func CmdSwapExactInput() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-input [amount-in] [token-out] [min-amount-out]",
		Short: "Swap an exact input amount for at least min-amount-out",
		Long: `Swap an exact deposit for at least min-amount-out of the other leg.
The trade fails without effect if the output would fall below the minimum.

Example:
  $ pondd tx amm swap-exact-input 1000000uusdc utkn 950000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount-in: %w", err)
			}

			minOut, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[2])
			}

			msg := types.NewMsgSwapFixedInput(
				clientCtx.GetFromAddress().String(), amountIn, args[1], minOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactOutput returns a CLI command handler for an exact-output trade
func CmdSwapExactOutput() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-output [max-amount-in] [token-out] [amount-out]",
		Short: "Swap at most max-amount-in for an exact output amount",
		Long: `Swap for an exact amount of the other leg, spending at most the deposited
maximum. Only the computed requirement is drawn from the trader.

Example:
  $ pondd tx amm swap-exact-output 1100000uusdc utkn 1000000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			maxIn, err := sdk.ParseCoinNormalized(args[0])
			if err != nil {
				return fmt.Errorf("invalid max-amount-in: %w", err)
			}

			amountOut, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-out: %s (must be integer)", args[2])
			}

			msg := types.NewMsgSwapFixedOutput(
				clientCtx.GetFromAddress().String(), maxIn, args[1], amountOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
