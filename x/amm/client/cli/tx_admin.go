package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pondswap/pond/x/amm/types"
)

// adminTxCommands bundles the owner and launchpad operations: the contract
// switch, fee schedule, base asset registry and pair lifecycle.
func adminTxCommands() []*cobra.Command {
	return []*cobra.Command{
		cmdSignerOnly("activate", "Activate the contract", func(signer string) sdk.Msg {
			return types.NewMsgActivate(signer)
		}),
		cmdSignerOnly("deactivate", "Deactivate the contract", func(signer string) sdk.Msg {
			return types.NewMsgDeactivate(signer)
		}),
		cmdSignerOnly("withdraw-fees", "Withdraw all accrued owner fees", func(signer string) sdk.Msg {
			return types.NewMsgWithdrawFees(signer)
		}),
		cmdWithString("set-launchpad-address", "address", "Set the launchpad service address",
			func(signer, address string) sdk.Msg {
				return types.NewMsgSetLaunchpadAddress(signer, address)
			}),
		cmdWithString("add-base-token", "denom", "Register a base asset denom",
			func(signer, denom string) sdk.Msg {
				return types.NewMsgAddBaseToken(signer, denom)
			}),
		cmdWithString("remove-base-token", "denom", "Remove a base asset denom",
			func(signer, denom string) sdk.Msg {
				return types.NewMsgRemoveBaseToken(signer, denom)
			}),
		cmdWithUint64("set-lp-fee", "rate", "Set the LP fee rate in hundredths of a percent",
			func(signer string, rate uint64) sdk.Msg {
				return types.NewMsgSetLpFee(signer, rate)
			}),
		cmdWithUint64("set-owner-fee", "rate", "Set the owner fee rate in hundredths of a percent",
			func(signer string, rate uint64) sdk.Msg {
				return types.NewMsgSetOwnerFee(signer, rate)
			}),
		cmdWithUint64("set-pair-active", "pair-id", "Open a pair for trading",
			func(signer string, pairId uint64) sdk.Msg {
				return types.NewMsgSetPairActive(signer, pairId)
			}),
		cmdWithUint64("set-pair-active-no-swap", "pair-id", "Restrict a pair to deposits only",
			func(signer string, pairId uint64) sdk.Msg {
				return types.NewMsgSetPairActiveNoSwap(signer, pairId)
			}),
		cmdWithUint64("set-pair-inactive", "pair-id", "Shut a pair down",
			func(signer string, pairId uint64) sdk.Msg {
				return types.NewMsgSetPairInactive(signer, pairId)
			}),
	}
}

func cmdSignerOnly(use, short string, build func(signer string) sdk.Msg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			return validateAndBroadcast(clientCtx, cmd, build(clientCtx.GetFromAddress().String()))
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func cmdWithString(use, argName, short string, build func(signer, arg string) sdk.Msg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [%s]", use, argName),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			return validateAndBroadcast(clientCtx, cmd, build(clientCtx.GetFromAddress().String(), args[0]))
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func cmdWithUint64(use, argName, short string, build func(signer string, arg uint64) sdk.Msg) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [%s]", use, argName),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			value, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", argName, err)
			}
			return validateAndBroadcast(clientCtx, cmd, build(clientCtx.GetFromAddress().String(), value))
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func validateAndBroadcast(clientCtx client.Context, cmd *cobra.Command, msg sdk.Msg) error {
	if v, ok := msg.(interface{ ValidateBasic() error }); ok {
		if err := v.ValidateBasic(); err != nil {
			return err
		}
	}
	return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
}
