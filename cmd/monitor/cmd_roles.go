package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resolution-monitoring/internal/ledger"
)

var cmdRoles = &cobra.Command{
	Use:   "roles [address]",
	Short: "Print the roles of an account.",
	Long:  "Print the whitelist status and roles of an account, the connected one by default.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		ctx := c.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.loadContract(); err != nil {
			return err
		}

		var (
			addr common.Address
			ok   bool
		)
		if len(args) == 1 {
			if addr, ok = ledger.ParseAddress(args[0]); !ok {
				return errors.Errorf("invalid address %q", args[0])
			}
		} else if addr, ok = a.account(ctx); !ok {
			return errors.New("no connected account: pass an address or set WALLET_ADDRESS")
		}

		set := a.roleResolver().Resolve(ctx, addr)
		out := c.OutOrStdout()
		fmt.Fprintf(out, "account:        %s\n", addr.Hex())
		fmt.Fprintf(out, "whitelisted:    %t\n", set.IsWhitelisted)
		names := "none"
		if held := set.Names(); len(held) > 0 {
			names = strings.Join(held, ", ")
		}
		fmt.Fprintf(out, "roles:          %s\n", names)
		fmt.Fprintf(out, "administration: %t\n", set.CanAdminister())
		return nil
	},
}
