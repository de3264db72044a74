package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resolution-monitoring/internal/network"
)

var cmdNetwork = &cobra.Command{
	Use:   "network",
	Short: "Inspect or change the wallet's network.",
}

var cmdNetworkList = &cobra.Command{
	Use:   "list",
	Short: "List the supported networks.",
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		for _, key := range network.Keys() {
			n := network.Networks[key]
			demo := ""
			if n.Demo {
				demo = " (demo)"
			}
			fmt.Fprintf(c.OutOrStdout(), "%-8s %-10s chain %-9d %s%s\n", n.Key, n.Name, n.ChainID, n.ConfigFile, demo)
		}
	},
}

var cmdNetworkCheck = &cobra.Command{
	Use:   "check",
	Short: "Check that the wallet is on the configured network.",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		ctx := c.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.close()

		ok, err := a.selector.Check(ctx, a.cfg.Network.ChainID)
		if err != nil {
			return err
		}
		if !ok {
			current, _ := a.wallet.ChainID(ctx)
			return errors.Errorf("wallet is on chain %d, want %s (%d)", current, a.cfg.Network.Name, a.cfg.Network.ChainID)
		}
		fmt.Fprintf(c.OutOrStdout(), "wallet is on %s (%d)\n", a.cfg.Network.Name, a.cfg.Network.ChainID)
		return nil
	},
}

var cmdNetworkSwitch = &cobra.Command{
	Use:   "switch [network]",
	Short: "Ask the wallet to switch to a network, adding it when unknown.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		ctx := c.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.close()

		target := a.cfg.Network
		if len(args) == 1 {
			if target, err = network.Lookup(args[0]); err != nil {
				return err
			}
		}
		if err := a.selector.Ensure(ctx, target); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "wallet is on %s (%d)\n", target.Name, target.ChainID)
		return nil
	},
}

func init() {
	cmdNetwork.AddCommand(cmdNetworkList, cmdNetworkCheck, cmdNetworkSwitch)
}
