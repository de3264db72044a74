package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/reconcile"
)

var cmdVotes = &cobra.Command{
	Use:   "votes <resolution-id>",
	Short: "Print the voters of a resolution.",
	Long:  "Print the voters of a resolution per option, including votes of this session the ledger has not shown yet.",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := parseResolutionID(args[0])
		if err != nil {
			return err
		}

		ctx := c.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.loadContract(); err != nil {
			return err
		}

		rec := a.reconciler()
		events, synthetic := rec.Fetch(ctx, id)
		grouping := rec.GroupByVoteType(ctx, events, id)

		out := c.OutOrStdout()
		fmt.Fprintf(out, "# Resolution %d\n", id)
		if synthetic {
			fmt.Fprintf(out, "(demonstration data)\n")
		} else if tally, err := a.contract.Results(ctx, id); err == nil {
			fmt.Fprintf(out, "tally: pour=%d contre=%d neutre=%d\n", tally.Pour, tally.Contre, tally.Neutre)
		} else {
			a.log.Warnf("results unavailable: %v", err)
		}
		printGrouping(c, grouping)
		return nil
	},
}

func printGrouping(c *cobra.Command, g reconcile.Grouping) {
	out := c.OutOrStdout()
	for _, vt := range ledger.VoteTypes {
		fmt.Fprintf(out, "\n%s (%d)\n", vt, len(g[vt]))
		for _, e := range g[vt] {
			status := "ledger"
			if e.Pending {
				status = "pending"
			}
			fmt.Fprintf(out, "  %s  %-7s  %s\n", e.Address.Hex(), status, e.TransactionHash)
		}
	}
}

func parseResolutionID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid resolution id %q: want a positive integer", s)
	}
	return id, nil
}
