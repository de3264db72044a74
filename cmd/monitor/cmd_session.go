package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/session"
)

var cmdSession = &cobra.Command{
	Use:   "session",
	Short: "Inspect or write the session cache.",
	Long:  "Inspect or write the session cache. Use SESSION_ID and DATABASE_URL to share a session between runs.",
}

var cmdSessionShow = &cobra.Command{
	Use:   "show <resolution-id>",
	Short: "Print the connected address and the pending vote of a resolution.",
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

		out := c.OutOrStdout()
		if addr, ok := a.session.ConnectedAddress(ctx); ok {
			fmt.Fprintf(out, "%s: %s\n", session.KeyConnectedAddress, addr.Hex())
		} else {
			fmt.Fprintf(out, "%s: -\n", session.KeyConnectedAddress)
		}
		if vt, ok := a.session.PendingVote(ctx, id); ok {
			fmt.Fprintf(out, "%s: %s\n", session.VoteKey(id), vt)
		} else {
			fmt.Fprintf(out, "%s: -\n", session.VoteKey(id))
		}
		return nil
	},
}

var cmdSessionVote = &cobra.Command{
	Use:   "vote <resolution-id> <pour|contre|neutre>",
	Short: "Record a submitted vote so it shows before the ledger confirms it.",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		id, err := parseResolutionID(args[0])
		if err != nil {
			return err
		}
		vt, err := ledger.ParseVoteType(args[1])
		if err != nil {
			return err
		}
		ctx := c.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.close()
		if a.db == nil {
			a.log.Warnf("DATABASE_URL not set: the vote is only kept for this run")
		}

		a.connect(ctx)
		if err := a.session.RecordVote(ctx, id, vt); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "recorded %s on resolution %d for session %s\n", vt, id, a.cfg.SessionID)
		return nil
	},
}

func init() {
	cmdSession.AddCommand(cmdSessionShow, cmdSessionVote)
}
