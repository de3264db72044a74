// Package main provides the entry point for the resolution vote monitor.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resolution-monitoring/internal/metrics"
	"resolution-monitoring/internal/monitor"
	"resolution-monitoring/internal/tui"
)

var (
	overrideNetwork string
	pinned          []uint
)

var rootCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Resolution vote monitor",
	Long:  "Shows who voted for, against or neutral on each resolution, and the roles of the connected account.",
	PersistentPreRun: func(*cobra.Command, []string) {
		// Try to load .env from CWD if present; otherwise use environment as-is
		if _, statErr := os.Stat(".env"); statErr == nil {
			_ = godotenv.Load(".env")
		}
	},
	SilenceUsage: true,
	RunE: func(c *cobra.Command, _ []string) error {
		return runDashboard(c.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&overrideNetwork, "network", "n", "", "network key, overrides NETWORK")
	rootCmd.Flags().UintSliceVarP(&pinned, "resolution", "r", nil, "only show these resolutions")

	rootCmd.AddCommand(cmdVotes, cmdRoles, cmdNetwork, cmdSession)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runDashboard(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logs go to a file so they do not interfere with the TUI
	var logWriter io.Writer = io.Discard
	if debugEnabled() {
		logFile, err := os.OpenFile("monitor.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer logFile.Close()
			logWriter = logFile
			fmt.Fprintf(os.Stderr, "Debug logs written to monitor.log\n")
		} else {
			fmt.Fprintf(os.Stderr, "Warning: failed to open log file, logs will go to stderr (may interfere with TUI): %v\n", err)
			logWriter = os.Stderr
		}
	}

	fmt.Printf("Resolution monitor starting...\n")
	a, err := bootstrap(ctx, logWriter)
	if err != nil {
		return err
	}
	defer a.close()
	fmt.Printf("Config loaded: %s\n", a.cfg.DebugString())
	fmt.Printf("Loading...\n")

	a.connect(ctx)
	if err := a.loadContract(); err != nil {
		return err
	}

	if a.cfg.MetricsAddr != "" {
		metrics.Serve(ctx, a.cfg.MetricsAddr, a.log.Named("metrics"))
		a.log.Printf("metrics served on %s/metrics", a.cfg.MetricsAddr)
	}

	opts := []monitor.Option{
		monitor.WithDB(a.db),
		monitor.WithInterval(a.cfg.RefreshInterval),
		monitor.WithDemoData(a.cfg.DemoData),
		monitor.WithLogger(a.log.Named("monitor")),
	}
	if len(pinned) > 0 {
		ids := make([]uint64, 0, len(pinned))
		for _, id := range pinned {
			ids = append(ids, uint64(id))
		}
		opts = append(opts, monitor.WithResolutions(ids...))
	}
	mon := monitor.New(monitor.Params{
		Network:    a.cfg.Network,
		Contract:   a.descriptor.Address,
		Reader:     a.contract,
		Reconciler: a.reconciler(),
		Roles:      a.roleResolver(),
		Wallet:     a.provider,
		Session:    a.session,
	}, opts...)

	updates := make(chan monitor.Snapshot, monitor.SnapshotBufferSize)
	tuiDone := make(chan struct{})
	go func() {
		defer close(tuiDone)
		if err := tui.Run(updates); err != nil {
			a.log.Errorf("TUI error: %v", err)
		}
		// TUI exited, cancel context to trigger shutdown
		cancel()
	}()

	if err := mon.Run(ctx, updates); err != nil {
		a.log.Errorf("monitor stopped: %v", err)
	}
	a.log.Printf("shutting down...")

	// Closing the channel quits the TUI if it is still running
	close(updates)
	select {
	case <-tuiDone:
	case <-time.After(monitor.CloseDelay):
	}
	return nil
}

// debugEnabled peeks at DEBUG before the configuration is loaded.
func debugEnabled() bool {
	switch os.Getenv("DEBUG") {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
