// Command pipsctl is the operator CLI for the site store: password hashing,
// statistics, backups, exports and raw document repair.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/internal/app"
	"github.com/noah-isme/pips-site-api/pkg/config"
	"github.com/noah-isme/pips-site-api/pkg/logger"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pipsctl",
		Short:         "Operate the PIPS site store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log store activity to stderr")

	root.AddCommand(
		hashPasswordCmd(),
		statsCmd(),
		backupCmd(),
		exportCmd(),
		pruneExportsCmd(),
		draftsCmd(),
		storeCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadApp wires the services against the configured store. Notification
// workers are never started from the CLI.
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Notifications.Enabled = false

	log := zap.NewNop()
	if verbose {
		if log, err = logger.New(cfg); err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
	}
	return app.New(ctx, cfg, log)
}
