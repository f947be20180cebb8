package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Marco22874/lares-frontend/pkg/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lares",
		Short:         "Lares Cohousing multilingual site",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newSyncAssetsCmd(), newCheckCmd())
	return root
}

// bootstrap loads configuration and wires the dependencies of a command.
// Logs go to stderr so command output stays on stdout.
func bootstrap(ctx context.Context, out io.Writer) (*app, *slog.Logger, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	if out == nil {
		out = os.Stderr
	}
	log := newLogger(cfg, out)
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "startup failed", logger.Error(err))
		return nil, nil, err
	}
	return a, log, nil
}
