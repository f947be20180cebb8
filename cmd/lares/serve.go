package main

import (
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Marco22874/lares-frontend/pkg/httpserver"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, log, err := bootstrap(ctx, os.Stdout)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					log.Error("close failed", logger.Error(err))
				}
			}()

			h, err := a.handler(ctx)
			if err != nil {
				return err
			}

			cfg := a.cfg.HTTP
			if addr != "" {
				cfg.Addr = addr
			}
			srv := httpserver.NewFromConfig(cfg,
				httpserver.WithLogger(log),
				httpserver.WithSignals(os.Interrupt, syscall.SIGTERM),
			)
			return srv.Run(ctx, h)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
