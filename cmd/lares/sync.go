package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Marco22874/lares-frontend/modules/assets"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/logger"
)

func newSyncAssetsCmd() *cobra.Command {
	var (
		concurrency int
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "sync-assets",
		Short: "Copy gallery images from the CMS into asset storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, log, err := bootstrap(ctx, nil)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			storage, err := a.storage(ctx)
			if err != nil {
				return err
			}
			mirror := assets.NewMirror(a.cms, storage,
				assets.WithConcurrency(concurrency),
				assets.WithForce(force),
				assets.WithLogger(log),
			)

			report, err := mirror.Sync(ctx, string(i18n.Default))
			fmt.Fprintf(cmd.OutOrStdout(), "downloaded %d, skipped %d, failed %d\n",
				report.Downloaded, report.Skipped, report.Failed)
			if err != nil {
				log.ErrorContext(ctx, "asset sync incomplete", logger.Component("assets"), logger.Error(err))
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", assets.DefaultConcurrency, "parallel downloads")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "re-download files already mirrored")
	return cmd
}
