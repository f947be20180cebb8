package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Marco22874/lares-frontend/pkg/httpserver"
)

var errUnhealthy = errors.New("one or more checks failed")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Probe the CMS and Redis and report their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, _, err := bootstrap(ctx, nil)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			return runChecks(ctx, cmd.OutOrStdout(), a.checks())
		},
	}
}

// runChecks runs every check with healthTimeout and prints one line each.
func runChecks(ctx context.Context, out io.Writer, checks map[string]httpserver.Check) error {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var failed bool
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, healthTimeout)
		err := checks[name](cctx)
		cancel()
		if err != nil {
			failed = true
			fmt.Fprintf(out, "%-10s FAIL %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%-10s ok\n", name)
	}
	if failed {
		return errUnhealthy
	}
	return nil
}
