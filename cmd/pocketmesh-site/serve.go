package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhrdina/pocketmesh-site/internal/devserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site with live reload",
		Long: `serve builds the site, serves the output directory and rebuilds when
the configuration, the static directory or the example scripts change.
Open pages reload themselves after every rebuild.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = a.cfg.Serve.Addr
			}
			ds := devserver.New(&devserver.Config{
				Addr:     addr,
				OutDir:   a.cfg.Build.OutDir,
				Watch:    a.cfg.Serve.Watch,
				Debounce: a.cfg.Serve.Debounce,
				Rebuild:  rebuildFunc(a),
				Logger:   a.log,
			})
			return ds.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides serve.addr)")
	return cmd
}
