package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhrdina/pocketmesh-site/internal/build"
	"github.com/jhrdina/pocketmesh-site/internal/bundle"
	"github.com/jhrdina/pocketmesh-site/internal/config"
	"github.com/jhrdina/pocketmesh-site/pkg/logging"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		outDir string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Long: `build renders index.html and users.html for every configured language,
writes the CNAME file, copies the static directory and emits the example
bundles. Pages whose content did not change since the last build are left
alone unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if outDir != "" {
				a.cfg.Build.OutDir = outDir
			}
			_, err := build.Run(ctx, a.cfg.Site, buildOptions(a.cfg, force, a.log))
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides build.outDir)")
	cmd.Flags().BoolVar(&force, "force", false, "rewrite every page")
	return cmd
}

func buildOptions(cfg config.Config, force bool, log logging.Logger) build.Options {
	return build.Options{
		OutDir:    cfg.Build.OutDir,
		StaticDir: cfg.Build.StaticDir,
		CacheFile: cfg.Build.CacheFile,
		Force:     force,
		Bundles:   cfg.Bundles.Bundle(bundle.ModeFromEnv(os.Getenv)),
		Logger:    log,
	}
}

// rebuildFunc reloads the configuration from disk and builds, so edits to
// siteconfig.yaml show up without restarting the server.
func rebuildFunc(a *app) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg.Build.OutDir = a.cfg.Build.OutDir
		_, err = build.Run(ctx, cfg.Site, buildOptions(cfg, false, a.log))
		return err
	}
}
