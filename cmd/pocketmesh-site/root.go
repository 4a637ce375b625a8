package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhrdina/pocketmesh-site/internal/config"
	"github.com/jhrdina/pocketmesh-site/pkg/logging"
)

var version = "0.1.0"

// app carries what the subcommands share after the root pre-run.
type app struct {
	cfgFile  string
	logLevel string
	jsonLogs bool

	cfg config.Config
	log logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pocketmesh-site",
		Short: "Build and serve the PocketMesh website",
		Long: `pocketmesh-site renders the PocketMesh homepage and users page from
siteconfig.yaml into static HTML, emits the example bundles and serves the
result with live reload during development.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./siteconfig.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "log as JSON")

	root.AddCommand(
		newBuildCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	opts := []logging.LoggerOption{
		logging.WithLevel(logging.ParseLevel(a.logLevel)),
		logging.WithOutput(os.Stderr),
	}
	if a.jsonLogs {
		opts = append(opts, logging.WithJSON())
	}
	a.log = logging.NewSlogLogger(opts...)
	logging.SetDefault(a.log)

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
