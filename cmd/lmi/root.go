package main

import (
	"fmt"

	"github.com/HendryAvila/lifemorale/internal/config"
	"github.com/HendryAvila/lifemorale/internal/lmi"
	"github.com/HendryAvila/lifemorale/internal/logging"
	"github.com/HendryAvila/lifemorale/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds the state shared by every subcommand.
type cli struct {
	configPath string
	verbose    bool
}

// deps is what a subcommand needs to score requests.
type deps struct {
	settings *config.Settings
	logger   *zap.Logger
	registry *prometheus.Registry
	service  *lmi.Service
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "lmi",
		Short:         "Life Morale Index scoring service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: lmi.yaml in . or $HOME/.config/lmi)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newServeCommand(c),
		newHTTPCommand(c),
		newScoreCommand(c),
		newVersionCommand(),
	)
	return root
}

// setup loads settings and builds the logger, metrics registry and
// scoring service. The caller must Sync the logger.
func (c *cli) setup() (*deps, error) {
	settings, err := config.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(settings.Log, c.verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	cfg := settings.Scoring.PipelineConfig()
	registry := prometheus.NewRegistry()
	service := lmi.NewService(lmi.Options{
		Config:  &cfg,
		Strict:  settings.Scoring.Strict,
		Logger:  logger,
		Metrics: metrics.MustNew(registry),
	})

	return &deps{
		settings: settings,
		logger:   logger,
		registry: registry,
		service:  service,
	}, nil
}

func (r *deps) close() {
	_ = r.logger.Sync()
}
