// Package cmd implements the furniture command line.
package cmd

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-leo/typefactory/config"
	"github.com/go-leo/typefactory/factory"
	"github.com/go-leo/typefactory/furniture"
	"github.com/go-leo/typefactory/logger"
	"github.com/go-leo/typefactory/metrics"
)

type globalFlags struct {
	cfgPath  string
	logLevel string
	metrics  bool
	json     bool
}

// NewRootCommand returns the furniture command with all its subcommands.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "furniture",
		Short:         "Build furniture from the most specific factory registered for an anchor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level, overrides the configuration")
	rootCmd.PersistentFlags().BoolVar(&flags.metrics, "metrics", false, "print the creation counters")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "print JSON")

	rootCmd.AddCommand(newCreateCommand(flags), newResolveCommand(flags), newCatalogCommand(flags))
	return rootCmd
}

// Execute runs the CLI.
func Execute(ctx context.Context) error { return NewRootCommand().ExecuteContext(ctx) }

// env is what every subcommand works with.
type env struct {
	log       logger.Logger
	universe  *factory.Universe
	collector *metrics.Collector
	json      bool
	out       io.Writer
}

func setup(cmd *cobra.Command, flags *globalFlags) (*env, error) {
	cfg, err := config.Load(flags.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics.Enabled = flags.metrics
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &env{
		log:  logger.NewWriter(cmd.ErrOrStderr(), "furniture", cfg.Logging.Level),
		json: flags.json,
		out:  cmd.OutOrStdout(),
	}
	middlewares := []factory.Middleware{factory.LoggingMiddleware(e.log)}
	if cfg.Metrics.Enabled {
		if e.collector, err = metrics.NewCollector(prometheus.NewRegistry()); err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		middlewares = append(middlewares, e.collector.Middleware())
	}
	e.universe, err = furniture.NewUniverse(cfg.Universe.Sequences,
		factory.Logger(e.log),
		factory.Middlewares(middlewares...),
	)
	if err != nil {
		return nil, fmt.Errorf("build universe: %w", err)
	}
	return e, nil
}

func (e *env) printJSON(v any) error {
	data, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, string(data))
	return err
}

func (e *env) printMetrics() error {
	if e.collector == nil {
		return nil
	}
	for _, s := range e.collector.Snapshot() {
		if _, err := fmt.Fprintf(e.out, "%s -> %s: %g\n", s.Product, s.Concrete, s.Count); err != nil {
			return err
		}
	}
	return nil
}

// snapshot returns the counters for JSON output, nil when metrics are off.
func (e *env) snapshot() []metrics.Sample {
	if e.collector == nil {
		return nil
	}
	return e.collector.Snapshot()
}
