package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lazybeaver/internal/config"
	"github.com/katalvlaran/lazybeaver/internal/logging"
	"github.com/katalvlaran/lazybeaver/internal/telemetry"
	"github.com/katalvlaran/lazybeaver/internal/ui"
	"github.com/katalvlaran/lazybeaver/search"
)

// app carries the resolved configuration shared by every subcommand.
type app struct {
	configPath   string
	logLevel     string
	output       string
	metricsFile  string
	timeout      time.Duration
	noNeverHalts bool
	noColor      bool

	cfg     config.Config
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lazybeaver",
		Short:         "Compute the Lazy Beaver function LB(n) by exhaustive machine enumeration",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", logging.LevelWarn, "Log level: debug, info, warn, error")
	pf.StringVarP(&a.output, "output", "o", config.FormatText, "Output format: text, table, yaml, json")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile on exit")
	pf.DurationVar(&a.timeout, "timeout", 0, "Abort the search after this long (0 = no limit)")
	pf.BoolVar(&a.noNeverHalts, "no-never-halts", false, "Simulate every machine instead of proving some never halt")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newLimitedCmd(a))
	root.AddCommand(newSimulateCmd(a))
	root.AddCommand(newDistributionCmd(a))

	return root
}

// setup loads the config file, lets explicitly set flags override it, and
// installs logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.output
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = a.metricsFile
	}
	if flags.Changed("timeout") {
		cfg.Search.Timeout = a.timeout
	}
	if a.noNeverHalts {
		cfg.Search.NeverHalts = false
	}
	if a.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Configure(cfg.Log.Level); err != nil {
		return err
	}
	if !cfg.Output.Color {
		ui.DisableColor()
	}

	a.cfg = cfg
	a.logger = slog.Default()
	a.metrics = telemetry.New()
	a.logger.Debug("configuration loaded", "file", a.configPath, "format", cfg.Output.Format)

	return nil
}

// withMetrics wraps a RunE so the metrics textfile is written however the
// command ends, including timeouts, interrupts and search errors.
func (a *app) withMetrics(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if werr := a.writeMetrics(); werr != nil && err == nil {
				err = werr
			}
		}()

		return run(cmd, args)
	}
}

func (a *app) writeMetrics() error {
	if a.cfg.Metrics.File == "" || a.metrics == nil {
		return nil
	}
	a.logger.Debug("writing metrics", "file", a.cfg.Metrics.File)

	return a.metrics.WriteTextfile(a.cfg.Metrics.File)
}

// context applies the configured timeout to the command context.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(cmd.Context(), a.cfg.Search.Timeout)
	}

	return context.WithCancel(cmd.Context())
}

// searchOptions translates the configuration into engine options.
func (a *app) searchOptions(ctx context.Context) []search.Option {
	return []search.Option{
		search.WithContext(ctx),
		search.WithNeverHaltsCheck(a.cfg.Search.NeverHalts),
		search.WithLogger(a.logger),
		search.WithProgressEvery(a.cfg.Search.ProgressEvery),
		search.WithRecorder(a.metrics),
	}
}
