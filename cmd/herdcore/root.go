package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"herdcore/internal/config"
	"herdcore/internal/core"
	"herdcore/internal/i18n"
	"herdcore/internal/seed"
	"herdcore/internal/tui"
	"herdcore/pkg/domain"
	"herdcore/pkg/logger"
)

type rootOptions struct {
	configPath string
	dataPath   string
	langTag    string
	logFile    string
	metrics    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "herdcore",
		Short: "Terminal dashboard for managing a livestock farm",
		Long: `herdcore keeps animals, health schedules, breeding, production,
and market prices in one in-memory dashboard seeded from a YAML dataset.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.dataPath, "data", "", "path to a YAML dataset (defaults to the embedded one)")
	cmd.Flags().StringVar(&opts.langTag, "lang", "", "BCP-47 language tag (en, hi, as)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print a metrics dump on exit")

	cmd.AddCommand(newValidateCmd(opts))
	return cmd
}

func runDashboard(opts *rootOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.dataPath == "" {
		opts.dataPath = cfg.Dataset
	}
	if opts.langTag == "" {
		opts.langTag = cfg.Language
	}
	if opts.logFile == "" {
		opts.logFile = cfg.LogFile
	}

	zl, err := logger.New(opts.logFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	state, dataHealth, err := loadDataset(opts.dataPath)
	if err != nil {
		return err
	}
	if opts.langTag != "" {
		state.Language = i18n.Match(opts.langTag)
	}

	audit := core.NewMemoryAuditSink(200)
	serviceOpts := []core.Option{
		core.WithLogger(logger.Named(zl, "core").Sugar()),
		core.WithAuditSink(audit),
	}

	var metrics *core.PrometheusMetricsRecorder
	if opts.metrics {
		metrics, err = core.NewPrometheusMetricsRecorder()
		if err != nil {
			return err
		}
		serviceOpts = append(serviceOpts, core.WithMetricsRecorder(metrics))
	}

	svc := core.NewService(state, serviceOpts...)
	if err := tui.Run(svc, audit, dataHealth, cfg.Theme); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}

	if metrics != nil {
		if err := metrics.WriteText(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func loadDataset(path string) (domain.State, domain.Result, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
