package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"iplstats/internal/analytics"
	"iplstats/internal/config"
	"iplstats/internal/dataset"
	"iplstats/internal/exporter"
	"iplstats/internal/infrastructure"
	"iplstats/internal/report"
	"iplstats/pkg/contracts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// run produces the report on stdout. Logs, spans and failures go to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config file (defaults to iplstats.yaml or configs/iplstats.yaml when present)")
	matchesFile := flags.String("matches", "", "matches CSV file (overrides data.matches_file)")
	deliveriesFile := flags.String("deliveries", "", "deliveries CSV file (overrides data.deliveries_file)")
	exportDir := flags.String("export", "", "directory to export the report tables to (overrides export.dir)")
	showVersion := flags.Bool("version", false, "print version information and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return nil
	}

	bootLogger := slog.New(slog.NewJSONHandler(stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLogger.Error("Failed to load config", slog.String("error", err.Error()))
		return err
	}

	if *matchesFile != "" {
		cfg.Data.MatchesFile = *matchesFile
	}
	if *deliveriesFile != "" {
		cfg.Data.DeliveriesFile = *deliveriesFile
	}
	if *exportDir != "" {
		cfg.Export.Dir = *exportDir
	}
	if err := cfg.Validate(); err != nil {
		bootLogger.Error("Invalid configuration", slog.String("error", err.Error()))
		return err
	}

	logger, closer, err := infrastructure.NewLogger(cfg.Logging, stderr)
	if err != nil {
		bootLogger.Error("Failed to initialize logger", slog.String("error", err.Error()))
		return err
	}
	defer closer.Close()

	ctx = infrastructure.EnsureRunID(ctx)

	providers, err := infrastructure.InitializeOTel(cfg.Telemetry, stderr, logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize telemetry", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Telemetry shutdown failed", slog.String("error", err.Error()))
		}
	}()

	err = generate(ctx, cfg, providers, logger, stdout)

	if cfg.Telemetry.MetricsFile != "" {
		if werr := providers.WriteMetrics(cfg.Telemetry.MetricsFile); werr != nil {
			logger.WarnContext(ctx, "Failed to write metrics file",
				slog.String("path", cfg.Telemetry.MetricsFile),
				slog.String("error", werr.Error()))
		}
	}

	if err != nil {
		logger.ErrorContext(ctx, "Report generation failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// generate loads the datasets, aggregates them and writes the report. Nothing
// is printed unless every aggregation succeeds.
func generate(ctx context.Context, cfg *config.Config, providers *infrastructure.OTelProviders, logger *slog.Logger, stdout io.Writer) error {
	start := time.Now()
	logger.InfoContext(ctx, "Starting iplstats",
		slog.String("version", contracts.Version),
		slog.String("matches_file", cfg.Data.MatchesFile),
		slog.String("deliveries_file", cfg.Data.DeliveriesFile))

	loader := dataset.NewLoader(logger, providers.Tracer, providers.Metrics)
	ds, err := loader.Load(ctx, cfg.Data.MatchesFile, cfg.Data.DeliveriesFile)
	if err != nil {
		return err
	}

	seasons := analytics.Seasons{
		Extras:             cfg.Report.ExtrasSeason,
		Economy:            cfg.Report.EconomySeason,
		Dismissals:         cfg.Report.DismissalSeason,
		DismissalThreshold: cfg.Report.DismissalThreshold,
	}

	engine := analytics.NewEngine(logger, providers.Tracer, providers.Metrics)
	summary, err := engine.Run(ctx, ds, seasons)
	if err != nil {
		return err
	}

	sections := report.Build(summary, seasons)
	if err := report.NewConsole(stdout, providers.Metrics).Write(ctx, sections); err != nil {
		return err
	}

	if cfg.ExportEnabled() {
		if _, err := exporter.New(cfg.Export, logger).Export(ctx, sections); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "Report complete", slog.Duration("duration", time.Since(start)))
	return nil
}
