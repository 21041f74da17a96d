// Command mapgen runs one generation pass: it loads the scored airport
// dataset and writes the three map documents to the output directory.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jetscout/opportunity-maps/internal/adapter/kafka"
	"github.com/jetscout/opportunity-maps/internal/config"
	"github.com/jetscout/opportunity-maps/internal/observability"
	"github.com/jetscout/opportunity-maps/internal/report"
	"github.com/jetscout/opportunity-maps/internal/source"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, closeSource, err := buildSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	var publisher report.Publisher
	if cfg.KafkaEnabled {
		writer := kafka.NewWriter(cfg, logger)
		defer writer.Close()
		publisher = writer
		logger.Info("summary publishing enabled", "topic", cfg.KafkaSummaryTopic)
	}

	gen := report.NewGenerator(src, report.DefaultViews(), cfg.OutputDir, cfg.InputPath,
		publisher, logger, metrics)

	summary, err := gen.Run(ctx)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("done",
		"run_id", summary.RunID,
		"records", summary.Records,
		"skipped_no_geo", summary.SkippedNoGeo,
		"output_dir", cfg.OutputDir,
	)
}

// buildSource picks the configured input adapter. The returned func releases
// any held connections.
func buildSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (report.Source, func(), error) {
	if cfg.Source == config.SourcePostgres {
		pg, err := source.OpenPostgres(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() {
			if err := pg.Close(); err != nil {
				logger.Error("postgres close error", "error", err)
			}
		}, nil
	}
	return source.NewCSV(cfg.InputPath, logger), func() {}, nil
}
