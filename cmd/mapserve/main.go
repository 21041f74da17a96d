// Command mapserve runs one generation pass and then serves the generated
// documents over HTTP, with health, readiness, and metrics endpoints, until
// interrupted.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/jetscout/opportunity-maps/internal/adapter/http"
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

	views := report.DefaultViews()
	gen := report.NewGenerator(src, views, cfg.OutputDir, cfg.InputPath, publisher, logger, metrics)

	if _, err := gen.Run(ctx); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	mapFiles := make([]string, 0, len(views))
	for _, v := range views {
		mapFiles = append(mapFiles, v.FileName())
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.OutputDir, mapFiles, gen, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
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
