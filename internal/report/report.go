// Package report turns scored airport records into the three standalone
// Leaflet HTML maps: the opportunity heat map, the detailed marker map, and
// the state-level summary.
package report

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/jetscout/opportunity-maps/internal/domain"
	"github.com/jetscout/opportunity-maps/internal/observability"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Base map framing shared by all three documents: the continental US.
const (
	mapCenterLat = 39.8283
	mapCenterLon = -98.5795
	mapZoom      = 4
)

// Source loads the scored airport dataset.
type Source interface {
	LoadAirports(ctx context.Context) ([]domain.AirportRecord, error)
}

// View renders one map document from the loaded records.
type View interface {
	Name() string
	FileName() string
	Render(records []domain.AirportRecord) (content []byte, features int, err error)
}

// Publisher delivers the per-run summary to downstream consumers.
type Publisher interface {
	PublishSummary(ctx context.Context, summary domain.RenderSummary) error
}

// Generator runs the load-render-write sequence for a set of views.
type Generator struct {
	source    Source
	views     []View
	outputDir string
	inputName string
	publisher Publisher // optional
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// NewGenerator wires a generator. publisher may be nil when summary
// publishing is disabled.
func NewGenerator(source Source, views []View, outputDir, inputName string, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{
		source:    source,
		views:     views,
		outputDir: outputDir,
		inputName: inputName,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// DefaultViews returns the three production maps in render order.
func DefaultViews() []View {
	return []View{
		&HeatmapView{},
		&MarkersView{},
		&StateSummaryView{},
	}
}

// CheckReadiness returns nil once a generation run has completed.
func (g *Generator) CheckReadiness(_ context.Context) error {
	if !g.ready.Load() {
		return errors.New("no generation run has completed yet")
	}
	return nil
}

// Run executes one full generation pass: load the dataset, render every view,
// write the documents to the output directory, and publish the run summary if
// a publisher is configured. A load or render failure aborts the run; a
// publish failure is logged and otherwise ignored since the maps themselves
// were already written.
func (g *Generator) Run(ctx context.Context) (domain.RenderSummary, error) {
	records, err := g.source.LoadAirports(ctx)
	if err != nil {
		g.metrics.RunErrors.Inc()
		return domain.RenderSummary{}, fmt.Errorf("load airports: %w", err)
	}

	skipped := 0
	for _, r := range records {
		if !r.HasGeo() {
			skipped++
		}
	}
	g.metrics.RecordsLoaded.Add(float64(len(records)))
	g.metrics.RecordsSkipped.Add(float64(skipped))
	g.logger.Info("dataset loaded", "records", len(records), "without_coordinates", skipped)

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		g.metrics.RunErrors.Inc()
		return domain.RenderSummary{}, fmt.Errorf("create output dir: %w", err)
	}

	artifacts := make([]domain.MapArtifact, 0, len(g.views))
	for _, view := range g.views {
		start := time.Now()

		content, features, err := view.Render(records)
		if err != nil {
			g.metrics.RunErrors.Inc()
			return domain.RenderSummary{}, fmt.Errorf("render %s: %w", view.Name(), err)
		}

		path := filepath.Join(g.outputDir, view.FileName())
		if err := os.WriteFile(path, content, 0o644); err != nil {
			g.metrics.RunErrors.Inc()
			return domain.RenderSummary{}, fmt.Errorf("write %s: %w", view.FileName(), err)
		}

		g.metrics.MapsRendered.WithLabelValues(view.Name()).Inc()
		g.metrics.RenderDuration.WithLabelValues(view.Name()).Observe(time.Since(start).Seconds())
		g.logger.Info("map written", "map", view.Name(), "file", view.FileName(), "features", features)

		artifacts = append(artifacts, domain.MapArtifact{
			Map:      view.Name(),
			File:     view.FileName(),
			Features: features,
		})
	}

	summary := domain.NewRenderSummary(g.inputName, len(records), skipped, artifacts)

	g.metrics.RunsTotal.Inc()
	g.metrics.LastRunTimestamp.Set(float64(summary.GeneratedAt.Unix()))
	g.metrics.GeneratorReady.Set(1)
	g.ready.Store(true)

	if g.publisher != nil {
		if err := g.publisher.PublishSummary(ctx, summary); err != nil {
			g.logger.Warn("summary publish failed", "error", err, "run_id", summary.RunID)
		}
	}

	g.logger.Info("all maps generated", "run_id", summary.RunID, "maps", len(artifacts))
	return summary, nil
}
