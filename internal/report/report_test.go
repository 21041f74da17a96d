package report_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetscout/opportunity-maps/internal/domain"
	"github.com/jetscout/opportunity-maps/internal/observability"
	"github.com/jetscout/opportunity-maps/internal/report"
)

// --- mocks ---

type mockSource struct {
	records []domain.AirportRecord
	err     error
}

func (m *mockSource) LoadAirports(_ context.Context) ([]domain.AirportRecord, error) {
	return m.records, m.err
}

type mockPublisher struct {
	summaries []domain.RenderSummary
	err       error
}

func (m *mockPublisher) PublishSummary(_ context.Context, s domain.RenderSummary) error {
	if m.err != nil {
		return m.err
	}
	m.summaries = append(m.summaries, s)
	return nil
}

// fixtureRecords is the canonical small fixture: three records, two states,
// one without coordinates.
func fixtureRecords() []domain.AirportRecord {
	return []domain.AirportRecord{
		{Name: "DALLAS FORT WORTH INTL", City: "DALLAS-FORT WORTH", State: "Texas",
			Geo: &domain.Geo{Lat: 32.896828, Lon: -97.037997}, Score: 91.3, CertScore: 8, Military: true},
		{Name: "ABILENE RGNL", City: "ABILENE", State: "Texas",
			Geo: &domain.Geo{Lat: 32.41132, Lon: -99.681897}, Score: 72.5, CertScore: 4},
		{Name: "FRESNO YOSEMITE INTL", City: "FRESNO", State: "California", Score: 68.4, CertScore: 5},
	}
}

func newGenerator(t *testing.T, src report.Source, pub report.Publisher) (*report.Generator, string) {
	t.Helper()
	dir := t.TempDir()
	gen := report.NewGenerator(src, report.DefaultViews(), dir, "test-input.csv", pub,
		slog.Default(), observability.NewMetricsForTesting())
	return gen, dir
}

func TestGeneratorRun(t *testing.T) {
	frozen := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(frozen))
	defer domain.SetClock(nil)

	pub := &mockPublisher{}
	gen, dir := newGenerator(t, &mockSource{records: fixtureRecords()}, pub)

	summary, err := gen.Run(context.Background())
	require.NoError(t, err)

	// Output file count is exactly three.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	for _, name := range []string{
		"opportunity_heatmap.html",
		"detailed_opportunities.html",
		"state_opportunities.html",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	// The record without coordinates is absent from the heat document.
	heat, err := os.ReadFile(filepath.Join(dir, "opportunity_heatmap.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(heat), "68.4")

	assert.Equal(t, "test-input.csv", summary.Input)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 1, summary.SkippedNoGeo)
	assert.Equal(t, frozen, summary.GeneratedAt)
	require.Len(t, summary.Maps, 3)
	assert.Equal(t, domain.MapArtifact{Map: "heatmap", File: "opportunity_heatmap.html", Features: 2}, summary.Maps[0])
	assert.Equal(t, domain.MapArtifact{Map: "markers", File: "detailed_opportunities.html", Features: 2}, summary.Maps[1])
	assert.Equal(t, domain.MapArtifact{Map: "state_summary", File: "state_opportunities.html", Features: 2}, summary.Maps[2])

	// Summary reached the publisher.
	require.Len(t, pub.summaries, 1)
	assert.Equal(t, summary.RunID, pub.summaries[0].RunID)
}

func TestGeneratorReadiness(t *testing.T) {
	gen, _ := newGenerator(t, &mockSource{records: fixtureRecords()}, nil)

	require.Error(t, gen.CheckReadiness(context.Background()))

	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	assert.NoError(t, gen.CheckReadiness(context.Background()))
}

func TestGeneratorLoadFailureIsFatal(t *testing.T) {
	gen, dir := newGenerator(t, &mockSource{err: errors.New("file missing")}, nil)

	_, err := gen.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load airports")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no partial output on load failure")
	assert.Error(t, gen.CheckReadiness(context.Background()))
}

func TestGeneratorPublishFailureDoesNotFailRun(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	gen, dir := newGenerator(t, &mockSource{records: fixtureRecords()}, pub)

	_, err := gen.Run(context.Background())
	require.NoError(t, err, "maps were written; the summary is advisory")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 3)
}

func TestGeneratorWithoutPublisher(t *testing.T) {
	gen, _ := newGenerator(t, &mockSource{records: fixtureRecords()}, nil)
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestGeneratorEmptyDataset(t *testing.T) {
	gen, dir := newGenerator(t, &mockSource{}, nil)

	summary, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Records)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 3, "empty dataset still renders three (empty) maps")
}
