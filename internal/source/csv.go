// Package source provides the input adapters that load scored airport
// records, from the scoring job's CSV export or from a Postgres table.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/jetscout/opportunity-maps/internal/domain"
)

// Column names required in the scoring job's CSV export.
var requiredColumns = []string{
	"ARPT_NAME",
	"CITY",
	"STATE_NAME",
	"LAT_DECIMAL",
	"LONG_DECIMAL",
	"predicted_score",
	"cert_importance_score",
	"is_military_relevant",
}

// CSV loads airport records from a delimited file with a header row.
type CSV struct {
	path   string
	logger *slog.Logger
}

// NewCSV creates a CSV source for the given file path.
func NewCSV(path string, logger *slog.Logger) *CSV {
	return &CSV{path: path, logger: logger}
}

// LoadAirports reads the whole file. A missing file or missing required
// column is a fatal error for the run; rows with unparsable coordinates load
// with a nil Geo and are skipped by the renderers later.
func (s *CSV) LoadAirports(_ context.Context) ([]domain.AirportRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; short rows are dropped below
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input %s has no header row", s.path)
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		colIdx[h] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("input %s missing required column %q", s.path, col)
		}
	}

	records := make([]domain.AirportRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(rows[0]) {
			s.logger.Warn("dropping short row", "fields", len(row), "want", len(rows[0]))
			continue
		}
		records = append(records, domain.NewAirportRecord(
			row[colIdx["ARPT_NAME"]],
			row[colIdx["CITY"]],
			row[colIdx["STATE_NAME"]],
			row[colIdx["LAT_DECIMAL"]],
			row[colIdx["LONG_DECIMAL"]],
			row[colIdx["predicted_score"]],
			row[colIdx["cert_importance_score"]],
			row[colIdx["is_military_relevant"]],
		))
	}

	s.logger.Info("loaded scored airports", "path", s.path, "records", len(records))
	return records, nil
}
