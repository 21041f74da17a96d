package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq" // postgres driver

	"github.com/jetscout/opportunity-maps/internal/domain"
)

// airportQuery reads the scoring job's output table. Column order mirrors the
// CSV export so both sources produce identical records.
const airportQuery = `
SELECT arpt_name, city, state_name,
       lat_decimal, long_decimal,
       predicted_score, cert_importance_score, is_military_relevant
FROM airport_opportunities`

// Postgres loads airport records from the scoring job's Postgres table, for
// deployments where scores land in a database instead of a CSV drop.
type Postgres struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenPostgres connects and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{db: db, logger: logger}, nil
}

// LoadAirports reads every scored airport row. NULL coordinates map to a nil
// Geo, matching the CSV source's blank-column behavior.
func (s *Postgres) LoadAirports(ctx context.Context) ([]domain.AirportRecord, error) {
	rows, err := s.db.QueryContext(ctx, airportQuery)
	if err != nil {
		return nil, fmt.Errorf("query airports: %w", err)
	}
	defer rows.Close()

	var records []domain.AirportRecord
	for rows.Next() {
		var (
			name, city, state string
			lat, lon          sql.NullFloat64
			score, certScore  float64
			military          bool
		)
		if err := rows.Scan(&name, &city, &state, &lat, &lon, &score, &certScore, &military); err != nil {
			return nil, fmt.Errorf("scan airport row: %w", err)
		}

		rec := domain.AirportRecord{
			Name:      name,
			City:      city,
			State:     state,
			Score:     score,
			CertScore: certScore,
			Military:  military,
		}
		if lat.Valid && lon.Valid {
			rec.Geo = &domain.Geo{Lat: lat.Float64, Lon: lon.Float64}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate airport rows: %w", err)
	}

	s.logger.Info("loaded scored airports", "source", "postgres", "records", len(records))
	return records, nil
}

// Close releases the database pool.
func (s *Postgres) Close() error {
	return s.db.Close()
}
