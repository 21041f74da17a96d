// Command validate checks a scored-airport CSV before a generation run: the
// required columns are present, coordinate coverage is sane, scores fall in
// the expected range, and the state summary will have circles to draw.
//
// Usage:
//
//	go run ./cmd/validate -input results/jet_fuel_opportunities.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jetscout/opportunity-maps/internal/domain"
	"github.com/jetscout/opportunity-maps/internal/geo"
	"github.com/jetscout/opportunity-maps/internal/source"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	input := flag.String("input", "results/jet_fuel_opportunities.csv", "path to the scored airport CSV")
	flag.Parse()

	os.Exit(run(*input))
}

func run(input string) int {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	records, err := source.NewCSV(input, logger).LoadAirports(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL load: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkCoordinates(records),
		checkScores(records),
		checkStateCoverage(records),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\n%d records, %d phases, %d failed\n", len(records), len(phases), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// checkCoordinates flags datasets where too few records would survive the
// geographic filter to draw a useful heat layer.
func checkCoordinates(records []domain.AirportRecord) *phase {
	p := &phase{name: "coordinate coverage"}
	if len(records) == 0 {
		p.errorf("no records loaded")
		return p
	}

	withGeo := 0
	for _, r := range records {
		if r.HasGeo() {
			withGeo++
		}
	}
	if withGeo == 0 {
		p.errorf("no record has coordinates; every map layer would be empty")
	} else if withGeo*2 < len(records) {
		p.errorf("only %d of %d records have coordinates", withGeo, len(records))
	}
	return p
}

// checkScores verifies scores sit in the model's nominal 0-100 range and that
// the detailed map will have at least one marker.
func checkScores(records []domain.AirportRecord) *phase {
	p := &phase{name: "score range"}

	markers := 0
	for _, r := range records {
		if r.Score < 0 || r.Score > 100 {
			p.errorf("%s: score %.2f outside 0-100", r.Name, r.Score)
		}
		if _, ok := domain.ClassifyMarker(r.Score); ok {
			markers++
		}
	}
	if len(records) > 0 && markers == 0 {
		p.errorf("no record reaches the %.0f marker floor", domain.MarkerScoreFloor)
	}
	return p
}

// checkStateCoverage reports states that the summary map will silently skip,
// so surprising gaps get noticed before publication.
func checkStateCoverage(records []domain.AirportRecord) *phase {
	p := &phase{name: "state center coverage"}

	covered := 0
	for _, agg := range domain.AggregateByState(records) {
		if _, ok := geo.StateCenter(agg.State); ok {
			covered++
		} else {
			// Skipped states are expected for small table coverage; only
			// a completely empty summary map is an error.
			fmt.Printf("  note: state %q (%d records) has no center; it will be skipped\n", agg.State, agg.Count)
		}
	}
	if len(records) > 0 && covered == 0 {
		p.errorf("no state maps to a center; the summary map would be empty")
	}
	return p
}
