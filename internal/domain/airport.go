package domain

import (
	"strconv"
	"strings"
)

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AirportRecord is one scored airport from the input dataset. Records are
// immutable after load; Geo is nil when the row lacked usable coordinates.
type AirportRecord struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Geo       *Geo    `json:"geo,omitempty"`
	Score     float64 `json:"score"`
	CertScore float64 `json:"cert_score"`
	Military  bool    `json:"military"`
}

// HasGeo reports whether the record carries renderable coordinates.
func (r AirportRecord) HasGeo() bool { return r.Geo != nil }

// NewAirportRecord builds a record from raw CSV field values. Coordinate
// parsing failure yields a nil Geo rather than an error; the record still
// participates in state aggregation.
func NewAirportRecord(name, city, state, lat, lon, score, certScore, military string) AirportRecord {
	rec := AirportRecord{
		Name:      strings.TrimSpace(name),
		City:      strings.TrimSpace(city),
		State:     strings.TrimSpace(state),
		Score:     parseFloatOrZero(score),
		CertScore: parseFloatOrZero(certScore),
		Military:  parseMilitaryFlag(military),
	}

	if latV, ok := parseCoordinate(lat); ok {
		if lonV, ok := parseCoordinate(lon); ok {
			rec.Geo = &Geo{Lat: latV, Lon: lonV}
		}
	}
	return rec
}

// parseCoordinate parses a decimal-degree string. Empty or malformed values
// report ok=false; the scoring job leaves both columns blank for facilities
// without surveyed coordinates.
func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMilitaryFlag accepts the boolean spellings seen in scoring exports:
// pandas writes "True"/"False", SQL dumps write "t"/"f" or "1"/"0".
func parseMilitaryFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y":
		return true
	default:
		return false
	}
}
