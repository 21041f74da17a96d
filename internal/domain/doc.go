// Package domain models pre-scored US airport opportunity data.
//
// # Data Source
//
// Records originate from the FAA NASR facility dump joined with the upstream
// scoring model's output. The scoring job writes one CSV row per airport with
// the facility identification columns (ARPT_NAME, CITY, STATE_NAME), the
// WGS-84 coordinates (LAT_DECIMAL, LONG_DECIMAL), and three model outputs:
//
//	predicted_score        continuous opportunity score, nominally 0–100
//	cert_importance_score  weight derived from the FAA certification class
//	is_military_relevant   true when the facility serves military traffic
//
// Coordinates are optional: heliports and some private strips ship without
// them. Such records load with a nil Geo and are excluded from every rendered
// layer, but still count toward state-level aggregates.
//
// # Marker Tiers
//
// The detailed map only shows airports scoring at or above 70, classified into
// three tiers with fixed colors and glyphs. Boundaries are inclusive of the
// lower bound of their tier:
//
//	score >= 85  critical  red     star
//	score >= 75  high      orange  plane
//	score >= 70  medium    yellow  info-sign
//
// # State Summaries
//
// Aggregates group by the literal STATE_NAME string and carry the mean and max
// score (rounded to two decimals) plus the record count. Circle fill color on
// the summary map follows the mean score: >=60 red, >=50 orange, >=40 yellow,
// otherwise green. Circle radius is count/10 capped at 30 pixels.
//
// # Run IDs
//
// Render runs get a deterministic ID hashed from the input label, record count
// and generation time, so a replayed run over the same input at the same frozen
// clock yields the same ID. See [RunID].
package domain
