package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// MapArtifact records one generated map file.
type MapArtifact struct {
	Map      string `json:"map"`
	File     string `json:"file"`
	Features int    `json:"features"`
}

// RenderSummary describes a completed generation run. It is logged, and
// optionally published to the summary topic for downstream consumers.
type RenderSummary struct {
	RunID        string        `json:"run_id"`
	Input        string        `json:"input"`
	Records      int           `json:"records"`
	SkippedNoGeo int           `json:"skipped_no_geo"`
	Maps         []MapArtifact `json:"maps"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// NewRenderSummary stamps a summary with the package clock and a run ID.
func NewRenderSummary(input string, records, skippedNoGeo int, maps []MapArtifact) RenderSummary {
	now := clock.Now().UTC()
	return RenderSummary{
		RunID:        RunID(input, records, now),
		Input:        input,
		Records:      records,
		SkippedNoGeo: skippedNoGeo,
		Maps:         maps,
		GeneratedAt:  now,
	}
}

// RunID produces a deterministic ID from the run's key fields. Rendering the
// same input at the same (frozen) clock yields the same ID, which keeps
// downstream consumers of the summary topic idempotent across replays.
func RunID(input string, records int, at time.Time) string {
	in := fmt.Sprintf("%s|%d|%s", input, records, at.Format(time.RFC3339))
	hash := sha256.Sum256([]byte(in))
	return "run-" + hex.EncodeToString(hash[:8])
}
