package domain

// MarkerScoreFloor is the minimum opportunity score shown on the detailed map.
const MarkerScoreFloor = 70.0

// MarkerTier carries the fixed color and glyph for one marker class on the
// detailed opportunities map.
type MarkerTier struct {
	Label string
	Color string
	Icon  string
}

var (
	tierCritical = MarkerTier{Label: "critical", Color: "red", Icon: "star"}
	tierHigh     = MarkerTier{Label: "high", Color: "orange", Icon: "plane"}
	tierMedium   = MarkerTier{Label: "medium", Color: "yellow", Icon: "info-sign"}
)

// ClassifyMarker maps a score to its marker tier. Scores below the floor
// report ok=false and are left off the detailed map entirely. Each boundary
// is inclusive of the lower bound of its tier.
func ClassifyMarker(score float64) (MarkerTier, bool) {
	switch {
	case score >= 85:
		return tierCritical, true
	case score >= 75:
		return tierHigh, true
	case score >= MarkerScoreFloor:
		return tierMedium, true
	default:
		return MarkerTier{}, false
	}
}

// StateColor maps a state's mean score to the summary circle fill color.
func StateColor(avgScore float64) string {
	switch {
	case avgScore >= 60:
		return "red"
	case avgScore >= 50:
		return "orange"
	case avgScore >= 40:
		return "yellow"
	default:
		return "green"
	}
}

// CircleRadius sizes a summary circle by record count: count/10 pixels,
// capped at 30. Monotonic non-decreasing in count.
func CircleRadius(count int) float64 {
	r := float64(count) / 10
	if r > 30 {
		return 30
	}
	return r
}
