package domain

import (
	"math"
	"sort"
)

// StateAggregate summarizes every record sharing one STATE_NAME value.
// Recomputed fully on each run; never persisted.
type StateAggregate struct {
	State    string  `json:"state"`
	AvgScore float64 `json:"avg_score"`
	MaxScore float64 `json:"max_score"`
	Count    int     `json:"count"`
}

// AggregateByState groups records by state name and computes mean, max and
// count of the opportunity score, rounded to two decimals. All records count,
// including those without coordinates. Results are sorted by state name so a
// given input always renders the same document.
func AggregateByState(records []AirportRecord) []StateAggregate {
	type acc struct {
		sum   float64
		max   float64
		count int
	}
	byState := make(map[string]*acc)

	for _, r := range records {
		a, ok := byState[r.State]
		if !ok {
			a = &acc{max: math.Inf(-1)}
			byState[r.State] = a
		}
		a.sum += r.Score
		if r.Score > a.max {
			a.max = r.Score
		}
		a.count++
	}

	out := make([]StateAggregate, 0, len(byState))
	for state, a := range byState {
		out = append(out, StateAggregate{
			State:    state,
			AvgScore: round2(a.sum / float64(a.count)),
			MaxScore: round2(a.max),
			Count:    a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
