package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"

	"github.com/jetscout/opportunity-maps/internal/domain"
	"github.com/jetscout/opportunity-maps/internal/geo"
)

// StateSummaryView renders one circle per state with a known center: radius
// follows the record count, fill color follows the mean score tier. States
// missing from the center table are skipped.
type StateSummaryView struct{}

func (v *StateSummaryView) Name() string     { return "state_summary" }
func (v *StateSummaryView) FileName() string { return "state_opportunities.html" }

type circleFeature struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill"`
	Popup  string  `json:"popup"`
}

type stateSummaryData struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Circles   template.JS
}

func (v *StateSummaryView) Render(records []domain.AirportRecord) ([]byte, int, error) {
	aggregates := domain.AggregateByState(records)

	circles := make([]circleFeature, 0, len(aggregates))
	for _, agg := range aggregates {
		center, ok := geo.StateCenter(agg.State)
		if !ok {
			continue
		}
		circles = append(circles, circleFeature{
			Lat:    center.Lat,
			Lon:    center.Lon,
			Radius: domain.CircleRadius(agg.Count),
			Fill:   domain.StateColor(agg.AvgScore),
			Popup: fmt.Sprintf(
				"<b>%s</b><br>Avg Score: %.1f<br>Max Score: %.1f<br>Opportunities: %d",
				html.EscapeString(agg.State), agg.AvgScore, agg.MaxScore, agg.Count,
			),
		})
	}

	raw, err := json.Marshal(circles)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal state circles: %w", err)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "statesummary.html.tmpl", stateSummaryData{
		CenterLat: mapCenterLat,
		CenterLon: mapCenterLon,
		Zoom:      mapZoom,
		Circles:   template.JS(raw),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("execute state summary template: %w", err)
	}
	return buf.Bytes(), len(circles), nil
}
