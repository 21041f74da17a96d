package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"

	"github.com/jetscout/opportunity-maps/internal/domain"
)

// MarkersView renders the detailed opportunities map: clustered markers for
// every record with coordinates scoring at or above the marker floor, styled
// by tier, with a popup and tooltip per airport.
type MarkersView struct{}

func (v *MarkersView) Name() string     { return "markers" }
func (v *MarkersView) FileName() string { return "detailed_opportunities.html" }

type markerFeature struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Icon    string  `json:"icon"`
	Popup   string  `json:"popup"`
	Tooltip string  `json:"tooltip"`
}

type markersData struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Features  template.JS
}

func (v *MarkersView) Render(records []domain.AirportRecord) ([]byte, int, error) {
	features := make([]markerFeature, 0, len(records))
	for _, r := range records {
		tier, ok := domain.ClassifyMarker(r.Score)
		if !ok || !r.HasGeo() {
			continue
		}
		features = append(features, markerFeature{
			Lat:     r.Geo.Lat,
			Lon:     r.Geo.Lon,
			Color:   tier.Color,
			Icon:    tier.Icon,
			Popup:   popupHTML(r),
			Tooltip: fmt.Sprintf("%s - Score: %.1f", r.Name, r.Score),
		})
	}

	raw, err := json.Marshal(features)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal marker features: %w", err)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "markers.html.tmpl", markersData{
		CenterLat: mapCenterLat,
		CenterLon: mapCenterLon,
		Zoom:      mapZoom,
		Features:  template.JS(raw),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("execute markers template: %w", err)
	}
	return buf.Bytes(), len(features), nil
}

// popupHTML builds the marker popup. Field values come from the input file,
// so they are escaped before being wrapped in markup.
func popupHTML(r domain.AirportRecord) string {
	military := "No"
	if r.Military {
		military = "Yes"
	}
	return fmt.Sprintf(
		"<b>%s</b><br>City: %s, %s<br>Opportunity Score: %.1f<br>Certification Level: %g<br>Military Relevant: %s",
		html.EscapeString(r.Name),
		html.EscapeString(r.City),
		html.EscapeString(r.State),
		r.Score,
		r.CertScore,
		military,
	)
}
