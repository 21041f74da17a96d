package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/jetscout/opportunity-maps/internal/domain"
)

// HeatmapView renders the weighted point-density heat map over every record
// with coordinates, weighted by opportunity score.
type HeatmapView struct{}

func (v *HeatmapView) Name() string     { return "heatmap" }
func (v *HeatmapView) FileName() string { return "opportunity_heatmap.html" }

type heatmapData struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Points    template.JS
}

func (v *HeatmapView) Render(records []domain.AirportRecord) ([]byte, int, error) {
	points := make([][3]float64, 0, len(records))
	for _, r := range records {
		if !r.HasGeo() {
			continue
		}
		points = append(points, [3]float64{r.Geo.Lat, r.Geo.Lon, r.Score})
	}

	raw, err := json.Marshal(points)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal heat points: %w", err)
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "heatmap.html.tmpl", heatmapData{
		CenterLat: mapCenterLat,
		CenterLon: mapCenterLon,
		Zoom:      mapZoom,
		Points:    template.JS(raw),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("execute heatmap template: %w", err)
	}
	return buf.Bytes(), len(points), nil
}
