package chart

import (
	"fmt"
	"strconv"

	"github.com/windchart/backend-go/internal/geo"
	"github.com/windchart/backend-go/internal/models"
)

// TooltipLabel formats the hover text for one data point, e.g.
// "solasanden (SSW 200) kn:12.3". ok is false for indexes outside series.
func TooltipLabel(series []models.StationSeries, datasetIndex, dataIndex int, field string) (string, bool) {
	if datasetIndex < 0 || datasetIndex >= len(series) {
		return "", false
	}
	s := series[datasetIndex]
	if dataIndex < 0 || dataIndex >= len(s.Timeseries) {
		return "", false
	}
	p := s.Timeseries[dataIndex]

	knots := "-"
	if kn, ok := ToKnots(p, field); ok {
		knots = strconv.FormatFloat(kn, 'f', 1, 64)
	}

	dir, ok := p.Detail(models.FieldWindDirection)
	if !ok {
		return fmt.Sprintf("%s kn:%s", s.Name, knots), true
	}
	return fmt.Sprintf("%s (%s %s) kn:%s", s.Name,
		geo.DegreesToCompassSector(dir), strconv.FormatFloat(dir, 'f', -1, 64), knots), true
}
