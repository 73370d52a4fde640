package chart

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/windchart/backend-go/internal/geo"
	"github.com/windchart/backend-go/internal/models"
)

const (
	colorSaturation = 0.85
	colorValue      = 0.9
)

// DaylightChecker decides whether a timestamp is between sunrise and sunset
type DaylightChecker interface {
	IsDaylight(t time.Time) bool
}

// FilterDaylight drops night points from every series. Relative order is
// kept and a series may end up empty.
func FilterDaylight(series []models.StationSeries, daylight DaylightChecker) []models.StationSeries {
	filtered := make([]models.StationSeries, len(series))
	for i, s := range series {
		points := make([]models.ForecastPoint, 0, len(s.Timeseries))
		for _, p := range s.Timeseries {
			if daylight.IsDaylight(p.Time) {
				points = append(points, p)
			}
		}
		filtered[i] = models.StationSeries{Index: s.Index, Name: s.Name, Timeseries: points}
	}
	return filtered
}

// ToKnots returns the field of p in knots. ok is false when the field is
// missing from the point.
func ToKnots(p models.ForecastPoint, field string) (float64, bool) {
	v, ok := p.Detail(field)
	if !ok {
		return 0, false
	}
	return geo.ToKnots(v), true
}

// DirectionToColor maps a wind direction onto the hue wheel, so 0 and 360
// share a color. Non-finite input maps to hue 0.
func DirectionToColor(deg float64) string {
	hue := 0.0
	if !math.IsNaN(deg) && !math.IsInf(deg, 0) {
		hue = math.Mod(deg, 360)
		if hue < 0 {
			hue += 360
		}
	}
	return colorful.Hsv(hue, colorSaturation, colorValue).Hex()
}

// SelectStations keeps every series, or only the one whose location index
// is state.Station. The selection is empty when that location is not in
// series, e.g. because its fetch failed.
func SelectStations(series []models.StationSeries, state models.ChartState) []models.StationSeries {
	if state.Station < 0 {
		return series
	}
	for _, s := range series {
		if s.Index == state.Station {
			return []models.StationSeries{s}
		}
	}
	return []models.StationSeries{}
}

// BuildSeries converts the selected series to knots. Color is only set in
// color mode, from the direction at the start of each segment.
func BuildSeries(series []models.StationSeries, state models.ChartState) []models.ChartSeries {
	selected := SelectStations(series, state)
	result := make([]models.ChartSeries, len(selected))
	for i, s := range selected {
		result[i] = models.ChartSeries{
			Index:  s.Index,
			Name:   s.Name,
			Points: buildPoints(s.Timeseries, state),
		}
	}
	return result
}

func buildPoints(timeseries []models.ForecastPoint, state models.ChartState) []models.ChartPoint {
	points := make([]models.ChartPoint, len(timeseries))
	for i, p := range timeseries {
		cp := models.ChartPoint{Time: p.Time}
		if kn, ok := ToKnots(p, state.Field); ok {
			cp.Value = &kn
		}
		if dir, ok := p.Detail(models.FieldWindDirection); ok {
			cp.Direction = &dir
			cp.Compass = geo.DegreesToCompassSector(dir)
			if state.ColorByDirection {
				cp.Color = DirectionToColor(dir)
			}
		}
		points[i] = cp
	}
	return points
}
