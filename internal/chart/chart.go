package chart

import (
	"time"

	"github.com/windchart/backend-go/internal/models"
)

// Build derives everything the presentation layer draws for state. In
// daylight-only mode night points are dropped, the x axis becomes
// categorical and days are marked with index bands. Otherwise the axis is
// continuous time with sunrise to sunset bands.
func Build(series []models.StationSeries, state models.ChartState, daylight DaylightSource) models.Chart {
	mode := models.AxisTime
	if state.DaylightOnly {
		series = FilterDaylight(series, daylight)
		mode = models.AxisCategory
	}

	chartSeries := BuildSeries(series, state)
	labels := labelsOf(chartSeries)

	chart := models.Chart{
		Field:     state.Field,
		Mode:      mode,
		Labels:    labels,
		Series:    chartSeries,
		WindZones: WindZoneBands(),
	}
	if state.DaylightOnly {
		chart.DayBands = GenerateDayAnnotations(labels, daylight.Location())
	} else {
		chart.DaylightBands = DaylightBands(labels, daylight)
	}
	return chart
}

// labelsOf takes the x axis from the first series, like the chart does
func labelsOf(series []models.ChartSeries) []time.Time {
	if len(series) == 0 {
		return []time.Time{}
	}
	labels := make([]time.Time, len(series[0].Points))
	for i, p := range series[0].Points {
		labels[i] = p.Time
	}
	return labels
}
