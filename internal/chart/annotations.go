package chart

import (
	"time"

	"github.com/windchart/backend-go/internal/models"
)

// windZones are the wind ranges in knots each kite size is flown in
var windZones = []models.WindZoneBand{
	{Label: "12m", Min: 12, Max: 15},
	{Label: "10m", Min: 15, Max: 18},
	{Label: "9m", Min: 18, Max: 22},
	{Label: "8m", Min: 22, Max: 26},
	{Label: "7m", Min: 26, Max: 30},
	{Label: "6m", Min: 30, Max: 35},
	{Label: "5m", Min: 35, Max: 40},
	{Label: "4m", Min: 40, Max: 45},
}

// DaylightSource is the daylight model annotations are computed from
type DaylightSource interface {
	DaylightChecker
	Day(t time.Time) time.Time
	SunTimes(t time.Time) (rise, set time.Time, ok bool)
	Location() *time.Location
}

// WindZoneBands returns the static kite size bands, lowest first
func WindZoneBands() []models.WindZoneBand {
	bands := make([]models.WindZoneBand, len(windZones))
	copy(bands, windZones)
	return bands
}

// DaylightBands returns one sunrise to sunset band per distinct calendar
// day in times. Days without both a sunrise and a sunset get no band.
func DaylightBands(times []time.Time, daylight DaylightSource) []models.DaylightBand {
	var bands []models.DaylightBand
	seen := make(map[time.Time]bool)
	for _, t := range times {
		day := daylight.Day(t)
		if seen[day] {
			continue
		}
		seen[day] = true

		rise, set, ok := daylight.SunTimes(t)
		if !ok {
			continue
		}
		bands = append(bands, models.DaylightBand{
			Day:   day.Format(time.DateOnly),
			Start: rise,
			End:   set,
		})
	}
	return bands
}

// GenerateDayAnnotations groups consecutive indexes that fall on the same
// calendar day into bands with alternating identity. The last run is
// closed at the final index.
func GenerateDayAnnotations(times []time.Time, loc *time.Location) []models.DayBand {
	if len(times) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	var bands []models.DayBand
	start, identity := 0, 0
	for i := 1; i <= len(times); i++ {
		if i < len(times) && sameDay(times[start], times[i], loc) {
			continue
		}
		bands = append(bands, models.DayBand{
			Start:    start,
			End:      i - 1,
			Identity: identity,
			Label:    times[start].In(loc).Weekday().String(),
			Center:   float64(start+i-1) / 2,
		})
		identity = 1 - identity
		start = i
	}
	return bands
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
