package models

import "time"

// Instant detail keys used by the chart
const (
	FieldWindSpeed     = "wind_speed"
	FieldWindGust      = "wind_speed_of_gust"
	FieldWindDirection = "wind_from_direction"
	FieldPercentile10  = "wind_speed_percentile_10"
	FieldPercentile90  = "wind_speed_percentile_90"
)

// SpeedFields lists the details that can be plotted in knots
var SpeedFields = []string{
	FieldWindSpeed,
	FieldWindGust,
	FieldPercentile10,
	FieldPercentile90,
}

func IsSpeedField(field string) bool {
	for _, f := range SpeedFields {
		if f == field {
			return true
		}
	}
	return false
}

// ForecastPoint is one forecast time step. Speeds are m/s, direction is
// degrees.
type ForecastPoint struct {
	Time    time.Time          `json:"time" dynamodbav:"time"`
	Details map[string]float64 `json:"details" dynamodbav:"details"`
}

func (p ForecastPoint) Detail(field string) (float64, bool) {
	v, ok := p.Details[field]
	return v, ok
}

// StationSeries is the chronological forecast for one location. Index is
// the location's position in the location list, not in a fetched batch.
type StationSeries struct {
	Index      int             `json:"index" dynamodbav:"index"`
	Name       string          `json:"name" dynamodbav:"name"`
	Timeseries []ForecastPoint `json:"timeseries" dynamodbav:"timeseries"`
}

// CacheEntry is a snapshot of every location that fetched successfully.
// Data is never empty for a stored entry.
type CacheEntry struct {
	Timestamp time.Time
	Data      []StationSeries
}

// IsFresh reports whether the entry holds data younger than ttl
func (e *CacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	if e == nil || len(e.Data) == 0 {
		return false
	}
	return now.Sub(e.Timestamp) < ttl
}

// MetTimestep is one entry of properties.timeseries in a locationforecast
// response
type MetTimestep struct {
	Time string `json:"time"`
	Data struct {
		Instant struct {
			Details map[string]float64 `json:"details"`
		} `json:"instant"`
	} `json:"data"`
}

// MetResponse is the subset of the locationforecast 2.0 payload we read
type MetResponse struct {
	Properties *struct {
		Timeseries []MetTimestep `json:"timeseries"`
	} `json:"properties"`
}
