package models

import "time"

// AllStations selects every series
const AllStations = -1

// ChartState is the caller-owned view configuration
type ChartState struct {
	Field            string `json:"field"`
	ColorByDirection bool   `json:"colorByDirection"`
	DaylightOnly     bool   `json:"daylightOnly"`
	Station          int    `json:"station"`
}

func DefaultChartState() ChartState {
	return ChartState{
		Field:   FieldWindSpeed,
		Station: AllStations,
	}
}

type AxisMode string

const (
	// AxisTime is a continuous time axis
	AxisTime AxisMode = "time"
	// AxisCategory is an index axis, used once night points are dropped
	AxisCategory AxisMode = "category"
)

type ChartPoint struct {
	Time      time.Time `json:"time"`
	Value     *float64  `json:"value"`
	Direction *float64  `json:"direction,omitempty"`
	Compass   string    `json:"compass,omitempty"`
	Color     string    `json:"color,omitempty"`
}

type ChartSeries struct {
	Index  int          `json:"index"`
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// WindZoneBand is a horizontal band in knots for one wing size
type WindZoneBand struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DaylightBand spans sunrise to sunset of one calendar day
type DaylightBand struct {
	Day   string    `json:"day"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayBand covers the inclusive index run [Start, End] of one calendar day
type DayBand struct {
	Start    int     `json:"start"`
	End      int     `json:"end"`
	Identity int     `json:"identity"`
	Label    string  `json:"label"`
	Center   float64 `json:"center"`
}

type Chart struct {
	Field         string         `json:"field"`
	Mode          AxisMode       `json:"mode"`
	Labels        []time.Time    `json:"labels"`
	Series        []ChartSeries  `json:"series"`
	WindZones     []WindZoneBand `json:"windZones"`
	DaylightBands []DaylightBand `json:"daylightBands,omitempty"`
	DayBands      []DayBand      `json:"dayBands,omitempty"`
}
