package cache

import (
	"time"

	"github.com/windchart/backend-go/internal/models"
)

// mockClock implements Clock for testing
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

func (m *mockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func createTestSeries() []models.StationSeries {
	return []models.StationSeries{
		{
			Name: "sokn",
			Timeseries: []models.ForecastPoint{
				{
					Time:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
					Details: map[string]float64{"wind_speed": 7.5, "wind_from_direction": 200},
				},
				{
					Time:    time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC),
					Details: map[string]float64{"wind_speed": 8.1, "wind_from_direction": 210},
				},
			},
		},
		{
			Name: "solasanden",
			Timeseries: []models.ForecastPoint{
				{
					Time:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
					Details: map[string]float64{"wind_speed": 9.0, "wind_from_direction": 190},
				},
			},
		},
	}
}
