package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windchart/backend-go/internal/api"
	"github.com/windchart/backend-go/internal/forecast"
	"github.com/windchart/backend-go/internal/geo"
	"github.com/windchart/backend-go/internal/models"
	"github.com/windchart/backend-go/internal/stations"
)

// mockStationsProvider implements StationsProvider for testing
type mockStationsProvider struct {
	getStationsFn func(ctx context.Context) ([]models.StationSeries, error)
}

func (m *mockStationsProvider) GetStations(ctx context.Context) ([]models.StationSeries, error) {
	if m.getStationsFn != nil {
		return m.getStationsFn(ctx)
	}
	return nil, nil
}

func createTestSeries() []models.StationSeries {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var points []models.ForecastPoint
	for h := 0; h < 48; h++ {
		points = append(points, models.ForecastPoint{
			Time: start.Add(time.Duration(h) * time.Hour),
			Details: map[string]float64{
				models.FieldWindSpeed:     7,
				models.FieldWindGust:      11,
				models.FieldWindDirection: 225,
			},
		})
	}
	return []models.StationSeries{
		{Index: 0, Name: "sokn", Timeseries: points},
		{Index: 1, Name: "solasanden", Timeseries: points},
	}
}

func testDaylight() *geo.Daylight {
	return geo.NewDaylight(58.88, 5.60, geo.WithSunTimes(func(midnight time.Time, lat, lon float64) (time.Time, time.Time) {
		return midnight.Add(6 * time.Hour), midnight.Add(21 * time.Hour)
	}))
}

func TestChartHandler_HandleRequest(t *testing.T) {
	provider := &mockStationsProvider{
		getStationsFn: func(ctx context.Context) ([]models.StationSeries, error) {
			return createTestSeries(), nil
		},
	}

	tests := []struct {
		name       string
		params     map[string]string
		wantMode   models.AxisMode
		wantSeries int
		wantLabels int
		wantColor  bool
	}{
		{
			name:       "default chart",
			params:     map[string]string{},
			wantMode:   models.AxisTime,
			wantSeries: 2,
			wantLabels: 48,
		},
		{
			name:       "daylight only single station with colors",
			params:     map[string]string{"daylight": "true", "station": "1", "color": "true", "field": "wind_speed_of_gust"},
			wantMode:   models.AxisCategory,
			wantSeries: 1,
			wantLabels: 32,
			wantColor:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewChartHandler(provider, testDaylight())

			response, err := handler.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
				QueryStringParameters: tt.params,
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, response.StatusCode)

			var body api.ChartResponse
			require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
			assert.Equal(t, "chart", body.ResponseType)
			assert.Equal(t, tt.wantMode, body.Chart.Mode)
			assert.Len(t, body.Chart.Series, tt.wantSeries)
			assert.Len(t, body.Chart.Labels, tt.wantLabels)
			assert.Len(t, body.Chart.WindZones, 8)

			point := body.Chart.Series[0].Points[0]
			require.NotNil(t, point.Value)
			assert.Equal(t, "SW", point.Compass)
			assert.Equal(t, tt.wantColor, point.Color != "")
		})
	}
}

func TestChartHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		params         map[string]string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid field",
			params:         map[string]string{"field": "air_temperature"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid field: air_temperature",
		},
		{
			name: "all sources failed",
			err: stations.NewAllSourcesFailedError([]error{
				forecast.NewNetworkError("sokn", "request failed", assert.AnError),
			}),
			expectedStatus: http.StatusBadGateway,
			expectedError:  "Forecast unavailable",
		},
		{
			name:           "unexpected error",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Error getting forecast data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockStationsProvider{
				getStationsFn: func(ctx context.Context) ([]models.StationSeries, error) {
					return nil, tt.err
				},
			}
			handler := NewChartHandler(provider, testDaylight())

			response, err := handler.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
				QueryStringParameters: tt.params,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, response.StatusCode)

			var responseBody map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(response.Body), &responseBody))
			assert.Equal(t, "error", responseBody["responseType"])
			assert.Equal(t, tt.expectedError, responseBody["error"])
		})
	}
}

func TestChartHandler_SelectionAfterPartialFailure(t *testing.T) {
	// sokn (location 0) failed, every other location is present
	provider := &mockStationsProvider{
		getStationsFn: func(ctx context.Context) ([]models.StationSeries, error) {
			var series []models.StationSeries
			for i, location := range models.Locations[1:] {
				series = append(series, models.StationSeries{
					Index: i + 1,
					Name:  location.Name,
					Timeseries: []models.ForecastPoint{
						{Time: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), Details: map[string]float64{models.FieldWindSpeed: 5}},
					},
				})
			}
			return series, nil
		},
	}
	handler := NewChartHandler(provider, testDaylight())

	tests := []struct {
		name           string
		station        string
		expectedStatus int
		wantName       string
		wantIndex      int
	}{
		{name: "middle location", station: "10", expectedStatus: http.StatusOK, wantName: "rege", wantIndex: 10},
		{name: "last location", station: "18", expectedStatus: http.StatusOK, wantName: "nærlandssanden", wantIndex: 18},
		{name: "failed location", station: "0", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := handler.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{"station": tt.station},
			})
			require.NoError(t, err)
			require.Equal(t, tt.expectedStatus, response.StatusCode)

			if tt.expectedStatus != http.StatusOK {
				var errorResp api.ErrorResponse
				require.NoError(t, json.Unmarshal([]byte(response.Body), &errorResp))
				assert.Equal(t, "Location not available", errorResp.Error)
				return
			}

			var body api.ChartResponse
			require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
			require.Len(t, body.Chart.Series, 1)
			assert.Equal(t, tt.wantName, body.Chart.Series[0].Name)
			assert.Equal(t, tt.wantIndex, body.Chart.Series[0].Index)
		})
	}
}
