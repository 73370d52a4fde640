package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/windchart/backend-go/internal/models"
	"github.com/windchart/backend-go/pkg/http/client"
)

const forecastPath = "/weatherapi/locationforecast/2.0/complete"

// Fetcher retrieves the forecast series of one location
type Fetcher interface {
	FetchStation(ctx context.Context, location models.Location) (models.StationSeries, error)
}

// MetClient fetches locationforecast data from api.met.no
type MetClient struct {
	httpClient client.Interface
}

var _ Fetcher = (*MetClient)(nil)

func NewMetClient(httpClient client.Interface) *MetClient {
	return &MetClient{httpClient: httpClient}
}

// FetchStation performs one GET for the location. It does not retry.
func (c *MetClient) FetchStation(ctx context.Context, location models.Location) (models.StationSeries, error) {
	path := fmt.Sprintf("%s?lat=%s&lon=%s", forecastPath,
		formatCoordinate(location.Latitude), formatCoordinate(location.Longitude))

	resp, err := c.httpClient.Get(ctx, path)
	if err != nil {
		return models.StationSeries{}, NewNetworkError(location.Name, "request failed", err)
	}
	if !resp.OK() {
		e := NewNetworkError(location.Name, "unexpected response", nil)
		e.StatusCode = resp.StatusCode
		return models.StationSeries{}, e
	}

	log.Debug().
		Str("location", location.Name).
		Int("bytes", len(resp.Body)).
		Msg("Fetched forecast from met.no")

	series, err := parseForecast(location.Name, resp.Body)
	if err != nil {
		return models.StationSeries{}, NewNetworkError(location.Name, "invalid forecast body", err)
	}
	return series, nil
}

func parseForecast(name string, body []byte) (models.StationSeries, error) {
	var metResp models.MetResponse
	if err := json.Unmarshal(body, &metResp); err != nil {
		return models.StationSeries{}, fmt.Errorf("decoding response: %w", err)
	}
	if metResp.Properties == nil || metResp.Properties.Timeseries == nil {
		return models.StationSeries{}, fmt.Errorf("missing properties.timeseries")
	}

	points := make([]models.ForecastPoint, len(metResp.Properties.Timeseries))
	for i, step := range metResp.Properties.Timeseries {
		t, err := time.Parse(time.RFC3339, step.Time)
		if err != nil {
			return models.StationSeries{}, fmt.Errorf("parsing time %s: %w", step.Time, err)
		}
		details := step.Data.Instant.Details
		if details == nil {
			details = map[string]float64{}
		}
		points[i] = models.ForecastPoint{
			Time:    t.UTC(),
			Details: details,
		}
	}

	return models.StationSeries{
		Name:       name,
		Timeseries: points,
	}, nil
}

// met.no answers 403 to coordinates with more than four decimals
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}
