package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windchart/backend-go/internal/forecast"
	"github.com/windchart/backend-go/internal/geo"
	"github.com/windchart/backend-go/internal/handler"
	"github.com/windchart/backend-go/internal/models"
	"github.com/windchart/backend-go/internal/stations"
)

var (
	mu sync.Mutex // Protect lambdaStart in tests
)

func TestMain(m *testing.M) {
	// Set up test environment
	err := os.Setenv("LOG_LEVEL", "debug")
	if err != nil {
		return
	}
	err = os.Setenv("ENV", "test")
	if err != nil {
		return
	}

	os.Exit(m.Run())
}

// mockFetcher implements forecast.Fetcher for testing
type mockFetcher struct {
	fetchFn func(ctx context.Context, location models.Location) (models.StationSeries, error)
}

func (m *mockFetcher) FetchStation(ctx context.Context, location models.Location) (models.StationSeries, error) {
	return m.fetchFn(ctx, location)
}

var _ forecast.Fetcher = (*mockFetcher)(nil)

func TestLambdaInit(t *testing.T) {
	require.NotNil(t, chartHandler, "init should build the handler")

	mu.Lock()
	originalStartFn := lambdaStart
	var startCalled bool
	lambdaStart = func(h interface{}) {
		mu.Lock()
		startCalled = true
		mu.Unlock()

		handlerType := reflect.TypeOf(h)
		assert.Equal(t, reflect.Func, handlerType.Kind())

		contextInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
		errorInterface := reflect.TypeOf((*error)(nil)).Elem()
		assert.Equal(t, 2, handlerType.NumIn())
		assert.Equal(t, 2, handlerType.NumOut())
		assert.True(t, handlerType.In(0).Implements(contextInterface))
		assert.Equal(t, reflect.TypeOf(events.APIGatewayProxyRequest{}), handlerType.In(1))
		assert.Equal(t, reflect.TypeOf(events.APIGatewayProxyResponse{}), handlerType.Out(0))
		assert.True(t, handlerType.Out(1).Implements(errorInterface))
	}
	mu.Unlock()

	defer func() {
		mu.Lock()
		lambdaStart = originalStartFn
		mu.Unlock()
	}()

	go main()
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	wasStartCalled := startCalled
	mu.Unlock()
	assert.True(t, wasStartCalled, "Lambda start was not called")
}

func TestHandleRequest(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fetcher := &mockFetcher{
		fetchFn: func(ctx context.Context, location models.Location) (models.StationSeries, error) {
			if location.Name == "rege" {
				return models.StationSeries{}, forecast.NewNetworkError(location.Name, "unexpected response", nil)
			}
			return models.StationSeries{
				Name: location.Name,
				Timeseries: []models.ForecastPoint{
					{Time: start.Add(12 * time.Hour), Details: map[string]float64{models.FieldWindSpeed: 8, models.FieldWindDirection: 180}},
				},
			}, nil
		},
	}
	daylight := geo.NewDaylight(58.88, 5.60, geo.WithSunTimes(func(midnight time.Time, lat, lon float64) (time.Time, time.Time) {
		return midnight.Add(6 * time.Hour), midnight.Add(21 * time.Hour)
	}))

	original := chartHandler
	defer func() { chartHandler = original }()
	chartHandler = handler.NewChartHandler(stations.NewManager(fetcher), daylight)

	response, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{
		QueryStringParameters: map[string]string{"color": "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	assert.Equal(t, "chart", body["responseType"])

	chart := body["chart"].(map[string]interface{})
	assert.Len(t, chart["series"], len(models.Locations)-1)
	assert.Equal(t, "time", chart["mode"])
}
