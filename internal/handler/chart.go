package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
	"github.com/windchart/backend-go/internal/api"
	"github.com/windchart/backend-go/internal/chart"
	"github.com/windchart/backend-go/internal/models"
	"github.com/windchart/backend-go/internal/stations"
)

// StationsProvider returns the cached forecast of every location
type StationsProvider interface {
	GetStations(ctx context.Context) ([]models.StationSeries, error)
}

type ChartHandler struct {
	provider StationsProvider
	daylight chart.DaylightSource
}

func NewChartHandler(provider StationsProvider, daylight chart.DaylightSource) *ChartHandler {
	return &ChartHandler{
		provider: provider,
		daylight: daylight,
	}
}

func (h *ChartHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	state, err := api.ParseChartState(request.QueryStringParameters, len(models.Locations))
	if err != nil {
		return api.Error(err.Error(), http.StatusBadRequest)
	}

	series, err := h.provider.GetStations(ctx)
	if err != nil {
		var allFailed *stations.AllSourcesFailedError
		if errors.As(err, &allFailed) {
			log.Error().Err(err).Msg("No forecast source available")
			return api.Error("Forecast unavailable", http.StatusBadGateway)
		}
		log.Error().Err(err).Msg("Error getting forecast data")
		return api.Error("Error getting forecast data", http.StatusInternalServerError)
	}

	// The selected location may be missing from a partial snapshot
	if state.Station != models.AllStations && len(chart.SelectStations(series, state)) == 0 {
		log.Warn().Int("station", state.Station).Msg("Selected location not in snapshot")
		return api.Error("Location not available", http.StatusNotFound)
	}

	log.Debug().
		Str("field", state.Field).
		Bool("daylight_only", state.DaylightOnly).
		Int("station", state.Station).
		Msg("Building chart")

	return api.Success(api.NewChartResponse(state, chart.Build(series, state, h.daylight)))
}
