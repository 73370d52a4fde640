package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/windchart/backend-go/internal/api"
	"github.com/windchart/backend-go/internal/models"
	"github.com/windchart/backend-go/internal/stations"
)

// StationsHandler lists the forecast locations. A name parameter selects a
// single location and lat/lon order them by distance.
type StationsHandler struct {
	finder *stations.LocationFinder
}

func NewStationsHandler(finder *stations.LocationFinder) *StationsHandler {
	return &StationsHandler{
		finder: finder,
	}
}

func (h *StationsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	if name, ok := params["name"]; ok {
		location := h.finder.FindLocation(name)
		if location == nil {
			return api.Error("Location not found", http.StatusNotFound)
		}
		return api.Success(api.NewLocationsResponse([]models.IndexedLocation{*location}))
	}

	lat, lon, hasCoordinates, err := api.ParseCoordinates(params)
	if err != nil {
		var invalidCoordErr api.InvalidCoordinatesError
		if errors.As(err, &invalidCoordErr) {
			return api.Error(err.Error(), http.StatusBadRequest)
		}
		return api.Error("Invalid parameters", http.StatusBadRequest)
	}
	if !hasCoordinates {
		return api.Success(api.NewLocationsResponse(h.finder.All()))
	}

	limit := 0
	if limitStr, ok := params["limit"]; ok {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil {
			limit = parsedLimit
		}
	}

	nearest, err := h.finder.FindNearestLocations(lat, lon, limit)
	if err != nil {
		return api.Error("Error finding locations", http.StatusInternalServerError)
	}

	return api.Success(api.NewLocationsResponse(nearest))
}
