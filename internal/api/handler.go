package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/windchart/backend-go/internal/models"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type ChartResponse struct {
	APIResponse
	State models.ChartState `json:"state"`
	Chart models.Chart      `json:"chart"`
}

type LocationsResponse struct {
	APIResponse
	Locations []models.IndexedLocation `json:"locations"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewChartResponse(state models.ChartState, chart models.Chart) *ChartResponse {
	return &ChartResponse{
		APIResponse: APIResponse{ResponseType: "chart"},
		State:       state,
		Chart:       chart,
	}
}

func NewLocationsResponse(locations []models.IndexedLocation) *LocationsResponse {
	return &LocationsResponse{
		APIResponse: APIResponse{ResponseType: "locations"},
		Locations:   locations,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

// ParseChartState reads field, color, daylight and station from the query
// string. Missing parameters keep their defaults.
func ParseChartState(params map[string]string, stationCount int) (models.ChartState, error) {
	state := models.DefaultChartState()

	if field, ok := params["field"]; ok && field != "" {
		if !models.IsSpeedField(field) {
			return state, InvalidParameterError{Name: "field", Value: field}
		}
		state.Field = field
	}

	var err error
	if state.ColorByDirection, err = parseBool(params, "color"); err != nil {
		return state, err
	}
	if state.DaylightOnly, err = parseBool(params, "daylight"); err != nil {
		return state, err
	}

	if str, ok := params["station"]; ok && str != "" {
		station, err := strconv.Atoi(str)
		if err != nil || station < models.AllStations || station >= stationCount {
			return state, InvalidParameterError{Name: "station", Value: str}
		}
		state.Station = station
	}

	return state, nil
}

func parseBool(params map[string]string, name string) (bool, error) {
	str, ok := params[name]
	if !ok || str == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(str)
	if err != nil {
		return false, InvalidParameterError{Name: name, Value: str}
	}
	return v, nil
}

type InvalidParameterError struct {
	Name  string
	Value string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Name, e.Value)
}

// ParseCoordinates reads lat and lon. Both missing is not an error and
// yields ok == false.
func ParseCoordinates(params map[string]string) (lat, lon float64, ok bool, err error) {
	latStr, hasLat := params["lat"]
	lonStr, hasLon := params["lon"]

	if !hasLat && !hasLon {
		return 0, 0, false, nil
	}

	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		return 0, 0, false, err
	}

	lon, err = strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return 0, 0, false, err
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false, InvalidCoordinatesError{}
	}

	return lat, lon, true, nil
}

type InvalidCoordinatesError struct{}

func (e InvalidCoordinatesError) Error() string {
	return "Invalid coordinates"
}
