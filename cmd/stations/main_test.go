package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windchart/backend-go/internal/models"
)

var (
	mu sync.Mutex // Protect lambdaStart in tests
)

func TestLambdaInit(t *testing.T) {
	mu.Lock()
	originalStartFn := lambdaStart
	var startCalled bool
	lambdaStart = func(handler interface{}) {
		mu.Lock()
		startCalled = true
		mu.Unlock()
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
	defer mu.Unlock()
	assert.True(t, startCalled, "Lambda start was not called")
}

func TestHandleRequest(t *testing.T) {
	response, err := handleRequest(context.Background(), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var body struct {
		ResponseType string            `json:"responseType"`
		Locations    []models.Location `json:"locations"`
	}
	require.NoError(t, json.Unmarshal([]byte(response.Body), &body))
	assert.Equal(t, "locations", body.ResponseType)
	assert.Len(t, body.Locations, len(models.Locations))
}
