package main

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
	"github.com/windchart/backend-go/internal/cache"
	"github.com/windchart/backend-go/internal/config"
	"github.com/windchart/backend-go/internal/forecast"
	"github.com/windchart/backend-go/internal/geo"
	"github.com/windchart/backend-go/internal/handler"
	"github.com/windchart/backend-go/internal/stations"
	"github.com/windchart/backend-go/pkg/http/client"
)

var (
	lambdaStart  = lambda.Start // Allow mocking of lambda.Start in tests
	chartHandler *handler.ChartHandler
	setupOnce    sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()
		cacheConfig := config.GetCacheConfig()

		httpClient := client.New(client.Options{
			BaseURL:   cfg.ForecastBaseURL,
			Timeout:   cfg.HTTPTimeout,
			UserAgent: cfg.UserAgent,
		})

		var opts []stations.Option
		if cacheConfig.EnableLRUCache {
			memory, err := cache.NewMemoryCache(cacheConfig, nil)
			if err != nil {
				log.Error().Err(err).Msg("Failed to create memory cache, continuing without it")
			} else {
				opts = append(opts, stations.WithMemoryCache(memory))
			}
		}

		// Lambda containers are reused, the persistent layer survives cold starts
		store, err := cache.NewSnapshotStore(context.Background(), cacheConfig)
		if err != nil {
			log.Error().Err(err).Str("backend", cacheConfig.Backend).Msg("Failed to create persistent cache, continuing without it")
		} else if store != nil {
			opts = append(opts, stations.WithSnapshotStore(store))
		}

		manager := stations.NewManager(forecast.NewMetClient(httpClient), opts...)
		daylight := geo.NewDaylight(cfg.ReferenceLatitude, cfg.ReferenceLongitude, geo.WithLocation(cfg.Location()))

		chartHandler = handler.NewChartHandler(manager, daylight)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log.Info().Interface("params", request.QueryStringParameters).Msg("Handling chart request")
	return chartHandler.HandleRequest(ctx, request)
}

func main() {
	lambdaStart(handleRequest)
}
