package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultForecastBaseURL = "https://api.met.no"
	defaultUserAgent       = "windchart/1.0 github.com/windchart/backend-go"
	defaultTimeZone        = "Europe/Oslo"

	// Sola, roughly the middle of the Jæren coastline.
	defaultReferenceLatitude  = 58.88
	defaultReferenceLongitude = 5.60
)

type Config struct {
	Environment     string
	LogLevel        zerolog.Level
	HTTPTimeout     time.Duration
	ForecastBaseURL string
	UserAgent       string

	// ReferenceLatitude and ReferenceLongitude are used for every daylight
	// computation; the spots are close enough to share one point.
	ReferenceLatitude  float64
	ReferenceLongitude float64
	TimeZone           string
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

func WithForecastBaseURL(url string) Option {
	return func(c *Config) {
		c.ForecastBaseURL = url
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// WithReferencePoint sets the coordinates used for sunrise and sunset
func WithReferencePoint(lat, lon float64) Option {
	return func(c *Config) {
		c.ReferenceLatitude = lat
		c.ReferenceLongitude = lon
	}
}

func WithTimeZone(name string) Option {
	return func(c *Config) {
		c.TimeZone = name
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:        "production",
		LogLevel:           zerolog.InfoLevel,
		HTTPTimeout:        10 * time.Second,
		ForecastBaseURL:    defaultForecastBaseURL,
		UserAgent:          defaultUserAgent,
		ReferenceLatitude:  defaultReferenceLatitude,
		ReferenceLongitude: defaultReferenceLongitude,
		TimeZone:           defaultTimeZone,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Location resolves the configured time zone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("time_zone", c.TimeZone).Msg("Unknown time zone, using UTC")
		return time.UTC
	}
	return loc
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 10*time.Second)),
		WithForecastBaseURL(getEnvOrDefault("FORECAST_BASE_URL", defaultForecastBaseURL)),
		WithUserAgent(getEnvOrDefault("FORECAST_USER_AGENT", defaultUserAgent)),
		WithReferencePoint(
			getFloatEnvOrDefault("DAYLIGHT_REFERENCE_LAT", defaultReferenceLatitude),
			getFloatEnvOrDefault("DAYLIGHT_REFERENCE_LON", defaultReferenceLongitude),
		),
		WithTimeZone(getEnvOrDefault("TZ_NAME", defaultTimeZone)),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnvOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Warn().Str("key", key).Msg("Invalid float value in environment variable, using default")
	}
	return defaultValue
}
