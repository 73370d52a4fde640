package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Persistent cache backends
const (
	BackendS3     = "s3"
	BackendDynamo = "dynamodb"
	BackendNone   = "none"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// TTLMinutes applies to both layers
	TTLMinutes int

	// LRU Cache settings
	LRUSize        int
	EnableLRUCache bool

	// Persistent cache settings
	Backend     string
	S3Bucket    string
	S3Key       string
	DynamoTable string
}

const (
	defaultTTLMinutes  = 5
	defaultLRUSize     = 8
	defaultBackend     = BackendNone
	defaultS3Key       = "cachedLocationData.json"
	defaultDynamoTable = "windchart-cache"
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		TTLMinutes:     getEnvInt("CACHE_TTL_MINUTES", defaultTTLMinutes),
		LRUSize:        getEnvInt("CACHE_LRU_SIZE", defaultLRUSize),
		EnableLRUCache: getEnvBool("CACHE_ENABLE_LRU", true),
		Backend:        getEnvString("CACHE_BACKEND", defaultBackend),
		S3Bucket:       os.Getenv("CACHE_S3_BUCKET"),
		S3Key:          getEnvString("CACHE_S3_KEY", defaultS3Key),
		DynamoTable:    getEnvString("CACHE_DYNAMO_TABLE", defaultDynamoTable),
	}

	log.Debug().
		Int("TTLMinutes", config.TTLMinutes).
		Int("LRUSize", config.LRUSize).
		Bool("EnableLRUCache", config.EnableLRUCache).
		Str("Backend", config.Backend).
		Str("S3Bucket", config.S3Bucket).
		Str("DynamoTable", config.DynamoTable).
		Msg("Cache configuration loaded")

	return config
}

func (c *CacheConfig) GetTTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return defaultVal
}
