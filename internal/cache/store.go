package cache

import (
	"context"
	"fmt"

	cfgpkg "github.com/windchart/backend-go/internal/config"
)

// NewSnapshotStore builds the persistent layer selected by cfg.Backend.
// BackendNone yields a nil store, which callers treat as memory-only caching.
func NewSnapshotStore(ctx context.Context, cfg *cfgpkg.CacheConfig) (SnapshotStore, error) {
	switch cfg.Backend {
	case cfgpkg.BackendNone, "":
		return nil, nil
	case cfgpkg.BackendS3:
		client, err := NewS3Client(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating S3 client: %w", err)
		}
		return NewS3SnapshotCache(client, cfg.S3Bucket, cfg.S3Key, cfg.GetTTL(), nil), nil
	case cfgpkg.BackendDynamo:
		client, err := NewDynamoClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating DynamoDB client: %w", err)
		}
		return NewDynamoSnapshotCache(client, cfg.DynamoTable, cfg.GetTTL(), nil), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}
