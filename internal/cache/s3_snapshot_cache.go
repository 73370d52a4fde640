package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/windchart/backend-go/internal/models"
)

// S3Client defines the interface for S3 operations we need
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3SnapshotCache keeps the snapshot document as a single S3 object
type S3SnapshotCache struct {
	client     S3Client
	bucketName string
	key        string
	ttl        time.Duration
	clock      Clock
}

var _ SnapshotStore = (*S3SnapshotCache)(nil)

func NewS3SnapshotCache(client S3Client, bucketName, key string, ttl time.Duration, clock Clock) *S3SnapshotCache {
	if key == "" {
		key = SnapshotKey + ".json"
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &S3SnapshotCache{
		client:     client,
		bucketName: bucketName,
		key:        key,
		ttl:        ttl,
		clock:      clock,
	}
}

// Load retrieves the snapshot if the object exists and is still fresh
func (c *S3SnapshotCache) Load(ctx context.Context) (*models.CacheEntry, error) {
	if c.bucketName == "" {
		return nil, fmt.Errorf("empty bucket name")
	}

	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.key),
	})
	if err != nil {
		// Missing object is a plain miss
		log.Debug().Err(err).Str("key", c.key).Msg("Snapshot object not available")
		return nil, nil
	}
	if result.Body == nil {
		return nil, nil
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Error().Err(err).Msg("Error closing S3 object body")
		}
	}(result.Body)

	var doc SnapshotDocument
	if err := json.NewDecoder(result.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding snapshot document: %w", err)
	}

	entry := doc.Entry()
	if !entry.IsFresh(c.clock.Now(), c.ttl) {
		log.Debug().Time("date", entry.Timestamp).Msg("S3 snapshot expired")
		return nil, nil
	}

	return entry, nil
}

// Save overwrites the snapshot object
func (c *S3SnapshotCache) Save(ctx context.Context, entry *models.CacheEntry) error {
	if c.bucketName == "" {
		return fmt.Errorf("empty bucket name")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(NewSnapshotDocument(entry)); err != nil {
		return fmt.Errorf("encoding snapshot document: %w", err)
	}

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(c.key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("saving to S3: %w", err)
	}

	log.Debug().Int("station_count", len(entry.Data)).Msg("Saved snapshot to S3 cache")
	return nil
}
