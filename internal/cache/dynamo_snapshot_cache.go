package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
	"github.com/windchart/backend-go/internal/models"
)

// DynamoDBClient defines the DynamoDB operations we need
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// SnapshotRecord is the DynamoDB item holding the snapshot. TTL lets the
// table's expiry sweep remove old snapshots.
type SnapshotRecord struct {
	CacheKey string                 `dynamodbav:"cacheKey"`
	Date     int64                  `dynamodbav:"date"`
	Data     []models.StationSeries `dynamodbav:"data"`
	TTL      int64                  `dynamodbav:"ttl"`
}

// DynamoSnapshotCache keeps the snapshot as a single DynamoDB item
type DynamoSnapshotCache struct {
	client    DynamoDBClient
	tableName string
	ttl       time.Duration
	clock     Clock
}

var _ SnapshotStore = (*DynamoSnapshotCache)(nil)

func NewDynamoSnapshotCache(client DynamoDBClient, tableName string, ttl time.Duration, clock Clock) *DynamoSnapshotCache {
	if clock == nil {
		clock = SystemClock{}
	}
	return &DynamoSnapshotCache{
		client:    client,
		tableName: tableName,
		ttl:       ttl,
		clock:     clock,
	}
}

// Load retrieves the snapshot item if present and fresh
func (c *DynamoSnapshotCache) Load(ctx context.Context) (*models.CacheEntry, error) {
	result, err := c.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(c.tableName),
		Key: map[string]types.AttributeValue{
			"cacheKey": &types.AttributeValueMemberS{Value: SnapshotKey},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getting snapshot from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record SnapshotRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot record: %w", err)
	}

	entry := &models.CacheEntry{
		Timestamp: time.UnixMilli(record.Date),
		Data:      record.Data,
	}
	if !entry.IsFresh(c.clock.Now(), c.ttl) {
		log.Debug().Time("date", entry.Timestamp).Msg("DynamoDB snapshot expired")
		return nil, nil
	}

	return entry, nil
}

// Save overwrites the snapshot item
func (c *DynamoSnapshotCache) Save(ctx context.Context, entry *models.CacheEntry) error {
	record := SnapshotRecord{
		CacheKey: SnapshotKey,
		Date:     entry.Timestamp.UnixMilli(),
		Data:     entry.Data,
		TTL:      entry.Timestamp.Add(c.ttl).Unix(),
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling snapshot record: %w", err)
	}

	if _, err := c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("putting snapshot in DynamoDB: %w", err)
	}

	log.Debug().
		Str("table", c.tableName).
		Int("station_count", len(entry.Data)).
		Msg("Saved snapshot to DynamoDB cache")

	return nil
}
