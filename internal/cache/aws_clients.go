package cache

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// localConfig builds an AWS config for an emulator endpoint such as
// DynamoDB Local or MinIO, with static credentials.
func localConfig(ctx context.Context, endpoint string) (aws.Config, error) {
	log.Debug().Str("endpoint", endpoint).Msg("Using local AWS endpoint")
	return config.LoadDefaultConfig(ctx,
		config.WithRegion("local"),
		config.WithClientLogMode(aws.LogRetries),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
	)
}

// NewDynamoClient creates a new DynamoDB client based on environment
func NewDynamoClient(ctx context.Context) (*dynamodb.Client, error) {
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		cfg, err := localConfig(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		}), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(cfg), nil
}

// NewS3Client creates a new S3 client based on environment
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg, err := localConfig(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		return s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg), nil
}
