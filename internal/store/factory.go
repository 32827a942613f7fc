package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"items-api/internal/config"
)

// StoreType identifies a backing-store implementation.
type StoreType string

const (
	StoreTypeDynamoDB StoreType = "dynamodb"
	StoreTypeSQLite   StoreType = "sqlite"
	StoreTypeMemory   StoreType = "memory"
)

// New creates an ItemStore from configuration. DynamoDB is the deployment
// store; sqlite serves local development and memory serves tests.
func New(ctx context.Context, cfg *config.Config) (ItemStore, error) {
	switch StoreType(strings.ToLower(cfg.Store.Type)) {
	case StoreTypeDynamoDB:
		return newDynamoFromConfig(ctx, cfg)
	case StoreTypeSQLite:
		return NewSQLiteStore(cfg.Store.Path, cfg.Store.TableName)
	case StoreTypeMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Store.Type)
	}
}

func newDynamoFromConfig(ctx context.Context, cfg *config.Config) (*DynamoStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWS.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		// Endpoint override for DynamoDB Local.
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	return NewDynamoStore(client, cfg.Store.TableName), nil
}
