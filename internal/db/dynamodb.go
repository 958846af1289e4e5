package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/haikuflow/internal/clients"
	"github.com/spacesedan/haikuflow/internal/models"
)

const (
	HAIKU_RESULTS_TABLE_NAME = "HaikuResults"
	HAIKU_RESULTS_TTL        = 24 * time.Hour

	maxBatchSize          = 25
	maxUnprocessedRetries = 3
)

// BatchWriter is the part of *dynamodb.Client the result store uses.
type BatchWriter interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// ErrUnprocessedItems means DynamoDB kept rejecting part of a batch.
var ErrUnprocessedItems = errors.New("[DynamoDB] unprocessed items remain")

var (
	dbClient           BatchWriter
	unprocessedBackoff = 500 * time.Millisecond
)

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// BatchInsertHaikuResults writes results in chunks of 25, retrying unprocessed
// items with exponential backoff. Items still unprocessed after the retries
// make it return an error so the caller keeps the batch.
func BatchInsertHaikuResults(ctx context.Context, results []models.HaikuResult) error {
	if dbClient == nil {
		InitDynamoDB()
	}

	now := time.Now()
	for i := 0; i < len(results); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := min(i+maxBatchSize, len(results))

		writeRequests := make([]types.WriteRequest, 0, end-i)
		for _, result := range results[i:end] {
			item, err := ResultToDynamoDBItem(result, now)
			if err != nil {
				return err
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		if err := writeBatch(ctx, writeRequests); err != nil {
			return err
		}
	}

	slog.Info("[DynamoDB] Successfully stored haiku results",
		slog.Int("count", len(results)))
	return nil
}

func writeBatch(ctx context.Context, writeRequests []types.WriteRequest) error {
	out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{
			HAIKU_RESULTS_TABLE_NAME: writeRequests,
		},
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to batch write haiku results: %w", err)
	}

	retryCount := 0
	backoff := unprocessedBackoff
	for len(out.UnprocessedItems) > 0 && retryCount < maxUnprocessedRetries {
		time.Sleep(backoff)
		backoff *= 2

		slog.Warn("[DynamoDB] Retrying unprocessed haiku results...",
			slog.Int("attempt", retryCount+1),
			slog.Int("remaining", len(out.UnprocessedItems[HAIKU_RESULTS_TABLE_NAME])))

		out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: out.UnprocessedItems,
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Retry error: %w", err)
		}
		retryCount++
	}

	if remaining := len(out.UnprocessedItems[HAIKU_RESULTS_TABLE_NAME]); remaining > 0 {
		return fmt.Errorf("%w: %d haiku results after %d retries", ErrUnprocessedItems, remaining, retryCount)
	}
	return nil
}

// ResultToDynamoDBItem marshals result and adds the ttl attribute. A zero
// CreatedAt is replaced by now.
func ResultToDynamoDBItem(result models.HaikuResult, now time.Time) (map[string]types.AttributeValue, error) {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = now
	}

	item, err := attributevalue.MarshalMap(result)
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] Failed to marshal haiku result %s: %w", result.RequestID, err)
	}

	item["ttl"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", now.Add(HAIKU_RESULTS_TTL).Unix())}
	return item, nil
}
