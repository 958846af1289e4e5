package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/haikuflow/internal/clients/kafka_client"
	kafkautils "github.com/spacesedan/haikuflow/internal/clients/kafka_client/utils"
	"github.com/spacesedan/haikuflow/internal/db"
	"github.com/spacesedan/haikuflow/internal/models"
	"github.com/spacesedan/haikuflow/internal/utils"
)

type insertFunc func(ctx context.Context, results []models.HaikuResult) error

type resultsWorker struct {
	committer committer
	insert    insertFunc
	buffer    *utils.BatchBuffer[models.HaikuResult]
}

// StartResultsConsumer stores batches from haiku-results in DynamoDB.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	w := &resultsWorker{
		committer: kafka_client.NewCommitHandler(ctx, consumer),
		insert:    db.BatchInsertHaikuResults,
		buffer:    utils.NewBatchBuffer[models.HaikuResult](),
	}

	slog.Info("[ResultsConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ResultsConsumer] Stopping consumer...")
			w.flush(context.Background())
			return
		case <-ticker.C:
			w.flush(ctx)
		default:
			msg, err := iterator.Next()
			if err != nil {
				kafkautils.HandleConsumerError(err)
				continue
			}
			if msg == nil {
				continue
			}

			w.handle(msg)
			if w.buffer.Size() >= utils.DYNAMODB_BATCH_SIZE {
				w.flush(ctx)
			}
		}
	}
}

func (w *resultsWorker) handle(msg *kafka.Message) {
	var results []models.HaikuResult
	if err := kafkautils.DeserializeFromJSON(msg.Value, &results); err != nil {
		kafkautils.HandleConsumerError(err)
		if err := w.committer.Commit(msg); err != nil {
			slog.Warn("[ResultsConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
		return
	}

	for _, result := range results {
		kafkautils.TrackMessage(result.RequestID, msg)
		w.buffer.Add(result)
	}
}

func (w *resultsWorker) flush(ctx context.Context) {
	batch := w.buffer.GetAndClear()
	if len(batch) == 0 {
		return
	}
	slog.Info("[ResultsConsumer] Writing results to DynamoDB",
		slog.Int("batch_size", len(batch)))

	var insertErr error
	for i := 0; i < 3; i++ {
		insertErr = w.insert(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Error("[ResultsConsumer] Failed to write results to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	if insertErr != nil {
		slog.Error("[ResultsConsumer] Requeueing unwritten batch",
			slog.Int("batch_size", len(batch)))
		w.buffer.Requeue(batch)
		return
	}

	committed := make(map[*kafka.Message]bool)
	for _, result := range batch {
		msg, found := kafkautils.TakeMessageForRequest(result.RequestID)
		if !found || committed[msg] {
			continue
		}
		committed[msg] = true
		if err := w.committer.Commit(msg); err != nil {
			slog.Warn("[ResultsConsumer] Failed to commit offset",
				slog.String("error", err.Error()))
		}
	}
}
