package consumers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"
	"github.com/spacesedan/haikuflow/internal/clients/kafka_client"
	kafkautils "github.com/spacesedan/haikuflow/internal/clients/kafka_client/utils"
	"github.com/spacesedan/haikuflow/internal/haiku"
	"github.com/spacesedan/haikuflow/internal/models"
	"github.com/spacesedan/haikuflow/internal/utils"
)

type HaikuGenerator interface {
	Generate(text string) (haiku.Result, error)
}

// ProcessedStore remembers which requests already produced a result.
type ProcessedStore interface {
	IsRequestProcessed(ctx context.Context, requestID string) bool
	MarkProcessed(ctx context.Context, requestID string) error
}

type committer interface {
	Commit(msg *kafka.Message) error
}

type publishFunc func(topic, key string, value any) error

type moodRequestWorker struct {
	generator HaikuGenerator
	store     ProcessedStore
	committer committer
	publish   publishFunc
	buffer    *utils.BatchBuffer[models.HaikuResult]
}

// StartMoodRequestConsumer turns each mood request into a HaikuResult and
// publishes the results in batches to haiku-results. Offsets are committed
// and requests marked processed only after their batch was published.
func StartMoodRequestConsumer(gen HaikuGenerator, store ProcessedStore) kafka_client.ConsumerFunc {
	return func(ctx context.Context, consumer *kafka.Consumer) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		w := &moodRequestWorker{
			generator: gen,
			store:     store,
			committer: kafka_client.NewCommitHandler(ctx, consumer),
			publish:   kafka_client.PublishToKafka,
			buffer:    utils.NewBatchBuffer[models.HaikuResult](),
		}

		slog.Info("[MoodRequestConsumer] Listening for messages...")

		ticker := time.NewTicker(utils.BATCH_TIMEOUT)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[MoodRequestConsumer] Stopping consumer...")
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

				w.handle(ctx, msg)
				if w.buffer.Size() >= utils.BATCH_SIZE {
					w.flush(ctx)
				}
			}
		}
	}
}

func (w *moodRequestWorker) handle(ctx context.Context, msg *kafka.Message) {
	var req models.MoodRequest
	if err := kafkautils.DeserializeFromJSON(msg.Value, &req); err != nil {
		slog.Warn("[MoodRequestConsumer] Skipping malformed request",
			slog.String("error", err.Error()))
		w.commit(msg)
		return
	}
	if req.RequestID == "" {
		req.RequestID = string(msg.Key)
	}

	if w.store.IsRequestProcessed(ctx, req.RequestID) {
		slog.Debug("[MoodRequestConsumer] Request already processed",
			slog.String("request_id", req.RequestID))
		w.commit(msg)
		return
	}

	result := BuildHaikuResult(w.generator, req, time.Now())
	kafkautils.TrackMessage(req.RequestID, msg)
	w.buffer.Add(result)
}

func (w *moodRequestWorker) flush(ctx context.Context) {
	batch := w.buffer.GetAndClear()
	if len(batch) == 0 {
		return
	}
	slog.Info("[MoodRequestConsumer] Flushing results batch to Kafka",
		slog.Int("batch_size", len(batch)))

	var err error
	for i := 0; i < 3; i++ {
		err = w.publish(kafka_client.KAFKA_TOPIC_HAIKU_RESULTS, uuid.NewString(), batch)
		if err == nil {
			break
		}
		slog.Warn("[MoodRequestConsumer] Batch publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
	}
	if err != nil {
		slog.Error("[MoodRequestConsumer] Requeueing unpublished batch",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
		w.buffer.Requeue(batch)
		return
	}

	for _, result := range batch {
		msg, found := kafkautils.TakeMessageForRequest(result.RequestID)
		if !found {
			continue
		}
		w.commit(msg)
		if markErr := w.store.MarkProcessed(ctx, result.RequestID); markErr != nil {
			slog.Warn("[MoodRequestConsumer] Failed to mark request processed",
				slog.String("request_id", result.RequestID),
				slog.String("error", markErr.Error()))
		}
	}
}

func (w *moodRequestWorker) commit(msg *kafka.Message) {
	if err := w.committer.Commit(msg); err != nil {
		slog.Warn("[MoodRequestConsumer] Failed to commit offset",
			slog.String("error", err.Error()))
	}
}

// BuildHaikuResult runs one generation and records its outcome. Generation
// failures become result statuses rather than errors.
func BuildHaikuResult(gen HaikuGenerator, req models.MoodRequest, now time.Time) models.HaikuResult {
	res, err := gen.Generate(req.Text)

	result := models.HaikuResult{
		RequestID:      req.RequestID,
		Text:           req.Text,
		Sentiment:      string(res.Analysis.Sentiment),
		Intensity:      res.Analysis.Intensity,
		EmotionalWords: res.Analysis.EmotionalWords,
		CreatedAt:      now,
	}

	switch {
	case err == nil:
		result.Status = models.HaikuStatusOK
		result.Poem = res.Poem
	case errors.Is(err, haiku.ErrInsufficientVocabulary):
		result.Status = models.HaikuStatusInsufficientVocabulary
		result.Error = err.Error()
	default:
		slog.Error("[MoodRequestConsumer] Haiku generation failed",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()))
		result.Status = models.HaikuStatusFailed
		result.Error = err.Error()
	}

	return result
}
