package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/haikuflow/config"
	"github.com/spacesedan/haikuflow/internal/clients/kafka_client"
	"github.com/spacesedan/haikuflow/internal/logging"
	"github.com/spacesedan/haikuflow/internal/models"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
	defer kafka_client.CloseProducer()

	sent := publishMoods(ctx, os.Stdin, kafka_client.PublishToKafka)
	slog.Info("Shutting down producer gracefully...", slog.Int("published", sent))
}

// publishMoods sends every non-blank line of in as a MoodRequest and returns
// how many were published.
func publishMoods(ctx context.Context, in io.Reader, publish func(topic, key string, value any) error) int {
	sent := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		req := models.MoodRequest{
			RequestID:   uuid.NewString(),
			Text:        text,
			SubmittedAt: time.Now().UTC(),
		}
		if err := publish(kafka_client.KAFKA_TOPIC_MOOD_REQUESTS, req.RequestID, req); err != nil {
			slog.Error("[Producer] Failed to publish mood request",
				slog.String("request_id", req.RequestID),
				slog.String("error", err.Error()))
			continue
		}
		sent++
	}

	if err := scanner.Err(); err != nil {
		slog.Error("[Producer] Failed to read input", slog.String("error", err.Error()))
	}
	return sent
}
