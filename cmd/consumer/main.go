package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/haikuflow/config"
	"github.com/spacesedan/haikuflow/internal/clients"
	"github.com/spacesedan/haikuflow/internal/clients/kafka_client"
	"github.com/spacesedan/haikuflow/internal/consumers"
	"github.com/spacesedan/haikuflow/internal/db"
	"github.com/spacesedan/haikuflow/internal/haiku"
	"github.com/spacesedan/haikuflow/internal/logging"
)

func main() {
	config.LoadEnv(config.AppEnv())
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg := kafka_client.GetKafkaConfig()

	switch cfg.Topic {
	case kafka_client.KAFKA_TOPIC_MOOD_REQUESTS:
		haikuCfg := config.GetHaikuConfig()
		var opts []haiku.Option
		if haikuCfg.Seed != nil {
			opts = append(opts, haiku.WithSeed(*haikuCfg.Seed))
		}

		gen, err := haiku.NewGeneratorFromDisk(haikuCfg.WordNetDir, haikuCfg.CMUDictPath, opts...)
		if err != nil {
			slog.Error("[Main] Failed to load lexical resources", slog.String("error", err.Error()))
			os.Exit(1)
		}

		for {
			err := kafka_client.InitProducer(cfg)
			if err == nil {
				break
			}

			slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
			time.Sleep(5 * time.Second)
		}
		defer kafka_client.CloseProducer()

		store := clients.InitValkey()
		defer clients.CloseValkey()

		kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_MOOD_REQUESTS,
			consumers.StartMoodRequestConsumer(gen, store))

	case kafka_client.KAFKA_TOPIC_HAIKU_RESULTS:
		db.InitDynamoDB()
		kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_HAIKU_RESULTS, consumers.StartResultsConsumer)
	}

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
