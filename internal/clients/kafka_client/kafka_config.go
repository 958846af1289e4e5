package kafka_client

import "github.com/spacesedan/haikuflow/config"

type KafkaConfig struct {
	Broker          string
	GroupID         string
	Topic           string
	TransactionalID string
}

func GetKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Broker:          config.GetEnv("KAFKA_BROKER", "localhost:29092"),
		GroupID:         config.GetEnv("KAFKA_CONSUMER_GROUP_ID", "haikuflow-consumer-group"),
		Topic:           config.GetEnv("KAFKA_CONSUMER_TOPIC", KAFKA_TOPIC_MOOD_REQUESTS),
		TransactionalID: config.GetEnv("KAFKA_TRANSACTIONAL_ID", "haikuflow-producer-1"),
	}
}
