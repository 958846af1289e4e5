package kafka_client

import "time"

const (
	KAFKA_TOPIC_MOOD_REQUESTS = "mood-requests" // one mood description per message
	KAFKA_TOPIC_HAIKU_RESULTS = "haiku-results" // batched haiku results
)

const (
	MAX_RETRIES  = 5
	RETRY_DELAY  = 2 * time.Second
	POLL_TIMEOUT = 1 * time.Second
)

// retryDelay is RETRY_DELAY; tests shorten it.
var retryDelay = RETRY_DELAY
