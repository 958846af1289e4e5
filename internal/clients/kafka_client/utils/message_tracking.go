package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var messageMap sync.Map

// TrackMessage remembers which message carried requestID until its result
// has been handed on and the offset can be committed.
func TrackMessage(requestID string, msg *kafka.Message) {
	messageMap.Store(requestID, msg)
}

// TakeMessageForRequest returns and forgets the message tracked for requestID.
func TakeMessageForRequest(requestID string) (*kafka.Message, bool) {
	msg, ok := messageMap.LoadAndDelete(requestID)
	if !ok {
		return nil, false
	}
	return msg.(*kafka.Message), true
}
