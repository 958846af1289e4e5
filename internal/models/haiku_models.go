package models

import "time"

// MoodRequest is the payload on the mood-requests topic.
type MoodRequest struct {
	RequestID   string    `json:"request_id"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type HaikuStatus string

const (
	HaikuStatusOK                     HaikuStatus = "ok"
	HaikuStatusInsufficientVocabulary HaikuStatus = "insufficient_vocabulary"
	HaikuStatusFailed                 HaikuStatus = "failed"
)

// HaikuResult is published to haiku-results and stored in DynamoDB.
type HaikuResult struct {
	RequestID      string      `json:"request_id" dynamodbav:"request_id"`
	Text           string      `json:"text" dynamodbav:"text"`
	Sentiment      string      `json:"sentiment" dynamodbav:"sentiment"`
	Intensity      float64     `json:"intensity" dynamodbav:"intensity"`
	EmotionalWords []string    `json:"emotional_words" dynamodbav:"emotional_words,omitempty"`
	Poem           string      `json:"poem,omitempty" dynamodbav:"poem,omitempty"`
	Status         HaikuStatus `json:"status" dynamodbav:"status"`
	Error          string      `json:"error,omitempty" dynamodbav:"error,omitempty"`
	CreatedAt      time.Time   `json:"created_at" dynamodbav:"created_at,unixtime"`
}
