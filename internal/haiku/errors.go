package haiku

import (
	"errors"
	"fmt"

	"github.com/spacesedan/haikuflow/internal/sentiment"
)

// ErrInsufficientVocabulary is matched by every error Compose returns for an
// empty syllable bucket.
var ErrInsufficientVocabulary = errors.New("insufficient vocabulary")

// InsufficientVocabularyError names the slot that could not be filled.
type InsufficientVocabularyError struct {
	Sentiment sentiment.Label
	Line      int // 1-based
	Syllables int
}

func (e *InsufficientVocabularyError) Error() string {
	return fmt.Sprintf("insufficient vocabulary: %s line %d needs a %d-syllable word",
		e.Sentiment, e.Line, e.Syllables)
}

func (e *InsufficientVocabularyError) Unwrap() error {
	return ErrInsufficientVocabulary
}
