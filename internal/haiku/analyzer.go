package haiku

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/haikuflow/internal/lexicon"
	"github.com/spacesedan/haikuflow/internal/sentiment"
)

// Only the base adjective, noun and verb tags count; inflected forms
// (NNS, VBD, JJR, ...) are left out.
var emotionalTags = map[string]bool{
	"JJ": true,
	"NN": true,
	"VB": true,
}

const minEmotionalWordLen = 3

// MoodAnalysis is the outcome of analysing one mood description.
type MoodAnalysis struct {
	Sentiment      sentiment.Label
	EmotionalWords []string // in order of appearance, duplicates kept
	Intensity      float64  // |compound|, in [0, 1]
}

type PolarityScorer interface {
	Compound(text string) float64
}

type Tagger interface {
	Tag(text string) ([]lexicon.TaggedToken, error)
}

// Analyzer scores the polarity of a mood description and pulls out the
// words most likely to carry its emotion.
type Analyzer struct {
	scorer PolarityScorer
	tagger Tagger
}

func NewAnalyzer(scorer PolarityScorer, tagger Tagger) *Analyzer {
	return &Analyzer{scorer: scorer, tagger: tagger}
}

// Analyze never fails on blank input: it yields a neutral analysis with no
// emotional words. Tagger failures are returned.
func (a *Analyzer) Analyze(text string) (MoodAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return MoodAnalysis{Sentiment: sentiment.Neutral, EmotionalWords: []string{}}, nil
	}

	compound := math.Max(-1, math.Min(1, a.scorer.Compound(text)))

	words, err := a.emotionalWords(text)
	if err != nil {
		return MoodAnalysis{}, err
	}

	return MoodAnalysis{
		Sentiment:      sentiment.Classify(compound),
		EmotionalWords: words,
		Intensity:      math.Abs(compound),
	}, nil
}

func (a *Analyzer) emotionalWords(text string) ([]string, error) {
	tokens, err := a.tagger.Tag(strings.ToLower(text))
	if err != nil {
		return nil, fmt.Errorf("extract emotional words: %w", err)
	}

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if emotionalTags[tok.Tag] && utf8.RuneCountInString(tok.Text) >= minEmotionalWordLen {
			words = append(words, tok.Text)
		}
	}
	return words, nil
}
