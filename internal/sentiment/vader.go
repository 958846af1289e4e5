package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Compound scores at or beyond these bounds are polarised; anything between
// them is neutral.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// VaderScorer computes VADER compound polarity scores. The underlying lexicon
// is loaded once and only read afterwards, so a scorer can be shared.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the aggregate polarity of text in [-1, 1]. The text is
// scored exactly as given; emoticons like "</3" are in VADER's lexicon.
func (v *VaderScorer) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}

// Classify maps a compound score onto a sentiment label.
func Classify(compound float64) Label {
	switch {
	case compound >= PositiveThreshold:
		return Positive
	case compound <= NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
