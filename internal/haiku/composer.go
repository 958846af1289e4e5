package haiku

import "strings"

// Composer fills a sentiment's template with words from syllable buckets.
type Composer struct {
	rng Rand
}

// NewComposer uses DefaultRand when rng is nil.
func NewComposer(rng Rand) *Composer {
	if rng == nil {
		rng = DefaultRand
	}
	return &Composer{rng: rng}
}

// Compose renders three newline-separated lines. Alternatives and slot words
// are picked uniformly, slot words with replacement. An empty bucket needed
// by a slot yields an *InsufficientVocabularyError.
func (c *Composer) Compose(analysis MoodAnalysis, buckets SyllableBuckets) (string, error) {
	tmpl := TemplateFor(analysis.Sentiment)
	pools := make(map[int][]string)

	lines := make([]string, 0, len(tmpl.Lines))
	for i, line := range tmpl.Lines {
		parts := make([]string, 0, len(line))
		for _, p := range line {
			if !p.IsSlot() {
				parts = append(parts, c.pick(p.Options()))
				continue
			}

			n := p.Syllables()
			pool, ok := pools[n]
			if !ok {
				pool = buckets[n].Words()
				pools[n] = pool
			}
			if len(pool) == 0 {
				return "", &InsufficientVocabularyError{
					Sentiment: tmpl.Sentiment,
					Line:      i + 1,
					Syllables: n,
				}
			}
			parts = append(parts, c.pick(pool))
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	return strings.Join(lines, "\n"), nil
}

// pick draws from the rng only when there is a choice to make.
func (c *Composer) pick(options []string) string {
	if len(options) == 1 {
		return options[0]
	}
	return options[c.rng.IntN(len(options))]
}
