package haiku

import (
	"sort"
	"strings"
)

// Vocabulary is a set of lower-cased word forms. Multi-word forms use
// spaces, never underscores.
type Vocabulary map[string]struct{}

func NewVocabulary(words ...string) Vocabulary {
	v := make(Vocabulary, len(words))
	v.Add(words...)
	return v
}

func (v Vocabulary) Add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(w, "_", " ")))
		if w != "" {
			v[w] = struct{}{}
		}
	}
}

func (v Vocabulary) Union(other Vocabulary) {
	for w := range other {
		v[w] = struct{}{}
	}
}

func (v Vocabulary) Contains(word string) bool {
	_, ok := v[word]
	return ok
}

func (v Vocabulary) Len() int {
	return len(v)
}

// Words returns the set sorted, so seeded draws are reproducible.
func (v Vocabulary) Words() []string {
	words := make([]string, 0, len(v))
	for w := range v {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
