package haiku

import (
	"strings"

	"github.com/spacesedan/haikuflow/internal/lexicon"
)

// MaxHypernymDepth bounds how many is-a levels are climbed from each sense.
const MaxHypernymDepth = 20

type SenseLexicon interface {
	Lemmatize(word string) string
	Senses(word string) []*lexicon.Synset
	Hypernyms(sense *lexicon.Synset) []*lexicon.Synset
}

// Expander grows a set of seed words through synonym and hypernym relations.
type Expander struct {
	lex   SenseLexicon
	depth int
}

func NewExpander(lex SenseLexicon) *Expander {
	return &Expander{lex: lex, depth: MaxHypernymDepth}
}

// Expand lemmatizes each word and collects its synonyms and hypernyms. Words
// unknown to the lexicon add nothing; the seeds themselves are only present
// when they are also lemmas of one of their senses.
func (e *Expander) Expand(words []string) Vocabulary {
	vocab := NewVocabulary()
	for _, w := range words {
		lemma := e.lex.Lemmatize(strings.ToLower(w))
		vocab.Union(e.Synonyms(lemma))
		vocab.Union(e.Hypernyms(lemma, e.depth))
	}
	return vocab
}

// Synonyms returns every lemma of every sense of word.
func (e *Expander) Synonyms(word string) Vocabulary {
	vocab := NewVocabulary()
	for _, sense := range e.lex.Senses(word) {
		vocab.Add(sense.Lemmas...)
	}
	return vocab
}

// Hypernyms walks up the is-a hierarchy from each sense of word, one level
// per iteration, for at most depth levels.
func (e *Expander) Hypernyms(word string, depth int) Vocabulary {
	vocab := NewVocabulary()
	for _, sense := range e.lex.Senses(word) {
		visited := map[string]bool{sense.ID: true}
		frontier := e.lex.Hypernyms(sense)

		for level := 0; level < depth && len(frontier) > 0; level++ {
			var next []*lexicon.Synset
			for _, h := range frontier {
				if visited[h.ID] {
					continue
				}
				visited[h.ID] = true
				vocab.Add(h.Lemmas...)
				next = append(next, e.lex.Hypernyms(h)...)
			}
			frontier = next
		}
	}
	return vocab
}
