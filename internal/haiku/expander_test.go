package haiku

import (
	"fmt"
	"testing"

	"github.com/spacesedan/haikuflow/internal/lexicon"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	e := NewExpander(moodLexicon())

	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{
			name:  "adjective without hypernyms",
			words: []string{"hopeful"},
			want:  []string{"hopeful"},
		},
		{
			name:  "satellite synonyms",
			words: []string{"joyful"},
			want:  []string{"elated", "joyful"},
		},
		{
			name:  "lemmatized noun climbs to the root",
			words: []string{"hopes"},
			want:  []string{"entity", "feeling", "hope", "state"},
		},
		{
			name:  "mixed case input",
			words: []string{"JOY"},
			want:  []string{"entity", "feeling", "happiness", "joy", "joyousness", "state"},
		},
		{
			name:  "unknown words add nothing",
			words: []string{"blorf", "zzzz"},
			want:  []string{},
		},
		{
			name:  "empty input",
			words: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Expand(tt.words).Words())
		})
	}
}

func TestExpandUnderscoresBecomeSpaces(t *testing.T) {
	e := NewExpander(moodLexicon())

	got := e.Expand([]string{"devastate"})
	assert.True(t, got.Contains("lay waste to"))
	assert.True(t, got.Contains("ruin"))
	assert.False(t, got.Contains("lay_waste_to"))
}

func TestSynonyms(t *testing.T) {
	e := NewExpander(moodLexicon())

	assert.Equal(t, []string{"despairing", "hopeless"}, e.Synonyms("hopeless").Words())
	assert.Zero(t, e.Synonyms("nothing").Len())
}

func hypernymChain(n int) *fakeLexicon {
	synsets := make([]*lexicon.Synset, n)
	for i := range synsets {
		s := &lexicon.Synset{
			ID:     fmt.Sprintf("n.%d", i),
			Lemmas: []string{fmt.Sprintf("level%d", i)},
		}
		if i+1 < n {
			s.HypernymIDs = []string{fmt.Sprintf("n.%d", i+1)}
		}
		synsets[i] = s
	}
	return newFakeLexicon(synsets...)
}

func TestHypernymsDepthBound(t *testing.T) {
	e := NewExpander(hypernymChain(30))

	got := e.Hypernyms("level0", MaxHypernymDepth)
	assert.Equal(t, MaxHypernymDepth, got.Len())
	assert.True(t, got.Contains("level1"))
	assert.True(t, got.Contains("level20"))
	assert.False(t, got.Contains("level21"))
	assert.False(t, got.Contains("level0"))

	assert.Equal(t, []string{"level1", "level2"}, e.Hypernyms("level0", 2).Words())
	assert.Zero(t, e.Hypernyms("level0", 0).Len())
}

func TestExpandStopsAtMaxDepth(t *testing.T) {
	e := NewExpander(hypernymChain(30))

	got := e.Expand([]string{"level0"})
	assert.Equal(t, MaxHypernymDepth+1, got.Len())
	assert.False(t, got.Contains("level21"))
}

func TestHypernymsCycle(t *testing.T) {
	lex := newFakeLexicon(
		&lexicon.Synset{ID: "n.1", Lemmas: []string{"chicken"}, HypernymIDs: []string{"n.2"}},
		&lexicon.Synset{ID: "n.2", Lemmas: []string{"egg"}, HypernymIDs: []string{"n.1"}},
	)
	e := NewExpander(lex)

	assert.Equal(t, []string{"egg"}, e.Hypernyms("chicken", MaxHypernymDepth).Words())
}

func TestHypernymsDiamond(t *testing.T) {
	lex := newFakeLexicon(
		&lexicon.Synset{ID: "n.1", Lemmas: []string{"mule"}, HypernymIDs: []string{"n.2", "n.3"}},
		&lexicon.Synset{ID: "n.2", Lemmas: []string{"horse"}, HypernymIDs: []string{"n.4"}},
		&lexicon.Synset{ID: "n.3", Lemmas: []string{"donkey"}, HypernymIDs: []string{"n.4"}},
		&lexicon.Synset{ID: "n.4", Lemmas: []string{"equine"}},
	)
	e := NewExpander(lex)

	assert.Equal(t, []string{"donkey", "equine", "horse"}, e.Hypernyms("mule", MaxHypernymDepth).Words())
}
