package lexicon

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWordNet(t *testing.T) {
	wn := loadFixture(t)
	assert.Equal(t, 16, wn.Size())
}

func TestSenses(t *testing.T) {
	wn := loadFixture(t)

	tests := []struct {
		name string
		word string
		want []string
	}{
		{"noun before verb", "hope", []string{"n.00000004", "v.00000013"}},
		{"plural and third person", "hopes", []string{"n.00000004", "v.00000013"}},
		{"verb exception list", "felt", []string{"v.00000010"}},
		{"verb past tense rule", "devastated", []string{"v.00000011"}},
		{"multi-word lemma", "Lay waste to", []string{"v.00000011"}},
		{"satellite folded into adjective", "joyful", []string{"a.00000021"}},
		{"case insensitive", "SORROW", []string{"n.00000006"}},
		{"unknown word", "zzzz", []string{}},
		{"blank", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, synsetIDs(wn.Senses(tt.word)))
		})
	}
}

func TestSynsetLemmas(t *testing.T) {
	wn := loadFixture(t)

	joy := wn.Senses("joy")
	require.Len(t, joy, 1)
	assert.Equal(t, []string{"joy", "joyousness", "joyfulness"}, joy[0].Lemmas)

	hopeful := wn.Senses("hopeful")
	require.Len(t, hopeful, 1)
	assert.Equal(t, []string{"hopeful"}, hopeful[0].Lemmas, "syntactic marker is stripped")

	joyful := wn.Senses("elated")
	require.Len(t, joyful, 1)
	assert.Equal(t, Satellite, joyful[0].POS)
}

func TestHypernyms(t *testing.T) {
	wn := loadFixture(t)

	hope := wn.Senses("hope")[0]
	parents := wn.Hypernyms(hope)
	require.Len(t, parents, 1)
	assert.Equal(t, []string{"feeling"}, parents[0].Lemmas)

	entity := wn.Senses("entity")[0]
	assert.Empty(t, wn.Hypernyms(entity))

	eden := wn.Senses("eden")[0]
	assert.Empty(t, wn.Hypernyms(eden), "instance hypernyms are not followed")

	assert.Nil(t, wn.Hypernyms(nil))
}

func TestLemmatize(t *testing.T) {
	wn := loadFixture(t)

	tests := []struct {
		word string
		want string
	}{
		{"hopes", "hope"},
		{"joy", "joy"},
		{"Sorrows", "sorrow"},
		{"devastated", "devastated"},
		{"unknownness", "unknownness"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, wn.Lemmatize(tt.word))
		})
	}
}

func TestLoadWordNetErrors(t *testing.T) {
	t.Run("missing data file", func(t *testing.T) {
		fixture := wordNetFixture()
		delete(fixture, "data.verb")

		_, err := LoadWordNet(fixture)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("missing exception file is fine", func(t *testing.T) {
		fixture := wordNetFixture()
		delete(fixture, "verb.exc")

		wn, err := LoadWordNet(fixture)
		require.NoError(t, err)
		assert.Empty(t, wn.Senses("felt"))
	})

	t.Run("malformed data line", func(t *testing.T) {
		fixture := wordNetFixture()
		fixture["data.adv"] = &fstest.MapFile{Data: []byte("00000030 02 r 03 only 0 000 | truncated\n")}

		_, err := LoadWordNet(fixture)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data.adv line 1")
	})

	t.Run("malformed index line", func(t *testing.T) {
		fixture := wordNetFixture()
		fixture["index.adv"] = &fstest.MapFile{Data: []byte("quickly r 2 0 2 0 00000031\n")}

		_, err := LoadWordNet(fixture)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index.adv line 1")
	})
}
