package lexicon

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// A TaggedToken is a token paired with its Penn Treebank part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// ProseTagger tokenizes and tags text with prose's averaged perceptron model.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Tag splits text into tokens and tags each of them. Sentence segmentation and
// named-entity extraction are skipped.
func (t *ProseTagger) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("[Tagger] failed to tag text: %w", err)
	}

	tokens := doc.Tokens()
	tagged := make([]TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return tagged, nil
}
