package haiku

import "github.com/spacesedan/haikuflow/internal/lexicon"

// Template slots only ever ask for these word lengths.
var bucketSizes = []int{1, 2, 3}

type Pronouncer interface {
	Pronunciations(word string) []string
}

// SyllableBuckets groups a vocabulary by syllable count. Only the keys in
// bucketSizes are present.
type SyllableBuckets map[int]Vocabulary

// Bucketer sorts words by syllable count using a pronouncing dictionary.
type Bucketer struct {
	dict Pronouncer
}

func NewBucketer(dict Pronouncer) *Bucketer {
	return &Bucketer{dict: dict}
}

// Bucket drops words without a pronunciation and words whose length no
// template slot can use.
func (b *Bucketer) Bucket(words []string) SyllableBuckets {
	buckets := make(SyllableBuckets, len(bucketSizes))
	for _, n := range bucketSizes {
		buckets[n] = NewVocabulary()
	}

	for _, w := range words {
		n, ok := b.SyllableCount(w)
		if !ok {
			continue
		}
		if bucket, ok := buckets[n]; ok {
			bucket.Add(w)
		}
	}
	return buckets
}

// SyllableCount uses the first transcription the dictionary lists for word.
func (b *Bucketer) SyllableCount(word string) (int, bool) {
	prons := b.dict.Pronunciations(word)
	if len(prons) == 0 {
		return 0, false
	}
	return lexicon.SyllableCount(prons[0]), true
}
