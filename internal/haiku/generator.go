package haiku

import (
	"fmt"
	"log/slog"

	"github.com/spacesedan/haikuflow/internal/lexicon"
	"github.com/spacesedan/haikuflow/internal/sentiment"
)

// Resources bundles the read-only lexical collaborators a Generator needs.
type Resources struct {
	Scorer     PolarityScorer
	Tagger     Tagger
	Lexicon    SenseLexicon
	Pronouncer Pronouncer
}

// Result carries the intermediate products of one generation.
type Result struct {
	Analysis       MoodAnalysis
	VocabularySize int
	BucketSizes    map[int]int
	Poem           string
}

type Option func(*generatorOpts)

type generatorOpts struct {
	rng Rand
}

// WithRand injects the random source used for template and word choices.
func WithRand(rng Rand) Option {
	return func(o *generatorOpts) {
		o.rng = rng
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(NewSeededRand(seed))
}

// Generator turns a mood description into a haiku. It holds no per-call
// state and can serve concurrent callers.
type Generator struct {
	analyzer *Analyzer
	expander *Expander
	bucketer *Bucketer
	composer *Composer
}

func NewGenerator(res Resources, opts ...Option) *Generator {
	o := generatorOpts{rng: DefaultRand}
	for _, apply := range opts {
		apply(&o)
	}

	return &Generator{
		analyzer: NewAnalyzer(res.Scorer, res.Tagger),
		expander: NewExpander(res.Lexicon),
		bucketer: NewBucketer(res.Pronouncer),
		composer: NewComposer(o.rng),
	}
}

// NewGeneratorFromDisk loads WordNet from wordNetDir and the CMU pronouncing
// dictionary from cmuDictPath, and pairs them with the VADER scorer and the
// prose tagger.
func NewGeneratorFromDisk(wordNetDir, cmuDictPath string, opts ...Option) (*Generator, error) {
	wn, err := lexicon.LoadWordNetDir(wordNetDir)
	if err != nil {
		return nil, err
	}

	dict, err := lexicon.LoadCMUDictFile(cmuDictPath)
	if err != nil {
		return nil, err
	}

	slog.Info("[Generator] Lexical resources loaded",
		slog.Int("synsets", wn.Size()),
		slog.Int("pronunciations", dict.Len()))

	return NewGenerator(Resources{
		Scorer:     sentiment.NewVaderScorer(),
		Tagger:     lexicon.NewProseTagger(),
		Lexicon:    wn,
		Pronouncer: dict,
	}, opts...), nil
}

// Process returns the poem for text.
func (g *Generator) Process(text string) (string, error) {
	res, err := g.Generate(text)
	if err != nil {
		return "", err
	}
	return res.Poem, nil
}

// Generate runs analysis, expansion, bucketing and composition once. On an
// InsufficientVocabulary failure the returned Result still carries the
// analysis.
func (g *Generator) Generate(text string) (Result, error) {
	analysis, err := g.analyzer.Analyze(text)
	if err != nil {
		return Result{}, fmt.Errorf("[Generator] analyze mood: %w", err)
	}

	vocab := g.expander.Expand(analysis.EmotionalWords)
	vocab.Add(analysis.EmotionalWords...)

	buckets := g.bucketer.Bucket(vocab.Words())
	sizes := make(map[int]int, len(buckets))
	for n, b := range buckets {
		sizes[n] = b.Len()
	}

	slog.Debug("[Generator] Vocabulary prepared",
		slog.String("sentiment", string(analysis.Sentiment)),
		slog.Float64("intensity", analysis.Intensity),
		slog.Int("emotional_words", len(analysis.EmotionalWords)),
		slog.Int("vocabulary", vocab.Len()),
		slog.Any("buckets", sizes))

	res := Result{
		Analysis:       analysis,
		VocabularySize: vocab.Len(),
		BucketSizes:    sizes,
	}

	poem, err := g.composer.Compose(analysis, buckets)
	if err != nil {
		return res, fmt.Errorf("[Generator] compose haiku: %w", err)
	}

	res.Poem = poem
	return res, nil
}
