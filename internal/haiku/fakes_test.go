package haiku

import (
	"errors"
	"strings"

	"github.com/spacesedan/haikuflow/internal/lexicon"
)

type fakeScorer float64

func (f fakeScorer) Compound(string) float64 {
	return float64(f)
}

// fakeTagger splits on whitespace and looks each token up in tags,
// defaulting to "DT".
type fakeTagger struct {
	tags map[string]string
	err  error
}

func (f fakeTagger) Tag(text string) ([]lexicon.TaggedToken, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []lexicon.TaggedToken
	for _, w := range strings.Fields(text) {
		tag, ok := f.tags[w]
		if !ok {
			tag = "DT"
		}
		out = append(out, lexicon.TaggedToken{Text: w, Tag: tag})
	}
	return out, nil
}

var errTagger = errors.New("tagger exploded")

type fakeLexicon struct {
	synsets map[string]*lexicon.Synset
	senses  map[string][]*lexicon.Synset
	lemmas  map[string]string
}

func newFakeLexicon(synsets ...*lexicon.Synset) *fakeLexicon {
	lex := &fakeLexicon{
		synsets: make(map[string]*lexicon.Synset),
		senses:  make(map[string][]*lexicon.Synset),
		lemmas:  make(map[string]string),
	}
	for _, s := range synsets {
		lex.synsets[s.ID] = s
		for _, l := range s.Lemmas {
			key := strings.ToLower(l)
			lex.senses[key] = append(lex.senses[key], s)
		}
	}
	return lex
}

func (f *fakeLexicon) Lemmatize(word string) string {
	if l, ok := f.lemmas[word]; ok {
		return l
	}
	return word
}

func (f *fakeLexicon) Senses(word string) []*lexicon.Synset {
	return f.senses[word]
}

func (f *fakeLexicon) Hypernyms(s *lexicon.Synset) []*lexicon.Synset {
	var out []*lexicon.Synset
	for _, id := range s.HypernymIDs {
		if h, ok := f.synsets[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

type fakeDict map[string][]string

func (f fakeDict) Pronunciations(word string) []string {
	return f[strings.ToLower(word)]
}

func moodLexicon() *fakeLexicon {
	lex := newFakeLexicon(
		&lexicon.Synset{ID: "n.1", Lemmas: []string{"entity"}},
		&lexicon.Synset{ID: "n.2", Lemmas: []string{"state"}, HypernymIDs: []string{"n.1"}},
		&lexicon.Synset{ID: "n.3", Lemmas: []string{"feeling"}, HypernymIDs: []string{"n.2"}},
		&lexicon.Synset{ID: "n.4", Lemmas: []string{"hope"}, HypernymIDs: []string{"n.3"}},
		&lexicon.Synset{ID: "n.5", Lemmas: []string{"joy", "joyousness", "happiness"}, HypernymIDs: []string{"n.3"}},
		&lexicon.Synset{ID: "n.6", Lemmas: []string{"despair", "misery"}, HypernymIDs: []string{"n.3"}},
		&lexicon.Synset{ID: "n.7", Lemmas: []string{"day"}, HypernymIDs: []string{"n.2"}},
		&lexicon.Synset{ID: "n.8", Lemmas: []string{"today"}, HypernymIDs: []string{"n.7"}},
		&lexicon.Synset{ID: "a.20", POS: "a", Lemmas: []string{"hopeful"}},
		&lexicon.Synset{ID: "a.21", POS: "s", Lemmas: []string{"joyful", "elated"}},
		&lexicon.Synset{ID: "a.22", POS: "a", Lemmas: []string{"hopeless", "despairing"}},
		&lexicon.Synset{ID: "a.23", POS: "s", Lemmas: []string{"devastated", "crushed"}},
		&lexicon.Synset{ID: "v.11", Lemmas: []string{"devastate", "lay_waste_to"}, HypernymIDs: []string{"v.12"}},
		&lexicon.Synset{ID: "v.12", Lemmas: []string{"destroy", "ruin"}},
	)
	lex.lemmas["hopes"] = "hope"
	return lex
}

func moodDict() fakeDict {
	return fakeDict{
		"hope":       {"HH OW1 P"},
		"joy":        {"JH OY1"},
		"day":        {"D EY1"},
		"state":      {"S T EY1 T"},
		"crushed":    {"K R AH1 SH T"},
		"ruin":       {"R UW1 IH0 N"},
		"feeling":    {"F IY1 L IH0 NG"},
		"hopeful":    {"HH OW1 P F AH0 L"},
		"joyful":     {"JH OY1 F AH0 L"},
		"today":      {"T AH0 D EY1"},
		"despair":    {"D IH0 S P EH1 R"},
		"hopeless":   {"HH OW1 P L AH0 S"},
		"destroy":    {"D IH0 S T R OY1"},
		"elated":     {"IH0 L EY1 T IH0 D"},
		"entity":     {"EH1 N T AH0 T IY0"},
		"happiness":  {"HH AE1 P IY0 N AH0 S"},
		"misery":     {"M IH1 Z ER0 IY0"},
		"despairing": {"D IH0 S P EH1 R IH0 NG"},
		"devastated": {"D EH1 V AH0 S T EY2 T IH0 D"},
		"devastate":  {"D EH1 V AH0 S T EY2 T"},
	}
}

var moodTags = map[string]string{
	"i":          "PRP",
	"am":         "VBP",
	"feel":       "VBP",
	"and":        "CC",
	"hopeful":    "JJ",
	"joyful":     "JJ",
	"today":      "NN",
	"devastated": "JJ",
	"hopeless":   "JJ",
}
