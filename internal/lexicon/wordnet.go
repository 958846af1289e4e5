package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Part-of-speech markers used by the WordNet database files.
const (
	Noun      = "n"
	Verb      = "v"
	Adjective = "a"
	Satellite = "s"
	Adverb    = "r"
)

const hypernymPointer = "@"

// posOrder is the order senses are returned in by Senses.
var posOrder = []string{Noun, Verb, Adjective, Adverb}

var posFileNames = map[string]string{
	Noun:      "noun",
	Verb:      "verb",
	Adjective: "adj",
	Adverb:    "adv",
}

// A Synset is one sense of a word: the set of interchangeable lemmas that
// share a meaning.
type Synset struct {
	ID          string   // "<pos>.<offset>", satellites folded into the adjective pos
	POS         string   // ss_type as written in the data file
	Lemmas      []string // lemma names in file order, underscores kept
	HypernymIDs []string // targets of "@" pointers in file order
}

// WordNet is a read-only, in-memory view of a WordNet 3.0 database
// directory. It is safe for concurrent use once loaded.
type WordNet struct {
	index      map[string]map[string][]string // pos -> lemma -> synset ids
	synsets    map[string]*Synset
	exceptions map[string]map[string][]string // pos -> inflected form -> base forms
}

// LoadWordNetDir loads the database found in dir (the "dict" directory of a
// WordNet distribution).
func LoadWordNetDir(dir string) (*WordNet, error) {
	wn, err := LoadWordNet(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("[WordNet] failed to load %s: %w", dir, err)
	}
	return wn, nil
}

// LoadWordNet reads index.*, data.* and *.exc files for every part of speech
// from fsys. Exception lists are optional; index and data files are not.
func LoadWordNet(fsys fs.FS) (*WordNet, error) {
	wn := &WordNet{
		index:      make(map[string]map[string][]string, len(posOrder)),
		synsets:    make(map[string]*Synset),
		exceptions: make(map[string]map[string][]string, len(posOrder)),
	}

	for _, pos := range posOrder {
		name := posFileNames[pos]

		idx, err := readLines(fsys, "index."+name, parseIndexLine)
		if err != nil {
			return nil, err
		}
		wn.index[pos] = make(map[string][]string, len(idx))
		for _, entry := range idx {
			wn.index[pos][entry.lemma] = entry.ids
		}

		synsets, err := readLines(fsys, "data."+name, parseDataLine)
		if err != nil {
			return nil, err
		}
		for _, s := range synsets {
			wn.synsets[s.ID] = s
		}

		exc, err := readLines(fsys, name+".exc", parseExceptionLine)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		wn.exceptions[pos] = make(map[string][]string, len(exc))
		for _, e := range exc {
			wn.exceptions[pos][e.form] = e.bases
		}
	}

	slog.Debug("[WordNet] Loaded database",
		slog.Int("synsets", len(wn.synsets)),
		slog.Int("nouns", len(wn.index[Noun])),
		slog.Int("verbs", len(wn.index[Verb])))

	return wn, nil
}

// Senses returns every synset of word across all parts of speech, nouns
// first, then verbs, adjectives and adverbs. Inflected forms are reduced with
// the same morphological rules WordNet's morphy uses.
func (wn *WordNet) Senses(word string) []*Synset {
	form := normalizeForm(word)
	if form == "" {
		return nil
	}

	var senses []*Synset
	seen := make(map[string]bool)
	for _, pos := range posOrder {
		for _, base := range wn.morphy(form, pos) {
			for _, id := range wn.index[pos][base] {
				s, ok := wn.synsets[id]
				if !ok || seen[id] {
					continue
				}
				seen[id] = true
				senses = append(senses, s)
			}
		}
	}
	return senses
}

// Hypernyms returns the synsets one is-a level above s. Instance hypernyms
// are not followed.
func (wn *WordNet) Hypernyms(s *Synset) []*Synset {
	if s == nil {
		return nil
	}
	out := make([]*Synset, 0, len(s.HypernymIDs))
	for _, id := range s.HypernymIDs {
		if h, ok := wn.synsets[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

// Lemmatize reduces word to its noun base form. The shortest candidate wins;
// a word with no candidate is returned lower-cased but otherwise unchanged.
func (wn *WordNet) Lemmatize(word string) string {
	form := normalizeForm(word)
	lemmas := wn.morphy(form, Noun)
	if len(lemmas) == 0 {
		return form
	}
	best := lemmas[0]
	for _, l := range lemmas[1:] {
		if len(l) < len(best) {
			best = l
		}
	}
	return best
}

// Size reports the number of synsets loaded.
func (wn *WordNet) Size() int {
	return len(wn.synsets)
}

func normalizeForm(word string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(word)), " ", "_")
}

func synsetID(pos, offset string) string {
	if pos == Satellite {
		pos = Adjective
	}
	return pos + "." + offset
}

type indexEntry struct {
	lemma string
	ids   []string
}

// lemma pos synset_cnt p_cnt [ptr_symbol...] sense_cnt tagsense_cnt synset_offset...
func parseIndexLine(line string) (indexEntry, error) {
	f := strings.Fields(line)
	if len(f) < 4 {
		return indexEntry{}, fmt.Errorf("too few fields")
	}
	synsetCnt, err := strconv.Atoi(f[2])
	if err != nil {
		return indexEntry{}, fmt.Errorf("synset count: %w", err)
	}
	ptrCnt, err := strconv.Atoi(f[3])
	if err != nil {
		return indexEntry{}, fmt.Errorf("pointer count: %w", err)
	}

	start := 4 + ptrCnt + 2
	if len(f) < start+synsetCnt {
		return indexEntry{}, fmt.Errorf("expected %d offsets", synsetCnt)
	}

	entry := indexEntry{lemma: f[0], ids: make([]string, 0, synsetCnt)}
	for _, offset := range f[start : start+synsetCnt] {
		entry.ids = append(entry.ids, synsetID(f[1], offset))
	}
	return entry, nil
}

// offset lex_filenum ss_type w_cnt [word lex_id...] p_cnt [ptr...] [frames] | gloss
func parseDataLine(line string) (*Synset, error) {
	head, _, _ := strings.Cut(line, "|")
	f := strings.Fields(head)
	if len(f) < 4 {
		return nil, fmt.Errorf("too few fields")
	}

	wordCnt, err := strconv.ParseInt(f[3], 16, 0)
	if err != nil {
		return nil, fmt.Errorf("word count: %w", err)
	}

	s := &Synset{
		ID:     synsetID(f[2], f[0]),
		POS:    f[2],
		Lemmas: make([]string, 0, wordCnt),
	}

	i := 4
	for j := 0; j < int(wordCnt); j++ {
		if i+1 >= len(f) {
			return nil, fmt.Errorf("expected %d words", wordCnt)
		}
		s.Lemmas = append(s.Lemmas, stripSyntacticMarker(f[i]))
		i += 2
	}

	if i >= len(f) {
		return nil, fmt.Errorf("missing pointer count")
	}
	ptrCnt, err := strconv.Atoi(f[i])
	if err != nil {
		return nil, fmt.Errorf("pointer count: %w", err)
	}
	i++

	for j := 0; j < ptrCnt; j++ {
		if i+3 >= len(f) {
			return nil, fmt.Errorf("expected %d pointers", ptrCnt)
		}
		if f[i] == hypernymPointer {
			s.HypernymIDs = append(s.HypernymIDs, synsetID(f[i+2], f[i+1]))
		}
		i += 4
	}

	return s, nil
}

// Adjectives may carry "(a)", "(p)" or "(ip)" after the lemma.
func stripSyntacticMarker(word string) string {
	if !strings.HasSuffix(word, ")") {
		return word
	}
	if i := strings.LastIndexByte(word, '('); i > 0 {
		return word[:i]
	}
	return word
}

type exceptionEntry struct {
	form  string
	bases []string
}

func parseExceptionLine(line string) (exceptionEntry, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return exceptionEntry{}, fmt.Errorf("expected inflected form and base form")
	}
	return exceptionEntry{form: f[0], bases: f[1:]}, nil
}

// readLines parses every non-blank line of name with parse. Lines starting
// with a space belong to the license header and are skipped.
func readLines[T any](fsys fs.FS, name string, parse func(string) (T, error)) ([]T, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("[WordNet] open %s: %w", name, err)
	}
	defer file.Close()

	var out []T
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, " ") {
			continue
		}
		v, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("[WordNet] %s line %d: %w", name, lineNo, err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("[WordNet] read %s: %w", name, err)
	}
	return out, nil
}
