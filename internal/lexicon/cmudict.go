package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

var variantRE = regexp.MustCompile(`^(.+)\((\d+)\)$`)

// CMUDict maps lower-cased words to their ARPAbet transcriptions, in the
// order the dictionary lists them.
type CMUDict struct {
	entries map[string][]string
}

// LoadCMUDictFile opens and parses a CMU pronouncing dictionary file.
func LoadCMUDictFile(path string) (*CMUDict, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("[CMUDict] open %s: %w", path, err)
	}
	defer file.Close()

	return LoadCMUDict(file)
}

// LoadCMUDict parses both the cmudict-0.7b layout ("WORD  PH PH", ";;;"
// comments, "WORD(1)" variants) and the cmudict.dict layout ("word ph ph",
// "word(2)" variants, "#" comments).
func LoadCMUDict(r io.Reader) (*CMUDict, error) {
	d := &CMUDict{entries: make(map[string][]string)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, " #"); i >= 0 {
			line = line[:i]
		}

		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("[CMUDict] line %d: missing transcription for %q", lineNo, f[0])
		}
		word, phones := f[0], strings.Join(f[1:], " ")

		if m := variantRE.FindStringSubmatch(word); m != nil {
			word = m[1]
		}
		word = strings.ToLower(word)
		d.entries[word] = append(d.entries[word], phones)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("[CMUDict] read: %w", err)
	}

	slog.Debug("[CMUDict] Loaded pronunciations", slog.Int("words", len(d.entries)))
	return d, nil
}

// Pronunciations returns every transcription of word, first listed first.
func (d *CMUDict) Pronunciations(word string) []string {
	return d.entries[strings.ToLower(word)]
}

// Len reports the number of distinct words in the dictionary.
func (d *CMUDict) Len() int {
	return len(d.entries)
}

// SyllableCount counts the vowel nuclei of an ARPAbet transcription, i.e. the
// phonemes carrying a stress digit.
func SyllableCount(phones string) int {
	n := 0
	for _, ph := range strings.Fields(phones) {
		last := ph[len(ph)-1]
		if last >= '0' && last <= '9' {
			n++
		}
	}
	return n
}
