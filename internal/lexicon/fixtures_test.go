package lexicon

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const licenseHeader = "  1 This software and database is being provided to you, the LICENSEE, by\n" +
	"  2 Princeton University under the following license.\n"

func wordNetFixture() fstest.MapFS {
	file := func(lines ...string) *fstest.MapFile {
		return &fstest.MapFile{Data: []byte(licenseHeader + strings.Join(lines, "\n") + "\n")}
	}

	return fstest.MapFS{
		"index.noun": file(
			"abstract_entity n 1 1 @ 1 0 00000002",
			"abstraction n 1 1 @ 1 0 00000002",
			"day n 1 1 @ 1 0 00000007",
			"eden n 1 1 @i 1 0 00000009",
			"entity n 1 0 1 0 00000001",
			"feeling n 1 1 @ 1 0 00000003",
			"hope n 1 1 @ 1 0 00000004",
			"joy n 1 1 @ 1 0 00000005",
			"joyfulness n 1 1 @ 1 0 00000005",
			"joyousness n 1 1 @ 1 0 00000005",
			"paradise n 1 1 @i 1 0 00000009",
			"sorrow n 1 1 @ 1 0 00000006",
			"today n 1 1 @ 1 0 00000008",
		),
		"data.noun": file(
			"00000001 03 n 01 entity 0 000 | that which exists",
			"00000002 03 n 02 abstraction 0 abstract_entity 0 001 @ 00000001 n 0000 | a general concept",
			"00000003 12 n 01 feeling 0 001 @ 00000002 n 0000 | the experiencing of affective states",
			"00000004 12 n 01 hope 0 001 @ 00000003 n 0000 | a feeling of expectation",
			"00000005 12 n 03 joy 0 joyousness 0 joyfulness 0 001 @ 00000003 n 0000 | the emotion of great happiness",
			"00000006 12 n 01 sorrow 0 001 @ 00000003 n 0000 | an emotion of great sadness",
			"00000007 28 n 01 day 0 001 @ 00000002 n 0000 | a period of time",
			"00000008 28 n 01 today 0 001 @ 00000007 n 0000 | the present time",
			"00000009 15 n 02 Paradise 0 Eden 0 001 @i 00000004 n 0000 | a place of bliss",
		),
		"index.verb": file(
			"destroy v 1 0 1 0 00000012",
			"devastate v 1 1 @ 1 0 00000011",
			"experience v 1 0 1 0 00000010",
			"feel v 1 0 1 0 00000010",
			"hope v 1 0 1 0 00000013",
			"lay_waste_to v 1 1 @ 1 0 00000011",
			"ruin v 1 0 1 0 00000012",
			"trust v 1 0 1 0 00000013",
		),
		"data.verb": file(
			"00000010 37 v 02 feel 0 experience 0 000 01 + 01 00 | undergo an emotional sensation",
			"00000011 30 v 02 devastate 0 lay_waste_to 0 001 @ 00000012 v 0000 01 + 08 00 | cause extensive destruction",
			"00000012 30 v 02 destroy 0 ruin 0 000 01 + 08 00 | do away with",
			"00000013 31 v 02 hope 0 trust 0 000 01 + 08 00 | expect and wish",
		),
		"verb.exc": file(
			"felt feel",
		),
		"index.adj": file(
			"elated a 1 0 1 0 00000021",
			"hopeful a 1 0 1 0 00000020",
			"hopeless a 1 0 1 0 00000022",
			"joyful a 1 0 1 0 00000021",
		),
		"data.adj": file(
			"00000020 00 a 01 hopeful(a) 0 000 | having hope",
			"00000021 00 s 02 joyful 0 elated 0 000 | full of joy",
			"00000022 00 a 01 hopeless 0 000 | without hope",
		),
		"index.adv": file(),
		"data.adv":  file(),
	}
}

func loadFixture(t *testing.T) *WordNet {
	t.Helper()
	wn, err := LoadWordNet(wordNetFixture())
	require.NoError(t, err)
	return wn
}

func synsetIDs(senses []*Synset) []string {
	ids := make([]string, 0, len(senses))
	for _, s := range senses {
		ids = append(ids, s.ID)
	}
	return ids
}
