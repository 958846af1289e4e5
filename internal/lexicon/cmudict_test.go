package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyDict = `;;; # CMUdict  --  Major Version: 0.07
;;;
HOPE  HH OW1 P
JOYFUL  JH OY1 F AH0 L
TOMATO  T AH0 M EY1 T OW2
TOMATO(1)  T AH0 M AA1 T OW2
(PAREN  P ER0 EH1 N
`

const modernDict = `# newer layout
hope HH OW1 P
feeling F IY1 L IH0 NG
either IY1 DH ER0
either(2) AY1 DH ER0
d'artagnan D AH0 R T AE1 NG Y AH0 N # place, france
`

func TestLoadCMUDict(t *testing.T) {
	t.Run("legacy layout", func(t *testing.T) {
		d, err := LoadCMUDict(strings.NewReader(legacyDict))
		require.NoError(t, err)

		assert.Equal(t, 4, d.Len())
		assert.Equal(t, []string{"HH OW1 P"}, d.Pronunciations("hope"))
		assert.Equal(t, []string{"T AH0 M EY1 T OW2", "T AH0 M AA1 T OW2"}, d.Pronunciations("Tomato"))
		assert.Equal(t, []string{"P ER0 EH1 N"}, d.Pronunciations("(paren"))
	})

	t.Run("modern layout", func(t *testing.T) {
		d, err := LoadCMUDict(strings.NewReader(modernDict))
		require.NoError(t, err)

		assert.Equal(t, []string{"IY1 DH ER0", "AY1 DH ER0"}, d.Pronunciations("either"))
		assert.Equal(t, []string{"D AH0 R T AE1 NG Y AH0 N"}, d.Pronunciations("d'artagnan"))
		assert.Empty(t, d.Pronunciations("sadness"))
	})

	t.Run("entry without phones", func(t *testing.T) {
		_, err := LoadCMUDict(strings.NewReader("hope HH OW1 P\nbroken\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestSyllableCount(t *testing.T) {
	tests := []struct {
		phones string
		want   int
	}{
		{"HH OW1 P", 1},
		{"JH OY1 F AH0 L", 2},
		{"T AH0 M EY1 T OW2", 3},
		{"D AH0 R T AE1 NG Y AH0 N", 3},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.phones, func(t *testing.T) {
			assert.Equal(t, tt.want, SyllableCount(tt.phones))
		})
	}
}
