package haiku

import "github.com/spacesedan/haikuflow/internal/sentiment"

type partKind int

const (
	fixedPart partKind = iota
	choicePart
	slotPart
)

// A Part is one fragment of a template line: fixed text, one of a few fixed
// alternatives, or a slot for a word of a given syllable count.
type Part struct {
	kind      partKind
	options   []string
	syllables int
}

func Fixed(text string) Part {
	return Part{kind: fixedPart, options: []string{text}}
}

func OneOf(options ...string) Part {
	return Part{kind: choicePart, options: options}
}

func Slot(syllables int) Part {
	return Part{kind: slotPart, syllables: syllables}
}

// IsSlot reports whether the part is filled from the vocabulary.
func (p Part) IsSlot() bool {
	return p.kind == slotPart
}

// Syllables is the bucket a slot draws from; zero for text parts.
func (p Part) Syllables() int {
	return p.syllables
}

// Options lists the fixed texts a non-slot part can render as.
func (p Part) Options() []string {
	return p.options
}

type Line []Part

// Template is a three-line poem outline. Slot lengths are not tuned to add up
// to 5-7-5.
type Template struct {
	Sentiment sentiment.Label
	Lines     [3]Line
}

// Slots lists the syllable bucket of every slot, line by line.
func (t Template) Slots() []int {
	var slots []int
	for _, line := range t.Lines {
		for _, p := range line {
			if p.IsSlot() {
				slots = append(slots, p.Syllables())
			}
		}
	}
	return slots
}

var templates = map[sentiment.Label]Template{
	sentiment.Positive: {
		Sentiment: sentiment.Positive,
		Lines: [3]Line{
			{OneOf("Soft", "Kind", "Sweet"), Slot(2), Slot(2)},
			{Fixed("Gentle"), Slot(2), Slot(1), Fixed("unfolds")},
			{Fixed("Hope"), Slot(3), Slot(1)},
		},
	},
	sentiment.Negative: {
		Sentiment: sentiment.Negative,
		Lines: [3]Line{
			{OneOf("See shadows of", "Suffering in", "Fighting through"), Slot(1)},
			{Fixed("Silent echoes"), Slot(3)},
			{Fixed("Pain"), Slot(2), Slot(2)},
		},
	},
	sentiment.Neutral: {
		Sentiment: sentiment.Neutral,
		Lines: [3]Line{
			{Fixed("Quiet"), Slot(3)},
			{Fixed("Thoughts drift like"), Slot(2), Slot(1), Slot(1)},
			{Fixed("Calm"), Slot(2), Fixed("settles")},
		},
	},
}

// TemplateFor returns the outline for label; unknown labels get the neutral
// one.
func TemplateFor(label sentiment.Label) Template {
	if t, ok := templates[label]; ok {
		return t
	}
	return templates[sentiment.Neutral]
}
