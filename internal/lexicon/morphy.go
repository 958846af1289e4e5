package lexicon

import "strings"

type substitution struct {
	suffix string
	ending string
}

// Detachment rules from WordNet's morphy(7), applied in order.
var substitutions = map[string][]substitution{
	Noun: {
		{"s", ""},
		{"ses", "s"},
		{"ves", "f"},
		{"xes", "x"},
		{"zes", "z"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"men", "man"},
		{"ies", "y"},
	},
	Verb: {
		{"s", ""},
		{"ies", "y"},
		{"es", "e"},
		{"es", ""},
		{"ed", "e"},
		{"ed", ""},
		{"ing", "e"},
		{"ing", ""},
	},
	Adjective: {
		{"er", ""},
		{"est", ""},
		{"er", "e"},
		{"est", "e"},
	},
}

// morphy returns the base forms of form that exist in the index for pos.
// The form itself is always tried first; if it is listed in the exception
// file only the exception bases are considered alongside it.
func (wn *WordNet) morphy(form, pos string) []string {
	if bases, ok := wn.exceptions[pos][form]; ok {
		return wn.filterForms(pos, append([]string{form}, bases...))
	}

	candidates := []string{form}
	for _, sub := range substitutions[pos] {
		if strings.HasSuffix(form, sub.suffix) {
			candidates = append(candidates, strings.TrimSuffix(form, sub.suffix)+sub.ending)
		}
	}
	return wn.filterForms(pos, candidates)
}

func (wn *WordNet) filterForms(pos string, forms []string) []string {
	var out []string
	seen := make(map[string]bool, len(forms))
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}
		if _, ok := wn.index[pos][f]; !ok {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
