package csvrepl

import "strings"

// keywords are the query words offered for completion before any file is loaded.
var keywords = [...]string{"distinct", "select", "from", "group", "by", "order", "where", "count"}

// Keywords returns the static completion keywords.
func Keywords() []string {
	return append([]string(nil), keywords[:]...)
}

// Vocabulary is the immutable list of completion candidates.
type Vocabulary struct {
	words []string
}

// BuildVocabulary returns the keywords followed by the column names of every
// loaded file, in file order. Repeated words are kept once, at their first position.
func BuildVocabulary(static []string, columns ...[]string) *Vocabulary {
	seen := make(map[string]struct{})
	var words []string
	add := func(list []string) {
		for _, w := range list {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
	}
	add(static)
	for _, cols := range columns {
		add(cols)
	}
	return &Vocabulary{words: words}
}

// Words returns a copy of every candidate in order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}

// Complete returns every candidate starting with prefix, in vocabulary order.
// An empty prefix matches everything.
func (v *Vocabulary) Complete(prefix string) []string {
	var matches []string
	for _, w := range v.words {
		if strings.HasPrefix(w, prefix) {
			matches = append(matches, w)
		}
	}
	return matches
}
