package repl

import (
	"github.com/chzyer/readline"

	"github.com/nao1215/csvrepl"
)

// wordBreaks end the word being completed.
var wordBreaks = map[rune]struct{}{' ': {}, '(': {}, ')': {}, ',': {}}

// Completer completes the word under the cursor from a vocabulary.
type Completer struct {
	vocabulary *csvrepl.Vocabulary
}

var _ readline.AutoCompleter = (*Completer)(nil)

// NewCompleter returns a completer over vocabulary.
func NewCompleter(vocabulary *csvrepl.Vocabulary) *Completer {
	return &Completer{vocabulary: vocabulary}
}

// Complete returns where the word under the cursor starts and every
// vocabulary entry that has the word as a prefix.
func (c *Completer) Complete(line string, pos int) (int, []string) {
	start, word := extractWord([]rune(line), pos)
	return start, c.vocabulary.Complete(string(word))
}

// Do implements readline.AutoCompleter. Candidates are returned as the text
// still missing after the word typed so far.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	start, word := extractWord(line, pos)
	matches := c.vocabulary.Complete(string(word))

	suffixes := make([][]rune, 0, len(matches))
	for _, m := range matches {
		suffixes = append(suffixes, []rune(m)[len(word):])
	}
	return suffixes, pos - start
}

// extractWord returns the start index and the runes of the word ending at pos.
func extractWord(line []rune, pos int) (int, []rune) {
	if pos > len(line) {
		pos = len(line)
	}
	if pos < 0 {
		pos = 0
	}
	start := pos
	for start > 0 {
		if _, ok := wordBreaks[line[start-1]]; ok {
			break
		}
		start--
	}
	return start, line[start:pos]
}
