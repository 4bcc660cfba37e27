package model

import (
	"fmt"
	"regexp"
	"strings"
)

// parenthesizedSpan matches the shortest "(...)" run.
var parenthesizedSpan = regexp.MustCompile(`\(.*?\)`)

// NormalizeColumnName maps a raw header field to a column identifier.
//
// Parenthesized spans are removed, the rest is lower-cased, spaces become
// underscores and '.' and '?' are dropped. Surrounding whitespace is trimmed
// both before the spaces are replaced and at the end, so "Revenue (USD)"
// becomes "revenue_". Only a literal space before a removed span leaves a
// trailing underscore: "a (x)" becomes "a_" but "a\t(x)" becomes "a".
// The result may be empty.
func NormalizeColumnName(raw string) string {
	s := strings.TrimSpace(raw)
	s = parenthesizedSpan.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "?", "")
	return strings.TrimSpace(s)
}

// ValidateColumnNames checks that normalized column names are unique.
// raw and normalized must be positionally aligned.
func ValidateColumnNames(raw Header, normalized []string) error {
	if len(normalized) == 0 {
		return ErrNoColumns
	}
	seen := make(map[string]int, len(normalized))
	for i, name := range normalized {
		if j, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q (from %q and %q)", ErrDuplicateColumnName, name, raw[j], raw[i])
		}
		seen[name] = i
	}
	return nil
}

// QuoteIdentifier returns name as a double-quoted SQL identifier.
// Embedded double quotes are doubled, so the result is always a single identifier.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
