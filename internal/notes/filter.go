package notes

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// fuzzyMinLen is the shortest query that also matches words one edit away.
const fuzzyMinLen = 4

// Filter keeps notes whose text contains query (case-insensitive) or has a
// word within one edit of it. Order is preserved; a blank query keeps all.
func Filter(list []Note, query string) []Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]Note, 0, len(list))
	for _, n := range list {
		if matches(n.Text, q) {
			out = append(out, n)
		}
	}
	return out
}

func matches(text, q string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, q) {
		return true
	}
	if utf8.RuneCountInString(q) < fuzzyMinLen {
		return false
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if levenshtein.ComputeDistance(w, q) <= 1 {
			return true
		}
	}
	return false
}
