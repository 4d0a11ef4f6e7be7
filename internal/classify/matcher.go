// Package classify maps free-text transaction descriptions to categories by
// weighted keyword scoring.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match scores returned by Score.
const (
	ScoreNone   = 0
	ScorePrefix = 1 // a token starts with the keyword
	ScoreExact  = 3 // the keyword is a whole word
)

// Score rates how strongly keyword occurs in description.
//
// A whole-word occurrence (word boundary on both sides) scores ScoreExact.
// Otherwise an occurrence at a word start scores ScorePrefix, so "taxis"
// still counts for "taxi". Matching is
// case-insensitive and word characters are Unicode letters, digits and '_'.
func Score(description, keyword string) int {
	if keyword == "" || description == "" {
		return ScoreNone
	}
	d := strings.ToLower(description)
	k := strings.ToLower(keyword)

	best := ScoreNone
	for from := 0; from <= len(d)-len(k); {
		i := strings.Index(d[from:], k)
		if i < 0 {
			break
		}
		start := from + i
		if boundaryAt(d, start) {
			if boundaryAt(d, start+len(k)) {
				return ScoreExact
			}
			best = ScorePrefix
		}
		_, size := utf8.DecodeRuneInString(d[start:])
		from = start + size
	}
	return best
}

// boundaryAt reports whether byte offset p of s sits between a word and a
// non-word character (string ends count as non-word).
func boundaryAt(s string, p int) bool {
	before := false
	if p > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:p])
		before = isWordRune(r)
	}
	after := false
	if p < len(s) {
		r, _ := utf8.DecodeRuneInString(s[p:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
