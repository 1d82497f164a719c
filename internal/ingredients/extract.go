// Package ingredients extracts known ingredient names from free OCR text.
//
// A token is a maximal run of letters (a-z, a fixed set of French accented
// letters, and the hyphen) at least three characters long and delimited by
// word boundaries. Only tokens that are exact members of the vocabulary are
// returned, so "tomates" never matches "tomate" and "pomme-banane" matches
// neither entry.
package ingredients

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	minTokenLen = 3
	accented    = "éèêàçûîôùïëäü"
)

// Extract returns the set of known ingredients found in text, sorted. The
// result is never nil; an empty slice means nothing matched.
func Extract(text string) []string {
	seen := make(map[string]struct{})
	for _, tok := range Tokenize(text) {
		if Known(tok) {
			seen[tok] = struct{}{}
		}
	}

	found := make([]string, 0, len(seen))
	for name := range seen {
		found = append(found, name)
	}
	sort.Strings(found)
	return found
}

// Tokenize lowercases text and returns every candidate token in order of
// appearance, duplicates included.
func Tokenize(text string) []string {
	// A Caser carries state, so one is built per call.
	rs := []rune(cases.Lower(language.French).String(text))
	n := len(rs)

	var tokens []string
	for i := 0; i < n; {
		if !inClass(rs[i]) || !boundary(rs, i) {
			i++
			continue
		}

		j := i
		for j < n && inClass(rs[j]) {
			j++
		}

		// Greedy run first, then give back characters until the end sits on
		// a word boundary.
		matched := false
		for end := j; end-i >= minTokenLen; end-- {
			if boundary(rs, end) {
				tokens = append(tokens, string(rs[i:end]))
				i = end
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return tokens
}

func inClass(r rune) bool {
	if r >= 'a' && r <= 'z' || r == '-' {
		return true
	}
	return strings.ContainsRune(accented, r)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// boundary reports whether a word boundary sits before rs[i]. Positions
// outside the slice count as non-word characters.
func boundary(rs []rune, i int) bool {
	before := i > 0 && isWord(rs[i-1])
	after := i < len(rs) && isWord(rs[i])
	return before != after
}
