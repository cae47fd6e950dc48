// Package textdiff renders token-level visual diffs between an original
// and a rewritten text using LCS alignment.
package textdiff

import "unicode"

// Tokenize splits a string into word and punctuation tokens. A word
// token is a maximal run of letters and digits, with apostrophes kept
// when they sit between word runes ("don't" is one token). A
// punctuation token is a maximal run of non-word, non-space runes.
// Whitespace separates tokens but is never a token itself.
func Tokenize(s string) []string {
	runes := []rune(s)
	var tokens []string

	i := 0
	for i < len(runes) {
		switch {
		case unicode.IsSpace(runes[i]):
			i++
		case isWordRune(runes[i]):
			start := i
			for i < len(runes) && (isWordRune(runes[i]) || isInnerApostrophe(runes, i)) {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		default:
			start := i
			for i < len(runes) && !unicode.IsSpace(runes[i]) && !isWordRune(runes[i]) {
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isInnerApostrophe keeps an apostrophe inside a word token only when
// both neighbors are word runes.
func isInnerApostrophe(runes []rune, i int) bool {
	if runes[i] != '\'' {
		return false
	}
	return i > 0 && isWordRune(runes[i-1]) &&
		i+1 < len(runes) && isWordRune(runes[i+1])
}

// isPunctToken reports a token consisting only of non-word runes.
func isPunctToken(tok string) bool {
	if tok == "" {
		return true
	}
	for _, r := range tok {
		if isWordRune(r) {
			return false
		}
	}
	return true
}
