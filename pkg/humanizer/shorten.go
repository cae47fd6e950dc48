package humanizer

import (
	"strings"
	"unicode/utf8"
)

const (
	// shortenThreshold is the sentence length (in characters) above
	// which the shortener may fire.
	shortenThreshold = 120
	// truncateLength is the hard-truncation fallback length.
	truncateLength = 100
	// expandThreshold is the length below which a sentence may gain a
	// clarifying tail.
	expandThreshold = 80
)

// shortenSentence splits an overlong sentence into two. Strategy, in
// priority order: semicolon, comma, language conjunction, hard
// truncation with an ellipsis. Clause splits keep only the first two
// clauses, each capitalized and period-terminated.
func shortenSentence(sentence string, lx *Lexicon) string {
	body, _ := detachPunct(sentence)

	if strings.Contains(body, ";") {
		return splitClauses(body, ";")
	}
	if strings.Contains(body, ",") {
		return splitClauses(body, ",")
	}

	lowered := strings.ToLower(body)
	for _, conj := range lx.Conjunctions {
		sep := " " + conj + " "
		if i := strings.Index(lowered, sep); i >= 0 {
			return finishClause(body[:i]) + " " + finishClause(body[i+len(sep):])
		}
	}

	runes := []rune(body)
	if len(runes) > truncateLength {
		return strings.TrimSpace(string(runes[:truncateLength])) + "..."
	}
	return sentence
}

func splitClauses(body, sep string) string {
	parts := strings.SplitN(body, sep, 3)
	first := finishClause(parts[0])
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return first
	}
	return first + " " + finishClause(parts[1])
}

// finishClause trims, capitalizes and period-terminates one clause.
func finishClause(clause string) string {
	c := capitalizeFirst(strings.TrimSpace(clause))
	if !strings.HasSuffix(c, ".") {
		c += "."
	}
	return c
}

// expandSentence appends the lexicon's clarifying tail phrase before
// the terminal punctuation.
func expandSentence(sentence string, lx *Lexicon) string {
	return insertTail(sentence, lx.TailPhrase)
}

// appendFriendlyTail appends the friendly-tone suffix before the
// terminal punctuation.
func appendFriendlyTail(sentence string, lx *Lexicon) string {
	return insertTail(sentence, lx.FriendlyTail)
}

func insertTail(sentence, tail string) string {
	if tail == "" {
		return sentence
	}
	body, punct := detachPunct(sentence)
	if punct == "" {
		punct = "."
	}
	return body + tail + punct
}

func sentenceLength(s string) int {
	return utf8.RuneCountInString(s)
}
