package humanizer

import (
	"regexp"
	"strings"
)

// passiveRule pairs a surface-pattern recognizer with its active-voice
// rewrite. Rules are heuristic and ordered: the first match wins, and a
// sentence matching no rule passes through unchanged. Adding a language
// means adding a rule table, not touching control flow.
type passiveRule struct {
	pattern *regexp.Regexp
	rewrite func(m []string) string
}

var passiveRules = map[Lang][]passiveRule{
	LangEnglish: {
		{
			// "The house is being cleaned by the crew."
			// Must precede the general rule, whose lazy object would
			// otherwise swallow the progressive auxiliary.
			pattern: regexp.MustCompile(`(?i)^(.+?)\s+(is|are|was|were)\s+being\s+(\w+)\s+by\s+(.+)$`),
			rewrite: func(m []string) string {
				return m[4] + " " + strings.ToLower(m[2]) + " " + progressive(m[3]) + " " + lowerFirst(m[1])
			},
		},
		{
			// "The ball was thrown by John."
			pattern: regexp.MustCompile(`(?i)^(.+?)\s+(?:was|were|is|are|has been|have been|had been)\s+(.+?)\s+by\s+(.+)$`),
			rewrite: func(m []string) string {
				return m[3] + " " + m[2] + " " + lowerFirst(m[1])
			},
		},
	},
	LangDutch: {
		{
			// "Het boek werd gelezen door Jan."
			pattern: regexp.MustCompile(`(?i)^(.+?)\s+(?:werd|werden|is|zijn|wordt|worden|was|waren)\s+(.+?)\s+door\s+(.+)$`),
			rewrite: func(m []string) string {
				return m[3] + " " + m[2] + " " + lowerFirst(m[1])
			},
		},
		{
			// "Wordt gelezen door Jan."
			pattern: regexp.MustCompile(`(?i)^wordt\s+(\w+)\s+door\s+(.+)$`),
			rewrite: func(m []string) string {
				return m[2] + " " + m[1]
			},
		},
	},
}

// passiveToActive rewrites a recognized passive construction into
// active voice. Trailing punctuation is detached before matching and
// reattached after; the rewritten sentence is capitalized. A sentence
// with no recognized pattern is returned unchanged.
func passiveToActive(sentence string, lang Lang) string {
	body, punct := detachPunct(sentence)
	for _, rule := range passiveRules[lang] {
		m := rule.pattern.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		return capitalizeFirst(strings.TrimSpace(rule.rewrite(m))) + punct
	}
	return sentence
}

// detachPunct splits trailing sentence terminators off the body.
func detachPunct(s string) (body, punct string) {
	body = strings.TrimRight(s, ".!?")
	return body, s[len(body):]
}

// progressive derives a best-effort -ing form: "...ed" flips to
// "...ing", anything else gains "ing" unless it already ends in it.
func progressive(verb string) string {
	lower := strings.ToLower(verb)
	switch {
	case strings.HasSuffix(lower, "ing"):
		return verb
	case strings.HasSuffix(lower, "ed"):
		return verb[:len(verb)-2] + "ing"
	default:
		return verb + "ing"
	}
}
