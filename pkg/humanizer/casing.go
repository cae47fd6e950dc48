package humanizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// patternCacheSize bounds the compiled boundary-pattern cache. Rule
// keys repeat across sentences and documents, so compiling each key
// once per Rewriter pays off quickly.
const patternCacheSize = 4096

// patternCache memoizes compiled word-boundary patterns per rule key.
type patternCache struct {
	lru *lru.Cache[string, *regexp.Regexp]
}

func newPatternCache() *patternCache {
	cache, _ := lru.New[string, *regexp.Regexp](patternCacheSize)
	return &patternCache{lru: cache}
}

// boundary returns the case-insensitive, word-boundary-delimited
// pattern for key, compiling and caching it on first use.
func (pc *patternCache) boundary(key string) *regexp.Regexp {
	if re, ok := pc.lru.Get(key); ok {
		return re
	}
	re := compileBoundary(key)
	pc.lru.Add(key, re)
	return re
}

// compileBoundary anchors \b only against word-rune key edges; keys
// that start or end in an apostrophe ("'t") have no boundary to anchor.
func compileBoundary(key string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)`)
	if first, _ := utf8.DecodeRuneInString(key); isWordRune(first) {
		b.WriteString(`\b`)
	}
	b.WriteString(regexp.QuoteMeta(key))
	if last, _ := utf8.DecodeLastRuneInString(key); isWordRune(last) {
		b.WriteString(`\b`)
	}
	return regexp.MustCompile(b.String())
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// matchCase shapes replacement after the casing of source: an all-caps
// source yields an all-caps replacement, a capitalized first letter is
// preserved, anything else is returned verbatim.
func matchCase(source, replacement string) string {
	if source == "" || replacement == "" {
		return replacement
	}
	if source == strings.ToUpper(source) && source != strings.ToLower(source) {
		return strings.ToUpper(replacement)
	}
	if first, _ := utf8.DecodeRuneInString(source); unicode.IsUpper(first) {
		return capitalizeFirst(replacement)
	}
	return replacement
}

// capitalizeFirst upper-cases the first rune when it is a lowercase letter.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst lower-cases the first rune unless the word is all-caps
// (acronyms keep their shape when a clause moves mid-sentence).
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) {
		return s
	}
	if s == strings.ToUpper(s) && s != strings.ToLower(s) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
