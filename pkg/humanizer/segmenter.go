package humanizer

import (
	"regexp"
	"strings"
	"unicode"
)

// sentencePattern captures runs of non-terminator text followed by the
// terminators that close them. Terminators stay attached to the
// preceding sentence; a trailing run without a terminator is captured
// as-is (the pipeline appends one before finalizing).
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// SplitSentences splits a line core into ordered sentence strings.
// Empty and whitespace-only fragments are dropped.
func SplitSentences(core string) []string {
	matches := sentencePattern.FindAllString(core, -1)
	sentences := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(m); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// splitPadding decomposes a line into leading whitespace, core content
// and trailing whitespace. The padding is reattached byte-identically
// after rewriting.
func splitPadding(line string) (lead, core, trail string) {
	core = strings.TrimLeftFunc(line, unicode.IsSpace)
	lead = line[:len(line)-len(core)]
	trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
	trail = core[len(trimmed):]
	return lead, trimmed, trail
}
