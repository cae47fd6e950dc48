package humanizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// preferredWeight is the probability with which Choose picks the
// canonical (first) replacement variant.
const preferredWeight = 0.6

var (
	urlPattern   = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// applyContractions replaces every expanded phrase in the active
// lexicon with its contracted form, preserving source casing. Entries
// whose contracted form equals the key are suppressed contractions.
func (rw *Rewriter) applyContractions(sentence string, lx *Lexicon) string {
	if !lx.HasCandidate(sentence) {
		return sentence
	}
	for _, key := range lx.contractionKeys {
		contracted := lx.Contractions[key]
		if strings.EqualFold(key, contracted) {
			continue
		}
		sentence = rw.patterns.boundary(key).ReplaceAllStringFunc(sentence, func(m string) string {
			return matchCase(m, contracted)
		})
	}
	return sentence
}

// expandContractions is the fixed reverse pass under formal tone:
// common contracted forms are written back out in full.
func (rw *Rewriter) expandContractions(sentence string, lx *Lexicon) string {
	for _, key := range lx.expansionKeys {
		expanded := lx.Expansions[key]
		if strings.EqualFold(key, expanded) {
			continue
		}
		sentence = rw.patterns.boundary(key).ReplaceAllStringFunc(sentence, func(m string) string {
			return matchCase(m, expanded)
		})
	}
	return sentence
}

// substituteSynonyms rewrites lexicon phrases within one sentence.
// Keys are scanned longest-first; every match consumes one generator
// draw against probability, and accepted matches pick their variant via
// Choose. Substitutions stop at the per-sentence cap. URL- and
// email-like spans are shielded behind placeholders for the duration of
// the scan.
func (rw *Rewriter) substituteSynonyms(sentence string, lx *Lexicon, g *Generator, probability float64) string {
	if probability <= 0 {
		return sentence
	}
	protected, spans := protectSpans(sentence)
	if !lx.HasCandidate(protected) {
		return sentence
	}

	limit := substitutionCap(probability)
	count := 0
	for _, key := range lx.synonymKeys {
		if count >= limit {
			break
		}
		variants := lx.Synonyms[key]
		protected = rw.patterns.boundary(key).ReplaceAllStringFunc(protected, func(m string) string {
			if count >= limit {
				return m
			}
			if g.Next() > probability {
				return m
			}
			replacement := g.Choose(variants, preferredWeight)
			if replacement == "" {
				return m
			}
			count++
			return matchCase(m, replacement)
		})
	}
	return restoreSpans(protected, spans)
}

// substitutionCap keeps short sentences from being rewritten into an
// unnatural density of substitutions.
func substitutionCap(probability float64) int {
	n := int(math.Floor(2 * probability))
	if n < 1 {
		n = 1
	}
	return n
}

// protectSpans swaps URL- and email-like substrings for placeholder
// tokens so rule keys can never match inside them.
func protectSpans(s string) (string, []string) {
	var spans []string
	guard := func(m string) string {
		spans = append(spans, m)
		return placeholder(len(spans) - 1)
	}
	s = urlPattern.ReplaceAllStringFunc(s, guard)
	s = emailPattern.ReplaceAllStringFunc(s, guard)
	return s, spans
}

// placeholder builds an unmatchable token; NUL never appears in rule keys.
func placeholder(i int) string {
	return "\x00" + strconv.Itoa(i) + "\x00"
}

func restoreSpans(s string, spans []string) string {
	for i, span := range spans {
		s = strings.Replace(s, placeholder(i), span, 1)
	}
	return s
}
