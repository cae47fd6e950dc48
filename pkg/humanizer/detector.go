package humanizer

import (
	"strings"
	"unicode"
)

// detectWindow is how many leading characters the detector inspects.
const detectWindow = 800

// DetectLanguage scores the first 800 characters of text against each
// lexicon's marker words and returns the language of the best-scoring
// lexicon. Markers are counted space-padded to avoid substring false
// positives ("he" inside "the"). Ties resolve to the earliest lexicon
// in the slice, so callers list Dutch before English to get the
// documented Dutch-wins-ties behavior.
func DetectLanguage(text string, lexicons []*Lexicon) Lang {
	if len(lexicons) == 0 {
		return LangEnglish
	}

	runes := []rune(text)
	if len(runes) > detectWindow {
		runes = runes[:detectWindow]
	}
	sample := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(string(runes)))
	sample = " " + sample + " "

	best := lexicons[0].Language
	bestScore := -1
	for _, lx := range lexicons {
		score := 0
		for _, marker := range lx.Markers {
			score += strings.Count(sample, " "+marker+" ")
		}
		if score > bestScore {
			best = lx.Language
			bestScore = score
		}
	}
	return best
}
