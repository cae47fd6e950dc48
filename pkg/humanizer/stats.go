package humanizer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"

	"github.com/frezerotation/humaniser/pkg/textdiff"
)

// topStemCount is how many vocabulary entries a Report keeps.
const topStemCount = 10

// StemCount pairs a stemmed word with its occurrence count.
type StemCount struct {
	Stem  string `json:"stem"`
	Count int    `json:"count"`
}

// Report summarizes one rewrite: shape counts of the rewritten text,
// its similarity to the original, and its dominant vocabulary.
type Report struct {
	Lines      int         `json:"lines"`
	Sentences  int         `json:"sentences"`
	Words      int         `json:"words"`
	Similarity float64     `json:"similarity"`
	TopStems   []StemCount `json:"top_stems,omitempty"`
}

// Analyze builds a Report comparing original and rewritten text. The
// language selects the stemmer for the vocabulary ranking; the auto tag
// is resolved by detecting on the rewritten text, and languages without
// a stemmer fall back to the raw lowercased word.
func Analyze(original, rewritten string, lang Lang) Report {
	if lang == LangAuto || lang == "" {
		lang = DetectLanguage(rewritten, BuiltinLexicons())
	}
	report := Report{
		Lines:      len(strings.Split(rewritten, "\n")),
		Similarity: textdiff.Similarity(original, rewritten),
	}

	for _, line := range strings.Split(rewritten, "\n") {
		_, core, _ := splitPadding(line)
		if core == "" {
			continue
		}
		report.Sentences += len(SplitSentences(core))
	}

	frequency := make(map[string]int)
	words := strings.FieldsFunc(strings.ToLower(rewritten), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	for _, word := range words {
		word = strings.Trim(word, "'")
		if word == "" {
			continue
		}
		report.Words++
		frequency[stemWord(word, lang)]++
	}

	stems := make([]StemCount, 0, len(frequency))
	for stem, count := range frequency {
		stems = append(stems, StemCount{Stem: stem, Count: count})
	}
	sort.Slice(stems, func(i, j int) bool {
		if stems[i].Count != stems[j].Count {
			return stems[i].Count > stems[j].Count
		}
		return stems[i].Stem < stems[j].Stem
	})
	if len(stems) > topStemCount {
		stems = stems[:topStemCount]
	}
	report.TopStems = stems
	return report
}

// stemWord applies the snowball stemmer for the language, returning the
// word unchanged when stemming is unavailable or fails.
func stemWord(word string, lang Lang) string {
	name := "english"
	if lang == LangDutch {
		name = "dutch"
	}
	stemmed, err := snowball.Stem(word, name, true)
	if err != nil {
		return word
	}
	return stemmed
}
