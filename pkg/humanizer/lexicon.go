package humanizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/blevesearch/vellum"
)

// Lang identifies a language rule set.
type Lang string

const (
	LangAuto    Lang = "auto"
	LangEnglish Lang = "en"
	LangDutch   Lang = "nl"
)

// Lexicon bundles the rule tables for one language: synonym variants,
// contraction pairs, the reverse expansions used under formal tone,
// clause conjunctions, detection marker words and the fixed tail
// phrases. A Lexicon is immutable after Compile and safe for concurrent
// readers.
type Lexicon struct {
	Language Lang

	// Synonyms maps a canonical phrase to its replacement variants.
	// The first variant is the preferred pick. Keys are matched
	// case-insensitively at word boundaries.
	Synonyms map[string][]string

	// Contractions maps an expanded phrase to its contracted form.
	// An entry whose value equals its key suppresses that contraction.
	Contractions map[string]string

	// Expansions maps a contracted form back to the expanded phrase,
	// applied under formal tone.
	Expansions map[string]string

	Conjunctions []string
	Markers      []string

	// TailPhrase is appended before terminal punctuation when a short
	// sentence is expanded. FriendlyTail is the friendly-tone suffix.
	// Both carry their own leading separator (", ...").
	TailPhrase   string
	FriendlyTail string

	synonymKeys     []string
	contractionKeys []string
	expansionKeys   []string
	index           *vellum.FST
}

// Compile normalizes the rule tables (keys are lowered, iteration
// orders fixed longest-first) and builds the FST candidate index over
// the head words of every synonym and contraction key. It must be
// called once before the lexicon is used.
func (lx *Lexicon) Compile() error {
	lx.Synonyms = lowerSynonymKeys(lx.Synonyms)
	lx.Contractions = lowerMapKeys(lx.Contractions)
	lx.Expansions = lowerMapKeys(lx.Expansions)

	lx.synonymKeys = sortedRuleKeys(lx.Synonyms)
	lx.contractionKeys = sortedKeys(lx.Contractions)
	lx.expansionKeys = sortedKeys(lx.Expansions)

	heads := make(map[string]struct{}, len(lx.Synonyms)+len(lx.Contractions))
	for key := range lx.Synonyms {
		heads[headWord(key)] = struct{}{}
	}
	for key := range lx.Contractions {
		heads[headWord(key)] = struct{}{}
	}

	sorted := make([]string, 0, len(heads))
	for h := range heads {
		if h != "" {
			sorted = append(sorted, h)
		}
	}
	sort.Strings(sorted)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return fmt.Errorf("lexicon %q: building index: %w", lx.Language, err)
	}
	for _, h := range sorted {
		if err := builder.Insert([]byte(h), 0); err != nil {
			return fmt.Errorf("lexicon %q: indexing %q: %w", lx.Language, h, err)
		}
	}
	if err := builder.Close(); err != nil {
		return fmt.Errorf("lexicon %q: finishing index: %w", lx.Language, err)
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return fmt.Errorf("lexicon %q: loading index: %w", lx.Language, err)
	}
	lx.index = fst
	return nil
}

// HasCandidate reports whether any word of s is the head word of a rule
// key. Used as a cheap pre-filter before the longest-key scan; skipping
// is draw-neutral because generator draws only happen on actual matches.
func (lx *Lexicon) HasCandidate(s string) bool {
	if lx.index == nil {
		return true
	}
	for _, field := range strings.Fields(strings.ToLower(s)) {
		word := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}
		if _, ok, _ := lx.index.Get([]byte(word)); ok {
			return true
		}
	}
	return false
}

// SynonymKeys returns the synonym keys in scan order (longest first,
// then lexicographic). The slice is a copy.
func (lx *Lexicon) SynonymKeys() []string {
	keys := make([]string, len(lx.synonymKeys))
	copy(keys, lx.synonymKeys)
	return keys
}

// headWord returns the lowercased first word of a (possibly multi-word) key.
func headWord(key string) string {
	fields := strings.Fields(strings.ToLower(key))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func lowerSynonymKeys(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func lowerMapKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

// sortedRuleKeys orders keys longest-first, then lexicographically, so
// multi-word keys outrank single-word keys that are substrings of them.
// The order is load-bearing: it fixes the generator draw sequence.
func sortedRuleKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func sortedKeys(m map[string]string) []string {
	return sortedRuleKeys(m)
}

// lexiconFile is the on-disk JSON shape for externally supplied lexicons.
type lexiconFile struct {
	Language     string              `json:"language"`
	Synonyms     map[string][]string `json:"synonyms"`
	Contractions map[string]string   `json:"contractions"`
	Expansions   map[string]string   `json:"expansions"`
	Conjunctions []string            `json:"conjunctions"`
	Markers      []string            `json:"markers"`
	TailPhrase   string              `json:"tail_phrase"`
	FriendlyTail string              `json:"friendly_tail"`
}

// LoadLexicon reads and compiles a lexicon from a JSON file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file lexiconFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	if file.Language == "" {
		return nil, fmt.Errorf("lexicon %s: missing language tag", path)
	}
	for key, variants := range file.Synonyms {
		if len(variants) == 0 {
			return nil, fmt.Errorf("lexicon %s: synonym %q has no variants", path, key)
		}
	}

	lx := &Lexicon{
		Language:     Lang(file.Language),
		Synonyms:     file.Synonyms,
		Contractions: file.Contractions,
		Expansions:   file.Expansions,
		Conjunctions: file.Conjunctions,
		Markers:      file.Markers,
		TailPhrase:   file.TailPhrase,
		FriendlyTail: file.FriendlyTail,
	}
	if lx.Synonyms == nil {
		lx.Synonyms = map[string][]string{}
	}
	if lx.Contractions == nil {
		lx.Contractions = map[string]string{}
	}
	if lx.Expansions == nil {
		lx.Expansions = map[string]string{}
	}
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
}
