package humanizer

import (
	"regexp"
	"strings"
)

// Tone selects the register of the rewrite.
type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneCasual   Tone = "casual"
	ToneFriendly Tone = "friendly"
)

// Variability selects the base substitution probability.
type Variability string

const (
	VariabilityLow    Variability = "low"
	VariabilityMedium Variability = "medium"
	VariabilityHigh   Variability = "high"
)

const (
	// aggressivePassiveWeight is the passive-conversion gate under
	// aggressive mode.
	aggressivePassiveWeight = 0.75
	// expandWeight gates short-sentence expansion.
	expandWeight = 0.3
	// friendlyWeight gates the friendly-tone suffix.
	friendlyWeight = 0.2
	// reorderWeight gates the aggressive clause swap.
	reorderWeight = 0.5
	// shortClauseLimit is the first-clause length (in characters)
	// under which a swap is considered.
	shortClauseLimit = 40
)

// Options is the configuration surface of one rewrite. The zero value
// is not useful; start from DefaultOptions.
type Options struct {
	Tone         Tone
	Variability  Variability
	Contractions bool
	Shorten      bool

	// Strength scales every probability gate; it is clamped to [0, 1].
	Strength float64

	// Language selects the rule set, LangAuto enables detection.
	// Unrecognized tags fall back to English.
	Language Lang

	// Aggressive enables the stronger heuristics: clause reorder and a
	// fixed 0.75 passive-conversion gate.
	Aggressive bool

	// Seed fixes the generator for reproducible rewrites; zero selects
	// DefaultSeed.
	Seed uint32

	// CollapseBlankLines folds runs of three or more blank lines down
	// to two. Off by default because it breaks the line-count guarantee
	// that diff rendering relies on.
	CollapseBlankLines bool
}

// DefaultOptions returns the documented defaults: casual tone, medium
// variability, contractions and shortening on, full strength, automatic
// language detection.
func DefaultOptions() Options {
	return Options{
		Tone:         ToneCasual,
		Variability:  VariabilityMedium,
		Contractions: true,
		Shorten:      true,
		Strength:     1.0,
		Language:     LangAuto,
	}
}

// Rewriter applies the configured rewrite pipeline. A Rewriter is safe
// for concurrent Humanize calls: each call owns its own Generator, and
// the lexicons and pattern cache are read-only or internally locked.
type Rewriter struct {
	opts     Options
	lexicons []*Lexicon
	patterns *patternCache
}

// New creates a Rewriter over the built-in English and Dutch lexicons.
func New(opts Options) *Rewriter {
	return NewWithLexicons(opts, BuiltinLexicons())
}

// NewWithLexicons creates a Rewriter over caller-supplied compiled
// lexicons. Lexicon order is the detection tie-break order. A nil or
// empty slice falls back to the built-in lexicons.
func NewWithLexicons(opts Options, lexicons []*Lexicon) *Rewriter {
	if len(lexicons) == 0 {
		lexicons = BuiltinLexicons()
	}
	if opts.Tone == "" {
		opts.Tone = ToneCasual
	}
	if opts.Variability == "" {
		opts.Variability = VariabilityMedium
	}
	if opts.Language == "" {
		opts.Language = LangAuto
	}
	if opts.Strength < 0 {
		opts.Strength = 0
	}
	if opts.Strength > 1 {
		opts.Strength = 1
	}
	return &Rewriter{
		opts:     opts,
		lexicons: lexicons,
		patterns: newPatternCache(),
	}
}

// Humanize rewrites text under the configured policy and returns the
// result. It is the package-level convenience over New(opts).Humanize.
func Humanize(text string, opts Options) string {
	return New(opts).Humanize(text)
}

// Humanize rewrites a document. The output has the same number of lines
// as the input and every line keeps its exact leading and trailing
// whitespace; blank lines pass through untouched. Empty input yields an
// empty string.
func (rw *Rewriter) Humanize(text string) string {
	if text == "" {
		return ""
	}

	g := NewGenerator(rw.seed())
	lx := rw.activeLexicon(text)

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = rw.rewriteLine(line, lx, g)
	}

	doc := strings.Join(out, "\n")
	if rw.opts.CollapseBlankLines {
		doc = collapseBlankLines(doc)
	}
	return doc
}

func (rw *Rewriter) seed() uint32 {
	if rw.opts.Seed != 0 {
		return rw.opts.Seed
	}
	return DefaultSeed
}

// activeLexicon resolves the configured language tag, detecting when
// the tag is auto and falling back to English for unknown tags.
func (rw *Rewriter) activeLexicon(text string) *Lexicon {
	tag := rw.opts.Language
	if tag == LangAuto {
		tag = DetectLanguage(text, rw.lexicons)
	}
	var english *Lexicon
	for _, lx := range rw.lexicons {
		if lx.Language == tag {
			return lx
		}
		if lx.Language == LangEnglish {
			english = lx
		}
	}
	if english != nil {
		return english
	}
	return rw.lexicons[0]
}

// rewriteLine rewrites one line's core sentence by sentence and
// reattaches the line's whitespace byte-identically.
func (rw *Rewriter) rewriteLine(line string, lx *Lexicon, g *Generator) string {
	lead, core, trail := splitPadding(line)
	if core == "" {
		return line
	}
	sentences := SplitSentences(core)
	if len(sentences) == 0 {
		// Punctuation-only cores have nothing to rewrite.
		return line
	}
	rewritten := make([]string, len(sentences))
	for i, s := range sentences {
		rewritten[i] = rw.rewriteSentence(s, lx, g)
	}
	return lead + smoothSpacing(strings.Join(rewritten, " ")) + trail
}

// rewriteSentence runs the per-sentence transform chain. The order of
// generator draws here is fixed; reordering steps changes every output
// under a given seed.
func (rw *Rewriter) rewriteSentence(sentence string, lx *Lexicon, g *Generator) string {
	s := capitalizeFirst(sentence)
	probability := rw.baseProbability() * rw.opts.Strength

	passiveGate := probability
	if rw.opts.Aggressive {
		passiveGate = aggressivePassiveWeight * rw.opts.Strength
	}
	// The gate draws whether or not a pattern matches, keeping the draw
	// sequence independent of match outcomes.
	if g.Next() < passiveGate {
		s = passiveToActive(s, lx.Language)
	}

	s = rw.substituteSynonyms(s, lx, g, probability)

	if rw.opts.Tone == ToneFormal {
		s = rw.expandContractions(s, lx)
	} else if rw.opts.Contractions {
		s = rw.applyContractions(s, lx)
	}

	if rw.opts.Aggressive {
		s = rw.reorderClauses(s, lx, g)
	}

	if rw.opts.Shorten {
		if sentenceLength(s) > shortenThreshold && g.Next() < probability {
			s = shortenSentence(s, lx)
		} else if sentenceLength(s) < expandThreshold && g.Next() < expandWeight*rw.opts.Strength {
			s = expandSentence(s, lx)
		}
	}

	if rw.opts.Tone == ToneFriendly && g.Next() < friendlyWeight*rw.opts.Strength {
		s = appendFriendlyTail(s, lx)
	}

	return ensureTerminal(s)
}

func (rw *Rewriter) baseProbability() float64 {
	switch rw.opts.Variability {
	case VariabilityLow:
		return 0.3
	case VariabilityHigh:
		return 0.9
	default:
		return 0.6
	}
}

// reorderClauses swaps a short leading clause behind the remainder of
// the sentence. The swap draws only when a split point exists and the
// first clause is short, so sentences with no swap candidate leave the
// draw sequence untouched.
func (rw *Rewriter) reorderClauses(sentence string, lx *Lexicon, g *Generator) string {
	body, punct := detachPunct(sentence)

	var first, rest, sep string
	if i := strings.Index(body, ","); i >= 0 {
		first, rest, sep = body[:i], strings.TrimSpace(body[i+1:]), ", "
	} else {
		lowered := strings.ToLower(body)
		for _, conj := range lx.Conjunctions {
			marker := " " + conj + " "
			if i := strings.Index(lowered, marker); i >= 0 {
				first, rest, sep = body[:i], body[i+len(marker):], " "+conj+" "
				break
			}
		}
	}

	first = strings.TrimSpace(first)
	rest = strings.TrimSpace(rest)
	if first == "" || rest == "" {
		return sentence
	}
	if sentenceLength(first) >= shortClauseLimit {
		return sentence
	}
	if g.Next() >= reorderWeight {
		return sentence
	}
	return capitalizeFirst(rest) + sep + lowerFirst(first) + punct
}

// ensureTerminal guarantees the sentence ends in '.', '!' or '?'.
func ensureTerminal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

var (
	spaceBeforePunct = regexp.MustCompile(`[ \t]+([.,!?;:])`)
	punctThenLetter  = regexp.MustCompile(`([.,!?;:])(\p{L})`)
	multiSpace       = regexp.MustCompile(`[ \t]{2,}`)
	blankRun         = regexp.MustCompile(`\n{4,}`)
)

// smoothSpacing normalizes spacing inside a line core: no whitespace
// before closing punctuation, exactly one space after it when a letter
// follows, runs of horizontal whitespace collapsed to one space.
// URL- and email-like spans are shielded first, and the space is only
// inserted before a letter, so addresses and decimals survive intact.
func smoothSpacing(core string) string {
	protected, spans := protectSpans(core)
	protected = spaceBeforePunct.ReplaceAllString(protected, "$1")
	protected = punctThenLetter.ReplaceAllString(protected, "$1 $2")
	protected = multiSpace.ReplaceAllString(protected, " ")
	return restoreSpans(protected, spans)
}

// collapseBlankLines folds runs of three or more blank lines down to
// two. Opt-in: this is the one transform that changes line count.
func collapseBlankLines(doc string) string {
	return blankRun.ReplaceAllString(doc, "\n\n\n")
}
