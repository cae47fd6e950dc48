package humanizer

import (
	"strings"
	"testing"
)

func testLexicon(t *testing.T, synonyms map[string][]string) *Lexicon {
	t.Helper()
	lx := &Lexicon{
		Language:     LangEnglish,
		Synonyms:     synonyms,
		Contractions: map[string]string{},
		Expansions:   map[string]string{},
	}
	if err := lx.Compile(); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return lx
}

func TestSubstituteSynonyms_CasePreservation(t *testing.T) {
	// Single-variant keys make Choose deterministic regardless of the
	// draw, and probability 1 passes every gate.
	lx := testLexicon(t, map[string][]string{"utilize": {"use"}})
	rw := NewWithLexicons(DefaultOptions(), []*Lexicon{lx})
	g := NewGenerator(1)

	if got := rw.substituteSynonyms("UTILIZE the system.", lx, g, 1.0); got != "USE the system." {
		t.Errorf("all-caps substitution = %q, want %q", got, "USE the system.")
	}

	g.Seed(1)
	if got := rw.substituteSynonyms("Utilize the system.", lx, g, 1.0); got != "Use the system." {
		t.Errorf("capitalized substitution = %q, want %q", got, "Use the system.")
	}
}

func TestSubstituteSynonyms_LongestKeyFirst(t *testing.T) {
	lx := testLexicon(t, map[string][]string{
		"in order to": {"to"},
		"order":       {"sequence"},
	})
	rw := NewWithLexicons(DefaultOptions(), []*Lexicon{lx})
	g := NewGenerator(1)

	got := rw.substituteSynonyms("we met in order to talk", lx, g, 1.0)
	if strings.Contains(got, "sequence") {
		t.Errorf("multi-word key should outrank its substring key, got %q", got)
	}
	if !strings.Contains(got, "to talk") {
		t.Errorf("expected phrase replacement, got %q", got)
	}
}

func TestSubstituteSynonyms_ProtectsURLsAndEmails(t *testing.T) {
	lx := testLexicon(t, map[string][]string{"very": {"really"}})
	rw := NewWithLexicons(DefaultOptions(), []*Lexicon{lx})

	tests := []struct {
		name     string
		in       string
		keep     string
		replaced bool
	}{
		{
			name:     "url kept verbatim",
			in:       "It is very nice, see https://very.example.com/path for more",
			keep:     "https://very.example.com/path",
			replaced: true,
		},
		{
			name:     "email kept verbatim",
			in:       "Mail very.important@example.com today",
			keep:     "very.important@example.com",
			replaced: false, // the only "very" sits inside the address
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(1)
			got := rw.substituteSynonyms(tt.in, lx, g, 1.0)
			if !strings.Contains(got, tt.keep) {
				t.Errorf("protected span was altered: %q", got)
			}
			if tt.replaced && !strings.Contains(got, "really") {
				t.Errorf("expected substitution outside the span, got %q", got)
			}
			if !tt.replaced && strings.Contains(got, "really") {
				t.Errorf("substitution leaked into a protected span: %q", got)
			}
		})
	}
}

func TestSubstituteSynonyms_Cap(t *testing.T) {
	lx := testLexicon(t, map[string][]string{
		"aaa": {"xxx"},
		"bbb": {"yyy"},
		"ccc": {"zzz"},
	})
	rw := NewWithLexicons(DefaultOptions(), []*Lexicon{lx})
	g := NewGenerator(1)

	// probability 0.5 caps substitutions at max(1, floor(1.0)) = 1.
	// Draws never exceed 1, so with probability 1 every match passes,
	// but here the cap itself is what limits the count.
	got := rw.substituteSynonyms("aaa bbb ccc", lx, g, 0.5)
	count := 0
	for _, repl := range []string{"xxx", "yyy", "zzz"} {
		if strings.Contains(got, repl) {
			count++
		}
	}
	if count > 1 {
		t.Errorf("cap of 1 exceeded: %q has %d substitutions", got, count)
	}
}

func TestSubstitutionCap(t *testing.T) {
	tests := []struct {
		probability float64
		want        int
	}{
		{0.3, 1},
		{0.5, 1},
		{0.6, 1},
		{0.9, 1},
		{1.0, 2},
	}
	for _, tt := range tests {
		if got := substitutionCap(tt.probability); got != tt.want {
			t.Errorf("substitutionCap(%v) = %d, want %d", tt.probability, got, tt.want)
		}
	}
}

func TestApplyContractions(t *testing.T) {
	lexicons := BuiltinLexicons()
	var english *Lexicon
	for _, lx := range lexicons {
		if lx.Language == LangEnglish {
			english = lx
		}
	}
	rw := NewWithLexicons(DefaultOptions(), lexicons)

	tests := []struct {
		in   string
		want string
	}{
		{"We are not going.", "We aren't going."},
		{"It is what it is.", "It's what it's."},
		{"I am sure you are right.", "I'm sure you're right."},
		{"Nothing to contract here.", "Nothing to contract here."},
	}
	for _, tt := range tests {
		if got := rw.applyContractions(tt.in, english); got != tt.want {
			t.Errorf("applyContractions(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyContractions_SuppressedEntry(t *testing.T) {
	lexicons := BuiltinLexicons()
	var dutch *Lexicon
	for _, lx := range lexicons {
		if lx.Language == LangDutch {
			dutch = lx
		}
	}
	rw := NewWithLexicons(DefaultOptions(), lexicons)

	in := "Dat is zo een mooi huis"
	got := rw.applyContractions(in, dutch)
	if !strings.Contains(got, "Dat is") {
		t.Errorf("suppressed entry must be a no-op, got %q", got)
	}
	if !strings.Contains(got, "zo'n") {
		t.Errorf("expected zo'n contraction, got %q", got)
	}
}

func TestExpandContractions(t *testing.T) {
	lexicons := BuiltinLexicons()
	var english *Lexicon
	for _, lx := range lexicons {
		if lx.Language == LangEnglish {
			english = lx
		}
	}
	rw := NewWithLexicons(DefaultOptions(), lexicons)

	if got := rw.expandContractions("We aren't going.", english); got != "We are not going." {
		t.Errorf("expandContractions = %q, want %q", got, "We are not going.")
	}
}
