package humanizer

import "testing"

func TestMatchCase(t *testing.T) {
	tests := []struct {
		source      string
		replacement string
		want        string
	}{
		{"UTILIZE", "use", "USE"},
		{"Utilize", "use", "Use"},
		{"utilize", "use", "use"},
		{"We are", "we're", "We're"},
		{"", "use", "use"},
		{"UTILIZE", "", ""},
		{"123", "456", "456"}, // no letters, no case to mirror
	}

	for _, tt := range tests {
		if got := matchCase(tt.source, tt.replacement); got != tt.want {
			t.Errorf("matchCase(%q, %q) = %q, want %q", tt.source, tt.replacement, got, tt.want)
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"'quoted", "'quoted"},
		{"", ""},
		{"éclair", "Éclair"},
	}
	for _, tt := range tests {
		if got := capitalizeFirst(tt.in); got != tt.want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The ball", "the ball"},
		{"the ball", "the ball"},
		{"NASA", "NASA"}, // acronyms keep their shape
		{"", ""},
	}
	for _, tt := range tests {
		if got := lowerFirst(tt.in); got != tt.want {
			t.Errorf("lowerFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoundaryPattern(t *testing.T) {
	pc := newPatternCache()

	re := pc.boundary("cat")
	if !re.MatchString("the cat sat") {
		t.Error("pattern should match a delimited word")
	}
	if re.MatchString("catalog") {
		t.Error("pattern must not match inside a longer word")
	}
	if !re.MatchString("The CAT sat") {
		t.Error("pattern should be case-insensitive")
	}

	// Keys with non-word edges have no boundary to anchor on that side.
	apostrophe := pc.boundary("'t")
	if !apostrophe.MatchString("dat 't huis") {
		t.Error("apostrophe-leading key should match")
	}
}

func TestBoundaryPatternCache(t *testing.T) {
	pc := newPatternCache()
	first := pc.boundary("in order to")
	second := pc.boundary("in order to")
	if first != second {
		t.Error("compiled pattern should be cached and reused")
	}
}
