package humanizer

import "testing"

func TestDetectLanguage(t *testing.T) {
	lexicons := BuiltinLexicons()

	tests := []struct {
		name string
		text string
		want Lang
	}{
		{
			name: "english",
			text: "The quick brown fox jumped over the fence and it was not even tired at this point.",
			want: LangEnglish,
		},
		{
			name: "dutch",
			text: "Het is een mooie dag en ik ga met de fiets naar het werk omdat de zon schijnt.",
			want: LangDutch,
		},
		{
			name: "tie resolves to dutch",
			text: "zebra giraffe",
			want: LangDutch,
		},
		{
			name: "empty",
			text: "",
			want: LangDutch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text, lexicons); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectLanguage_WindowLimit(t *testing.T) {
	// Dutch markers beyond the 800-character window must not count.
	prefix := "The cat sat on the mat with the dog and it was not this or that. "
	var text string
	for len(text) < 900 {
		text += prefix
	}
	text += " de het een en van ik je niet dat is op te met voor zijn"

	if got := DetectLanguage(text, BuiltinLexicons()); got != LangEnglish {
		t.Errorf("DetectLanguage with trailing Dutch = %v, want %v", got, LangEnglish)
	}
}
