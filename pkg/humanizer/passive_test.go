package humanizer

import "testing"

func TestPassiveToActive_English(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple past passive",
			in:   "The ball was thrown by John.",
			want: "John thrown the ball.",
		},
		{
			name: "perfect passive",
			in:   "The report has been reviewed by the committee.",
			want: "The committee reviewed the report.",
		},
		{
			name: "progressive passive",
			in:   "The house is being cleaned by the crew.",
			want: "The crew is cleaning the house.",
		},
		{
			name: "progressive suffix fallback",
			in:   "The song is being hummed by the choir!",
			want: "The choir is humming the song!",
		},
		{
			name: "no passive construction",
			in:   "The sun rises in the east.",
			want: "The sun rises in the east.",
		},
		{
			name: "no agent clause",
			in:   "The window was broken.",
			want: "The window was broken.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := passiveToActive(tt.in, LangEnglish); got != tt.want {
				t.Errorf("passiveToActive(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPassiveToActive_Dutch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Het boek werd gelezen door Jan.", "Jan gelezen het boek."},
		{"De brief wordt geschreven door Anna.", "Anna geschreven de brief."},
		{"De zon schijnt vandaag.", "De zon schijnt vandaag."},
	}
	for _, tt := range tests {
		if got := passiveToActive(tt.in, LangDutch); got != tt.want {
			t.Errorf("passiveToActive(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPassiveToActive_UnknownLanguage(t *testing.T) {
	in := "The ball was thrown by John."
	if got := passiveToActive(in, Lang("xx")); got != in {
		t.Errorf("unknown language should be a no-op, got %q", got)
	}
}

func TestProgressive(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cleaned", "cleaning"},
		{"hummed", "humming"},
		{"running", "running"},
		{"paint", "painting"},
	}
	for _, tt := range tests {
		if got := progressive(tt.in); got != tt.want {
			t.Errorf("progressive(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetachPunct(t *testing.T) {
	tests := []struct {
		in    string
		body  string
		punct string
	}{
		{"Hello.", "Hello", "."},
		{"Wait!!", "Wait", "!!"},
		{"Really?!", "Really", "?!"},
		{"no punctuation", "no punctuation", ""},
	}
	for _, tt := range tests {
		body, punct := detachPunct(tt.in)
		if body != tt.body || punct != tt.punct {
			t.Errorf("detachPunct(%q) = (%q, %q), want (%q, %q)",
				tt.in, body, punct, tt.body, tt.punct)
		}
	}
}
