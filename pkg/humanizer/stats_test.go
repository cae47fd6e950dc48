package humanizer

import "testing"

func TestAnalyze_Identity(t *testing.T) {
	text := "The team shipped the release. Everyone was pleased!"
	report := Analyze(text, text, LangEnglish)

	if report.Similarity != 1.0 {
		t.Errorf("identity similarity = %v, want 1", report.Similarity)
	}
	if report.Lines != 1 {
		t.Errorf("Lines = %d, want 1", report.Lines)
	}
	if report.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", report.Sentences)
	}
	if report.Words != 8 {
		t.Errorf("Words = %d, want 8", report.Words)
	}
}

func TestAnalyze_Shape(t *testing.T) {
	original := "We utilize the system."
	rewritten := "We use the system.\nIt works."
	report := Analyze(original, rewritten, LangEnglish)

	if report.Lines != 2 {
		t.Errorf("Lines = %d, want 2", report.Lines)
	}
	if report.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", report.Sentences)
	}
	if report.Similarity <= 0 || report.Similarity >= 1 {
		t.Errorf("Similarity = %v, want within (0,1)", report.Similarity)
	}
	if len(report.TopStems) == 0 {
		t.Error("expected stem frequencies")
	}
	for _, sc := range report.TopStems {
		if sc.Count < 1 {
			t.Errorf("stem %q has count %d", sc.Stem, sc.Count)
		}
	}
}

func TestAnalyze_AutoResolvesDutchStemmer(t *testing.T) {
	report := Analyze("", "De katten en de kat zijn niet hier.", LangAuto)
	// The Dutch snowball stemmer folds "katten" onto "kat"; the English
	// one would leave them as two separate stems.
	for _, sc := range report.TopStems {
		if sc.Stem == "kat" && sc.Count == 2 {
			return
		}
	}
	t.Errorf("expected Dutch stem %q with count 2, got %v", "kat", report.TopStems)
}

func TestAnalyze_StemFoldsInflections(t *testing.T) {
	report := Analyze("", "ship shipped shipping", LangEnglish)
	// The English snowball stemmer folds all three to one stem.
	if len(report.TopStems) != 1 {
		t.Fatalf("TopStems = %v, want a single folded stem", report.TopStems)
	}
	if report.TopStems[0].Count != 3 {
		t.Errorf("folded count = %d, want 3", report.TopStems[0].Count)
	}
}
