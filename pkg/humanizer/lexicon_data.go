package humanizer

// Built-in English and Dutch lexicons. These are the two worked rule
// sets; additional languages plug in through LoadLexicon or
// NewWithLexicons without touching the pipeline.

func englishLexicon() *Lexicon {
	return &Lexicon{
		Language: LangEnglish,
		Synonyms: map[string][]string{
			"due to the fact that":  {"because"},
			"at this point in time": {"right now", "now"},
			"in order to":           {"to"},
			"approximately":         {"about", "roughly"},
			"additionally":          {"also", "plus"},
			"furthermore":           {"also", "besides"},
			"immediately":           {"right away", "at once"},
			"demonstrate":           {"show"},
			"sufficient":            {"enough"},
			"frequently":            {"often"},
			"consequently":          {"so"},
			"however":               {"but", "though"},
			"therefore":             {"so"},
			"numerous":              {"many", "a lot of"},
			"terminate":             {"end", "stop"},
			"commence":              {"begin", "start"},
			"purchase":              {"buy"},
			"difficult":             {"hard", "tough"},
			"excellent":             {"great"},
			"important":             {"key"},
			"utilize":               {"use", "employ"},
			"attempt":               {"try"},
			"obtain":                {"get"},
			"assist":                {"help"},
			"require":               {"need"},
			"very":                  {"really"},
		},
		Contractions: map[string]string{
			"are not":    "aren't",
			"is not":     "isn't",
			"do not":     "don't",
			"does not":   "doesn't",
			"did not":    "didn't",
			"cannot":     "can't",
			"can not":    "can't",
			"will not":   "won't",
			"would not":  "wouldn't",
			"could not":  "couldn't",
			"should not": "shouldn't",
			"have not":   "haven't",
			"has not":    "hasn't",
			"it is":      "it's",
			"that is":    "that's",
			"we are":     "we're",
			"they are":   "they're",
			"you are":    "you're",
			"i am":       "i'm",
			"we will":    "we'll",
			"i will":     "i'll",
		},
		Expansions: map[string]string{
			"aren't":    "are not",
			"isn't":     "is not",
			"don't":     "do not",
			"doesn't":   "does not",
			"didn't":    "did not",
			"can't":     "cannot",
			"won't":     "will not",
			"wouldn't":  "would not",
			"couldn't":  "could not",
			"shouldn't": "should not",
			"haven't":   "have not",
			"hasn't":    "has not",
			"it's":      "it is",
			"that's":    "that is",
			"we're":     "we are",
			"they're":   "they are",
			"you're":    "you are",
			"i'm":       "i am",
			"we'll":     "we will",
			"i'll":      "i will",
		},
		Conjunctions: []string{"and", "but", "so"},
		Markers: []string{
			"the", "be", "to", "of", "and", "a", "in", "that", "have",
			"it", "for", "not", "on", "with", "he", "as", "you", "do",
			"at", "this",
		},
		TailPhrase:   ", which is worth keeping in mind",
		FriendlyTail: ", you know",
	}
}

func dutchLexicon() *Lexicon {
	return &Lexicon{
		Language: LangDutch,
		Synonyms: map[string][]string{
			"onmiddellijk": {"meteen", "direct"},
			"beëindigen":   {"stoppen", "afronden"},
			"verschaffen":  {"geven"},
			"verkrijgen":   {"krijgen"},
			"gedurende":    {"tijdens"},
			"aanvangen":    {"beginnen"},
			"voldoende":    {"genoeg"},
			"derhalve":     {"dus", "daarom"},
			"wellicht":     {"misschien"},
			"trachten":     {"proberen"},
			"alvorens":     {"voordat"},
			"teneinde":     {"om"},
			"ongeveer":     {"zo'n", "circa"},
			"benodigd":     {"nodig"},
			"omtrent":      {"over"},
			"diverse":      {"verschillende"},
			"tevens":       {"ook"},
			"echter":       {"maar"},
			"indien":       {"als"},
			"reeds":        {"al"},
			"zeer":         {"erg", "heel"},
		},
		Contractions: map[string]string{
			"zo een": "zo'n",
			// Suppressed on purpose: "dat's" reads as sloppy Dutch.
			"dat is": "dat is",
		},
		Expansions: map[string]string{
			"zo'n": "zo een",
			"'t":   "het",
			"'n":   "een",
		},
		Conjunctions: []string{"en", "maar", "dus", "omdat"},
		Markers: []string{
			"de", "het", "een", "en", "van", "ik", "je", "niet", "dat",
			"is", "op", "te", "met", "voor", "zijn", "er", "maar", "om",
			"ook", "als",
		},
		TailPhrase:   ", wat goed is om te onthouden",
		FriendlyTail: ", hè",
	}
}

// BuiltinLexicons returns freshly compiled English and Dutch lexicons,
// Dutch first so detection ties resolve to Dutch.
func BuiltinLexicons() []*Lexicon {
	dutch := dutchLexicon()
	english := englishLexicon()
	for _, lx := range []*Lexicon{dutch, english} {
		if err := lx.Compile(); err != nil {
			// Built-in tables are static and known-good; a compile
			// failure here is a programming error.
			panic(err)
		}
	}
	return []*Lexicon{dutch, english}
}
