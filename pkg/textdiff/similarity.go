package textdiff

import "github.com/sergi/go-diff/diffmatchpatch"

// Similarity returns a Levenshtein ratio between two texts in [0, 1]:
// 1 - distance/maxLength. Identical texts score 1; an empty text
// against a non-empty one scores 0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)

	maxLen := max(len(a), len(b))
	return 1.0 - float64(distance)/float64(maxLen)
}
