// Package compare implements the document similarity engine: text
// normalization with raw-offset bookkeeping, an exact substring matcher
// built on rolling hashes, a shingle/Jaccard overlap estimator, and the
// blending of the two into one score with highlighted match spans.
//
// Compare is a pure function. It holds no state between calls and is
// safe to invoke concurrently for independent document pairs.
package compare

import (
	"github.com/hbollon/go-edlib"
)

// MatchSpan is a confirmed overlapping region between the two
// documents. Offsets index the canonical texts; RawTextA/RawTextB are
// the corresponding raw slices; line numbers are 1-based.
type MatchSpan struct {
	StartA, EndA int
	StartB, EndB int
	RawTextA     string
	RawTextB     string
	LineA, LineB int

	// Similarity is a Levenshtein similarity of the two raw slices in
	// [0, 1], reported alongside the span as a match-quality signal.
	// It does not feed into any score.
	Similarity float64
}

// Result is the outcome of comparing two documents. Scores are in
// [0, 100]; spans are ordered by StartA ascending.
type Result struct {
	ExactScore    float64
	ShingleScore  float64
	CombinedScore float64
	Spans         []MatchSpan
}

// Compare runs both similarity algorithms on the two raw texts and
// assembles the blended score and resolved match spans.
func Compare(rawA, rawB []byte) *Result {
	docA := NewDocument(rawA)
	docB := NewDocument(rawB)

	identical := docA.Canonical == docB.Canonical

	matchedFraction, spans := findExactMatches(docA.Canonical, docB.Canonical)
	exact := matchedFraction * 100
	shingle := shingleScore(docA.Canonical, docB.Canonical)

	return &Result{
		ExactScore:    exact,
		ShingleScore:  shingle,
		CombinedScore: combineScores(exact, shingle, identical),
		Spans:         assembleSpans(spans, docA, docB),
	}
}

// assembleSpans resolves matcher spans to raw text slices and line
// numbers in the order the matcher produced them.
func assembleSpans(spans []span, docA, docB *Document) []MatchSpan {
	out := make([]MatchSpan, 0, len(spans))
	for _, s := range spans {
		textA := docA.RawSlice(s.startA, s.endA)
		textB := docB.RawSlice(s.startB, s.endB)
		out = append(out, MatchSpan{
			StartA:     s.startA,
			EndA:       s.endA,
			StartB:     s.startB,
			EndB:       s.endB,
			RawTextA:   textA,
			RawTextB:   textB,
			LineA:      docA.LineNumber(s.startA),
			LineB:      docB.LineNumber(s.startB),
			Similarity: spanSimilarity(textA, textB),
		})
	}
	return out
}

func spanSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return float64(sim)
}
