package compare

import "github.com/cespare/xxhash/v2"

// Shingle/Jaccard set-overlap estimator. Each canonical text is reduced
// to the set of its contiguous shingleSize-byte substrings; the score is
// the Jaccard similarity of the two sets. Shingles are stored as xxhash
// digests rather than strings, which bounds memory without changing the
// set semantics.
const shingleSize = 3

// Low-similarity boost: raw Jaccard scores in (0, boostThreshold) are
// rescaled to boostThreshold + boostScale*raw so weak partial overlaps
// are not reported as near-zero. The threshold and scale are policy
// constants inherited for compatibility, not derived values.
const (
	boostThreshold = 20.0
	boostScale     = 0.8
)

// shingleScore returns the set-overlap similarity of the two canonical
// texts in [0, 100].
func shingleScore(a, b string) float64 {
	if a == b {
		return 100
	}

	setA := shingleSet(a)
	setB := shingleSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 100
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter := 0
	for sh := range setA {
		if _, ok := setB[sh]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return lowSimilarityBoost(float64(inter) * 100 / float64(union))
}

func shingleSet(s string) map[uint64]struct{} {
	if len(s) < shingleSize {
		return nil
	}
	set := make(map[uint64]struct{}, len(s)-shingleSize+1)
	for i := 0; i+shingleSize <= len(s); i++ {
		set[xxhash.Sum64String(s[i:i+shingleSize])] = struct{}{}
	}
	return set
}

func lowSimilarityBoost(raw float64) float64 {
	if raw > 0 && raw < boostThreshold {
		return boostThreshold + boostScale*raw
	}
	return raw
}
