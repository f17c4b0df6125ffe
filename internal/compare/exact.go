package compare

import "sort"

// Rolling-hash substring matcher. Windows of size windowSize slide over
// text A at windowStride; window hashes are looked up against a table of
// every window hash in text B, verified byte-for-byte, extended to the
// maximal equal run and merged with overlapping spans.
const (
	windowSize   = 8
	windowStride = 4

	hashMod  = 1_000_000_007
	hashBase = 257
)

// span is a pair of matching half-open canonical ranges.
type span struct {
	startA, endA int
	startB, endB int
}

// findExactMatches scans canonical text a against canonical text b and
// returns the fraction of examined windows that matched somewhere in b,
// together with the merged match spans.
func findExactMatches(a, b string) (float64, []span) {
	if a == b {
		return 1.0, []span{{0, len(a), 0, len(b)}}
	}

	if len(a) < windowSize || len(b) < windowSize {
		return shortTextMatch(a, b)
	}

	hashesA := windowHashes(a)
	positionsB := hashPositions(b)

	var spans []span
	examined, matched := 0, 0
	for i := 0; i+windowSize <= len(a); i += windowStride {
		examined++
		hit := false
		for _, p := range positionsB[hashesA[i]] {
			// Hash collisions must never produce a span: verify.
			if a[i:i+windowSize] != b[p:p+windowSize] {
				continue
			}
			hit = true
			spans = mergeSpan(spans, extendSeed(a, b, i, p))
		}
		if hit {
			matched++
		}
	}

	if examined == 0 {
		return 0, nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].startA != spans[j].startA {
			return spans[i].startA < spans[j].startA
		}
		return spans[i].startB < spans[j].startB
	})
	return float64(matched) / float64(examined), spans
}

// shortTextMatch compares the shared prefix position by position when
// either text is below the window size.
func shortTextMatch(a, b string) (float64, []span) {
	minLen := min(len(a), len(b))
	if minLen == 0 {
		return 0, nil
	}
	equal := 0
	for i := 0; i < minLen; i++ {
		if a[i] == b[i] {
			equal++
		}
	}
	return float64(equal) / float64(minLen), []span{{0, minLen, 0, minLen}}
}

// extendSeed grows a verified window match at a[i:i+W] == b[p:p+W]
// outward in both directions to the maximal equal run.
func extendSeed(a, b string, i, p int) span {
	sa, ea := i, i+windowSize
	sb, eb := p, p+windowSize
	for sa > 0 && sb > 0 && a[sa-1] == b[sb-1] {
		sa--
		sb--
	}
	for ea < len(a) && eb < len(b) && a[ea] == b[eb] {
		ea++
		eb++
	}
	return span{sa, ea, sb, eb}
}

// mergeSpan inserts s, widening an existing span to the union when one
// overlaps s on both the A range and the B range. Overlapping seed
// windows one stride apart extend to near-identical runs; merging keeps
// them from piling up as duplicates.
func mergeSpan(spans []span, s span) []span {
	for i := range spans {
		if s.startA <= spans[i].endA && s.endA >= spans[i].startA &&
			s.startB <= spans[i].endB && s.endB >= spans[i].startB {
			spans[i].startA = min(spans[i].startA, s.startA)
			spans[i].endA = max(spans[i].endA, s.endA)
			spans[i].startB = min(spans[i].startB, s.startB)
			spans[i].endB = max(spans[i].endB, s.endB)
			return spans
		}
	}
	return append(spans, s)
}

// windowHashes returns the polynomial hash of every window of length
// windowSize in s, indexed by window start, computed with one rolling
// pass.
func windowHashes(s string) []int64 {
	n := len(s) - windowSize + 1
	hashes := make([]int64, n)

	var high int64 = 1
	for i := 0; i < windowSize-1; i++ {
		high = high * hashBase % hashMod
	}

	var h int64
	for i := 0; i < windowSize; i++ {
		h = (h*hashBase + int64(s[i])) % hashMod
	}
	hashes[0] = h
	for i := 1; i < n; i++ {
		h = (h - int64(s[i-1])*high%hashMod + hashMod) % hashMod
		h = (h*hashBase + int64(s[i+windowSize-1])) % hashMod
		hashes[i] = h
	}
	return hashes
}

// hashPositions maps each window hash in s to the window start
// positions carrying it.
func hashPositions(s string) map[int64][]int {
	hashes := windowHashes(s)
	positions := make(map[int64][]int, len(hashes))
	for i, h := range hashes {
		positions[h] = append(positions[h], i)
	}
	return positions
}
