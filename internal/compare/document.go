package compare

import (
	"sort"
	"strings"
)

// Document holds one input text in both its raw and canonical forms.
// The canonical form is what the matchers operate on; the offset map
// carries every canonical position back to the raw byte it came from.
// A Document is built once per comparison and never mutated.
type Document struct {
	Raw        string
	Canonical  string
	OffsetMap  []int // one entry per canonical byte: originating raw index
	LineStarts []int // canonical offsets where each line begins
}

// NewDocument decodes raw bytes (lossily, replacing invalid UTF-8) and
// builds the canonical comparison form:
//   - runs of space/tab/CR collapse to a single space, mapped to the raw
//     index of the first character in the run
//   - newlines pass through verbatim and delimit lines
//   - everything else is ASCII-lowercased and copied through
func NewDocument(raw []byte) *Document {
	text := strings.ToValidUTF8(string(raw), "�")

	var canonical strings.Builder
	canonical.Grow(len(text))
	offsetMap := make([]int, 0, len(text))
	lineStarts := []int{0}

	inSpaceRun := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\n':
			canonical.WriteByte('\n')
			offsetMap = append(offsetMap, i)
			lineStarts = append(lineStarts, canonical.Len())
			inSpaceRun = false
		case c == ' ' || c == '\t' || c == '\r':
			if !inSpaceRun {
				canonical.WriteByte(' ')
				offsetMap = append(offsetMap, i)
				inSpaceRun = true
			}
		default:
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			canonical.WriteByte(c)
			offsetMap = append(offsetMap, i)
			inSpaceRun = false
		}
	}

	return &Document{
		Raw:        text,
		Canonical:  canonical.String(),
		OffsetMap:  offsetMap,
		LineStarts: lineStarts,
	}
}

// LineNumber returns the 1-based line containing canonical offset p.
// Offsets past the end of the last line report the final line.
func (d *Document) LineNumber(p int) int {
	if p < 0 {
		p = 0
	}
	// Greatest i with LineStarts[i] <= p.
	i := sort.Search(len(d.LineStarts), func(i int) bool {
		return d.LineStarts[i] > p
	})
	if i == 0 {
		return 1
	}
	return i
}

// RawSlice maps the canonical half-open range [start, end) back to the
// raw text via the offset map. Empty or inverted ranges, and ranges
// outside the canonical text, yield "".
func (d *Document) RawSlice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.OffsetMap) {
		end = len(d.OffsetMap)
	}
	if start >= end {
		return ""
	}
	rawStart := d.OffsetMap[start]
	rawEnd := d.OffsetMap[end-1] + 1
	if rawEnd > len(d.Raw) {
		rawEnd = len(d.Raw)
	}
	if rawStart >= rawEnd {
		return ""
	}
	return d.Raw[rawStart:rawEnd]
}

// LineText returns the full raw text of the 1-based line, without its
// trailing newline. Used to give highlights line-level context.
func (d *Document) LineText(line int) string {
	if line < 1 || line > len(d.LineStarts) {
		return ""
	}
	start := d.LineStarts[line-1]
	end := len(d.Canonical)
	if line < len(d.LineStarts) {
		end = d.LineStarts[line] - 1 // exclude the newline itself
	}
	return strings.TrimRight(d.RawSlice(start, end), "\r\n")
}
