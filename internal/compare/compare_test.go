package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_IdenticalTexts(t *testing.T) {
	text := []byte("the quick brown fox")
	res := Compare(text, text)

	assert.Equal(t, 100.0, res.CombinedScore)
	assert.Equal(t, 100.0, res.ExactScore)
	assert.Equal(t, 100.0, res.ShingleScore)

	require.Len(t, res.Spans, 1)
	sp := res.Spans[0]
	assert.Equal(t, 0, sp.StartA)
	assert.Equal(t, len("the quick brown fox"), sp.EndA)
	assert.Equal(t, "the quick brown fox", sp.RawTextA)
	assert.Equal(t, "the quick brown fox", sp.RawTextB)
	assert.Equal(t, 1, sp.LineA)
	assert.Equal(t, 1, sp.LineB)
	assert.Equal(t, 1.0, sp.Similarity)
}

func TestCompare_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := []byte("The Quick   Brown\tFox")
	b := []byte("the quick brown fox")
	res := Compare(a, b)

	// Canonically identical.
	assert.Equal(t, 100.0, res.CombinedScore)
	require.Len(t, res.Spans, 1)
	// Raw slices come from each document's own raw text.
	assert.Equal(t, "The Quick   Brown\tFox", res.Spans[0].RawTextA)
	assert.Equal(t, "the quick brown fox", res.Spans[0].RawTextB)
}

func TestCompare_CompletelyDifferent(t *testing.T) {
	res := Compare([]byte("abcdefgh"), []byte("xxxxxxxx"))
	assert.Equal(t, 0.0, res.ExactScore)
	assert.Equal(t, 0.0, res.ShingleScore)
	assert.Equal(t, 0.0, res.CombinedScore)
	assert.Empty(t, res.Spans)
}

func TestCompare_BothEmpty(t *testing.T) {
	res := Compare(nil, nil)
	assert.Equal(t, 100.0, res.CombinedScore)
}

func TestCompare_EmbeddedSharedSentence(t *testing.T) {
	sentence := "this exact sentence appears in both files"
	a := []byte("0000000000 1111111111\n" + sentence + " 2222222222")
	b := []byte(sentence + " zzzzzzzzzz qqqqqqqqqq")

	res := Compare(a, b)
	assert.Greater(t, res.CombinedScore, 0.0)
	assert.Less(t, res.CombinedScore, 100.0)

	require.Len(t, res.Spans, 1)
	sp := res.Spans[0]
	assert.Contains(t, sp.RawTextA, sentence)
	assert.Contains(t, sp.RawTextB, sentence)
	assert.Equal(t, 2, sp.LineA)
	assert.Equal(t, 1, sp.LineB)
}

func TestCompare_SpansNeverContainMismatches(t *testing.T) {
	a := []byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\nSed do eiusmod tempor incididunt ut labore.")
	b := []byte("Unrelated intro text. Sed do eiusmod tempor incididunt ut labore. Unrelated tail.")

	res := Compare(a, b)
	docA := NewDocument(a)
	docB := NewDocument(b)
	require.NotEmpty(t, res.Spans)
	for _, sp := range res.Spans {
		assert.Greater(t, sp.EndA, sp.StartA)
		assert.Greater(t, sp.EndB, sp.StartB)
		assert.Equal(t,
			docA.Canonical[sp.StartA:sp.EndA],
			docB.Canonical[sp.StartB:sp.EndB])
	}
}

func TestCompare_InvalidUTF8DoesNotPanic(t *testing.T) {
	a := []byte{0xff, 0xfe, 'h', 'e', 'l', 'l', 'o'}
	b := []byte("hello")
	res := Compare(a, b)
	assert.GreaterOrEqual(t, res.CombinedScore, 0.0)
	assert.LessOrEqual(t, res.CombinedScore, 100.0)
}

func TestCompare_SpanSimilarityAnnotation(t *testing.T) {
	shared := strings.Repeat("matching segment ", 3)
	a := []byte("AAAA1234 " + shared + "56789")
	b := []byte("BBBBBB " + shared + "0000000")

	res := Compare(a, b)
	require.NotEmpty(t, res.Spans)
	for _, sp := range res.Spans {
		assert.GreaterOrEqual(t, sp.Similarity, 0.0)
		assert.LessOrEqual(t, sp.Similarity, 1.0)
	}
}
