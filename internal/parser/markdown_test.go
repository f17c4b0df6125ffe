package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsAndParagraphs(t *testing.T) {
	input := "# Title\n\nFirst paragraph.\n\n## Section\n\nSecond paragraph."
	p := &MarkdownParser{}
	text, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Title", "First paragraph.", "Section", "Second paragraph."} {
		if !strings.Contains(text, want) {
			t.Errorf("expected text to contain %q, got %q", want, text)
		}
	}
	if strings.Contains(text, "#") {
		t.Errorf("expected markdown syntax stripped, got %q", text)
	}
}

func TestMarkdownParser_ListItems(t *testing.T) {
	input := "- alpha\n- beta\n- gamma\n"
	p := &MarkdownParser{}
	text, err := p.Parse(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"alpha", "beta", "gamma"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected text to contain %q, got %q", want, text)
		}
	}
}

func TestMarkdownParser_Empty(t *testing.T) {
	p := &MarkdownParser{}
	text, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestHTMLParser_BlocksBecomeLines(t *testing.T) {
	input := `<html><head><title>T</title><style>p{}</style></head>
<body><h1>Heading</h1><p>Paragraph one.</p><script>alert(1)</script><p>Paragraph two.</p></body></html>`
	p := &HTMLParser{}
	text, err := p.Parse(strings.NewReader(input), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(text, "\n")
	want := []string{"Heading", "Paragraph one.", "Paragraph two."}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), text)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
	if strings.Contains(text, "alert") {
		t.Errorf("expected script content skipped, got %q", text)
	}
}

func TestCSVParser_RowsBecomeLines(t *testing.T) {
	input := "name,score\nalice,90\nbob,85\n"
	p := &CSVParser{}
	text, err := p.Parse(strings.NewReader(input), "grades.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "name, score\nalice, 90\nbob, 85"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}
