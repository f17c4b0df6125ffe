package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestTextParser_Passthrough(t *testing.T) {
	input := "First line.\nSecond line.\n\nFourth line."
	p := &TextParser{}
	text, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != input {
		t.Errorf("expected passthrough, got %q", text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	text, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestTextParser_InvalidUTF8Replaced(t *testing.T) {
	p := &TextParser{}
	text, err := p.Parse(strings.NewReader("ok\xff\xfebytes"), "bin.dat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "ok") || !strings.Contains(text, "bytes") {
		t.Errorf("expected surviving text, got %q", text)
	}
	if strings.ContainsRune(text, 0xff) {
		t.Errorf("expected invalid bytes replaced, got %q", text)
	}
}

func TestForFile_FallbackToText(t *testing.T) {
	for _, name := range []string{"a.txt", "a.log", "a", "a.unknown"} {
		if _, ok := ForFile(name).(*TextParser); !ok {
			t.Errorf("%s: expected TextParser fallback", name)
		}
	}
}

func TestForFile_KnownExtensions(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"doc.md", "*parser.MarkdownParser"},
		{"doc.markdown", "*parser.MarkdownParser"},
		{"doc.csv", "*parser.CSVParser"},
		{"doc.html", "*parser.HTMLParser"},
		{"doc.HTM", "*parser.HTMLParser"},
		{"doc.pdf", "*parser.PDFParser"},
		{"doc.docx", "*parser.DOCXParser"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf("%T", ForFile(tt.name)); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}
}
