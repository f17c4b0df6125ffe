package parser

import (
	"io"
	"path/filepath"
	"strings"
)

// Parser extracts the plain text content of an uploaded document.
// The returned text is what the comparison engine consumes.
type Parser interface {
	Parse(r io.Reader, filename string) (string, error)
}

// ForFile returns the parser for a filename. Unknown extensions fall
// back to plain-text reading so any upload can still be compared.
func ForFile(filename string) Parser {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return &MarkdownParser{}
	case ".csv":
		return &CSVParser{}
	case ".html", ".htm":
		return &HTMLParser{}
	case ".pdf":
		return &PDFParser{}
	case ".docx":
		return &DOCXParser{}
	default:
		return &TextParser{}
	}
}
