package parser

import (
	"io"
	"strings"
)

// TextParser handles plain text files (and anything without a more
// specific parser). Bytes are decoded best-effort: invalid UTF-8
// sequences are replaced so downstream comparison never sees malformed
// input.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
