// Package statement turns an extracted statement document into the ordered
// line sequence the format parsers consume.
package statement

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/smartfin/statement-importer/internal/types"
)

// LineSource produces the statement's text as ordered lines grouped by page.
// A source that cannot read the document returns an error for the whole
// import; it never returns partial output alongside an error.
type LineSource interface {
	ExtractLines(ctx context.Context, doc io.Reader) ([]types.RawLine, error)
}

// TextSource reads plain-text statement exports. Pages are separated by
// form feeds; blank lines are dropped and the rest are trimmed, matching
// the shape of text extracted from the original documents.
type TextSource struct{}

// NewTextSource creates a plain-text line source.
func NewTextSource() *TextSource {
	return &TextSource{}
}

// ExtractLines reads the whole document and splits it into RawLines.
func (s *TextSource) ExtractLines(ctx context.Context, doc io.Reader) ([]types.RawLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(doc)
	if err != nil {
		return nil, fmt.Errorf("reading statement document: %w", err)
	}

	var lines []types.RawLine
	for page, pageText := range strings.Split(string(data), "\f") {
		scanner := bufio.NewScanner(strings.NewReader(pageText))
		idx := 0
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			lines = append(lines, types.RawLine{Text: text, Page: page, Line: idx})
			idx++
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("scanning statement page %d: %w", page, err)
		}
	}

	return lines, nil
}

var _ LineSource = (*TextSource)(nil)
