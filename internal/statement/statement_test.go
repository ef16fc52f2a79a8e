package statement

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLines(t *testing.T) {
	doc := "first line\n  second line  \n\nthird line\n"

	lines, err := NewTextSource().ExtractLines(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "first line", lines[0].Text)
	assert.Equal(t, "second line", lines[1].Text)
	assert.Equal(t, "third line", lines[2].Text)
	for i, line := range lines {
		assert.Equal(t, 0, line.Page)
		assert.Equal(t, i, line.Line)
	}
}

func TestExtractLinesPages(t *testing.T) {
	doc := "page one a\npage one b\fpage two a\n"

	lines, err := NewTextSource().ExtractLines(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, 0, lines[0].Page)
	assert.Equal(t, 0, lines[0].Line)
	assert.Equal(t, 1, lines[1].Line)
	assert.Equal(t, 1, lines[2].Page)
	assert.Equal(t, 0, lines[2].Line)
	assert.Equal(t, "page two a", lines[2].Text)
}

func TestExtractLinesEmptyDocument(t *testing.T) {
	lines, err := NewTextSource().ExtractLines(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("corrupt document")
}

func TestExtractLinesReadFailure(t *testing.T) {
	_, err := NewTextSource().ExtractLines(context.Background(), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt document")
}

func TestExtractLinesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTextSource().ExtractLines(ctx, strings.NewReader("a\n"))
	assert.Error(t, err)
}
