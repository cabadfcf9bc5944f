package codeview

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/shiftzeros/internal/present"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type failingTokenizer struct{ calls int }

func (f *failingTokenizer) Tokenize(string, string) ([]Line, error) {
	f.calls++
	return nil, errors.New("boom")
}

type countingTokenizer struct {
	ChromaTokenizer
	calls int
}

func (c *countingTokenizer) Tokenize(source, language string) ([]Line, error) {
	c.calls++
	return c.ChromaTokenizer.Tokenize(source, language)
}

func TestChromaTokenizerKeepsLines(t *testing.T) {
	lines, err := ChromaTokenizer{}.Tokenize(present.Source, present.Language)
	require.NoError(t, err)

	want := strings.Split(present.Source, "\n")
	require.Len(t, lines, len(want))
	for i, l := range lines {
		assert.Equal(t, want[i], l.Text(), "line %d", i)
	}
}

func TestChromaTokenizerClassifies(t *testing.T) {
	lines, err := ChromaTokenizer{}.Tokenize("func main() {}\n", "go")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotEmpty(t, lines[0])

	first := lines[0][0]
	assert.Equal(t, "func", first.Text)
	assert.True(t, strings.HasPrefix(first.Class, "Keyword"), "got class %q", first.Class)
}

func TestChromaTokenizerUnknownLanguage(t *testing.T) {
	lines, err := ChromaTokenizer{}.Tokenize("a\nb\n\nc", "no-such-language")
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "a", lines[0].Text())
	assert.Equal(t, "", lines[2].Text())
	assert.Equal(t, "c", lines[3].Text())
}

func TestRenderMarksHighlightedLines(t *testing.T) {
	r := NewRenderer(ChromaTokenizer{}, DefaultStyle)
	out := ansi.Strip(r.Render(present.Source, present.Language, []int{13, 17}))

	rows := strings.Split(out, "\n")
	require.Len(t, rows, strings.Count(present.Source, "\n")+1)
	for i, row := range rows {
		marked := strings.HasPrefix(row, marker)
		assert.Equal(t, i == 13 || i == 17, marked, "row %d: %q", i, row)
	}
	assert.Contains(t, rows[13], "for index >= 0 {")
	assert.Contains(t, rows[0], " 1 func swap")
}

func TestRenderIgnoresOutOfRange(t *testing.T) {
	r := NewRenderer(ChromaTokenizer{}, DefaultStyle)
	out := ansi.Strip(r.Render("x := 1\ny := 2", "go", []int{-1, 5}))
	assert.NotContains(t, out, marker)
}

func TestRenderDegradesOnTokenizerError(t *testing.T) {
	tok := &failingTokenizer{}
	r := NewRenderer(tok, DefaultStyle)
	out := ansi.Strip(r.Render("one\ntwo", "go", []int{1}))

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	assert.Contains(t, rows[0], "one")
	assert.True(t, strings.HasPrefix(rows[1], marker))
	assert.Contains(t, rows[1], "two")
}

func TestRendererCachesTokens(t *testing.T) {
	tok := &countingTokenizer{}
	r := NewRenderer(tok, DefaultStyle)
	r.Render(present.Source, present.Language, nil)
	r.Render(present.Source, present.Language, []int{1})
	assert.Equal(t, 1, tok.calls)
}

func TestUnknownStyleFallsBack(t *testing.T) {
	r := NewRenderer(ChromaTokenizer{}, "no-such-style")
	assert.NotEmpty(t, r.StyleName())
	assert.Equal(t, DefaultStyle, NewRenderer(ChromaTokenizer{}, DefaultStyle).StyleName())
}
