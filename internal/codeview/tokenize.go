// Package codeview renders a source listing with selected lines emphasized.
// Tokenizing is delegated to chroma and treated as a black box.
package codeview

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Token is one styled run of text on a line.
type Token struct {
	Text  string
	Class string
	Type  chroma.TokenType
}

// Line is the ordered tokens of one source line, without the newline.
type Line []Token

// Text returns the line's plain text.
func (l Line) Text() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Tokenizer splits source into styled lines.
type Tokenizer interface {
	Tokenize(source, language string) ([]Line, error)
}

// ChromaTokenizer tokenizes with chroma lexers, falling back to plain text
// for unknown languages.
type ChromaTokenizer struct{}

func (ChromaTokenizer) Tokenize(source, language string) ([]Line, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil, err
	}

	split := chroma.SplitTokensIntoLines(it.Tokens())
	lines := make([]Line, 0, len(split))
	for _, raw := range split {
		line := make(Line, 0, len(raw))
		for _, tok := range raw {
			text := strings.TrimRight(tok.Value, "\n")
			if text == "" {
				continue
			}
			line = append(line, Token{Text: text, Class: tok.Type.String(), Type: tok.Type})
		}
		lines = append(lines, line)
	}

	// lexers terminate the input with a newline, which can leave an empty
	// trailing line behind
	if want := lineCount(source); len(lines) > want {
		lines = lines[:want]
	}
	return lines, nil
}

func lineCount(source string) int {
	return len(strings.Split(strings.TrimRight(source, "\n"), "\n"))
}

// plainLines is the degraded tokenization used when a tokenizer fails.
func plainLines(source string) []Line {
	raw := strings.Split(strings.TrimRight(source, "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		if text != "" {
			lines[i] = Line{{Text: text, Class: chroma.Text.String(), Type: chroma.Text}}
		}
	}
	return lines
}
