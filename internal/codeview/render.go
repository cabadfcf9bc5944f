package codeview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

const (
	marker   = "▶"
	noMarker = " "
)

// Renderer draws listings with a line number gutter. Emphasized lines get a
// marker in the gutter and a background.
type Renderer struct {
	tok      Tokenizer
	style    *chroma.Style
	Emphasis lipgloss.Color
	Gutter   lipgloss.Color

	mu    sync.Mutex
	cache map[string][]Line
}

// NewRenderer returns a renderer over tok using the named chroma style.
// Unknown style names fall back to chroma's default.
func NewRenderer(tok Tokenizer, styleName string) *Renderer {
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}
	return &Renderer{
		tok:      tok,
		style:    style,
		Emphasis: lipgloss.Color("#3a3a3a"),
		Gutter:   lipgloss.Color("#666688"),
		cache:    make(map[string][]Line),
	}
}

// StyleName returns the chroma style in use.
func (r *Renderer) StyleName() string { return r.style.Name }

// Lines tokenizes source, caching the result. A failing tokenizer degrades
// to unstyled lines.
func (r *Renderer) Lines(source, language string) []Line {
	key := language + "\x00" + source

	r.mu.Lock()
	defer r.mu.Unlock()
	if lines, ok := r.cache[key]; ok {
		return lines
	}
	lines, err := r.tok.Tokenize(source, language)
	if err != nil {
		lines = plainLines(source)
	}
	r.cache[key] = lines
	return lines
}

// Render returns the listing with the given zero-based lines emphasized.
// Indices outside the listing are ignored.
func (r *Renderer) Render(source, language string, highlighted []int) string {
	lines := r.Lines(source, language)
	hl := make(map[int]bool, len(highlighted))
	for _, i := range highlighted {
		hl[i] = true
	}

	width := 0
	for _, l := range lines {
		if w := lipgloss.Width(expandTabs(l.Text())); w > width {
			width = w
		}
	}

	gutter := lipgloss.NewStyle().Foreground(r.Gutter)
	digits := len(fmt.Sprint(len(lines)))

	out := make([]string, len(lines))
	for i, line := range lines {
		mark := noMarker
		if hl[i] {
			mark = marker
		}
		num := gutter.Render(fmt.Sprintf("%s %*d ", mark, digits, i+1))
		out[i] = num + r.renderLine(line, hl[i], width)
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) renderLine(line Line, emphasized bool, width int) string {
	var b strings.Builder
	for _, tok := range line {
		b.WriteString(r.tokenStyle(tok.Type, emphasized).Render(expandTabs(tok.Text)))
	}
	if pad := width - lipgloss.Width(expandTabs(line.Text())); emphasized && pad > 0 {
		b.WriteString(lipgloss.NewStyle().Background(r.Emphasis).Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

func (r *Renderer) tokenStyle(t chroma.TokenType, emphasized bool) lipgloss.Style {
	entry := r.style.Get(t)
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if emphasized {
		s = s.Background(r.Emphasis)
	}
	return s
}

func expandTabs(s string) string { return strings.ReplaceAll(s, "\t", "    ") }
