package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shiftzeros/internal/present"
)

const cellWidth = 6

type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	caption  lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	auto     lipgloss.Style
	manual   lipgloss.Style
	current  lipgloss.Style
	target   lipgloss.Style
	mark     lipgloss.Style
	cells    map[present.CellKind]lipgloss.Style
	keyHint  lipgloss.Style
	keyLabel lipgloss.Style
}

func newStyles(th Theme) styles {
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Bold(true).
		Padding(1, 0)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Accent),
		subtle: lipgloss.NewStyle().
			Foreground(th.Muted),
		caption: lipgloss.NewStyle().
			Foreground(th.Text).
			Italic(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Muted).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(th.Muted),
		auto: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Success),
		manual: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.Primary),
		current: lipgloss.NewStyle().Foreground(th.Secondary).Bold(true),
		target:  lipgloss.NewStyle().Foreground(th.Muted).Bold(true),
		mark:    lipgloss.NewStyle().Foreground(th.Muted),
		cells: map[present.CellKind]lipgloss.Style{
			present.KindComplete: cell.Background(th.Success).Foreground(lipgloss.Color("#ffffff")),
			present.KindCurrent:  cell.Background(th.Secondary).Foreground(lipgloss.Color("#ffffff")),
			present.KindTarget:   cell.Background(th.Muted).Foreground(lipgloss.Color("#ffffff")),
			present.KindDefault:  cell.Background(th.Surface).Foreground(th.Text),
		},
		keyHint:  lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		keyLabel: lipgloss.NewStyle().Foreground(th.Muted),
	}
}

// Separator draws a decorative rule.
func (s styles) Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return s.subtle.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.subtle.Render(left + " ◆ " + right)
}
