package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shiftzeros/internal/present"
)

const (
	arrowDown = "▼"
	arrowUp   = "▲"
	markDot   = "•"
)

func (m Model) View() string {
	vm := present.Present(m.machine.State())
	s := m.styles

	var b strings.Builder
	b.WriteString(s.title.Render("SHIFT ZEROS LEFT"))
	b.WriteString("\n")
	b.WriteString(s.subtle.Width(min(m.width, 72)).Render(present.Intro))
	b.WriteString("\n\n")

	b.WriteString(m.grid(vm))
	b.WriteString("\n\n")
	b.WriteString(s.caption.Render(vm.Caption))
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(s.Separator(min(m.width, 72)))
	b.WriteString("\n")

	b.WriteString(s.header.Render("Code"))
	b.WriteString("\n")
	b.WriteString(s.panel.Render(m.code.Render(present.Source, present.Language, vm.Highlighted)))
	b.WriteString("\n")
	b.WriteString(s.header.Render("Real World"))
	b.WriteString("\n")
	b.WriteString(s.panel.Render(m.code.Render(present.RealWorld, present.Language, nil)))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// grid draws the arrows, the cells and the marks, one column per cell.
func (m Model) grid(vm present.ViewModel) string {
	s := m.styles
	n := len(vm.Cells)

	above := make([]string, n)
	below := make([]string, n)
	marks := make([]string, n)
	cells := make([]string, 0, 2*n)

	for i, c := range vm.Cells {
		above[i] = column("")
		below[i] = column("")
		marks[i] = column("")
		if vm.CurrentArrow.Visible && vm.CurrentArrow.Position == i {
			above[i] = s.current.Render(column(arrowDown))
		}
		if vm.TargetArrow.Visible && vm.TargetArrow.Position == i {
			below[i] = s.target.Render(column(arrowUp))
		}
		if c.Marked {
			marks[i] = s.mark.Render(column(markDot))
		}

		if i > 0 {
			cells = append(cells, " ")
		}
		cells = append(cells, s.cells[c.Kind].Render(fmt.Sprintf("%d", c.Number)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(above, " "),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
		strings.Join(marks, " "),
		strings.Join(below, " "),
	)
}

func column(s string) string {
	return lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, s)
}

func (m Model) status() string {
	s := m.styles
	mode := s.manual.Render("● MANUAL")
	if m.automated {
		mode = s.auto.Render("▶ AUTOMATED")
	}
	state := m.machine.State()
	ctx := state.Context()
	return fmt.Sprintf("%s  %s",
		mode,
		s.subtle.Render(fmt.Sprintf("state %s │ current %d │ zeros %d │ theme %s",
			state.Name(), ctx.Current, ctx.Zeros, m.theme.Name)),
	)
}
