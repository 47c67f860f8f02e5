package calcview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	lines := []string{
		m.renderExpr(),
		m.alignRight(m.cfg.Style.Output.Render(m.output)),
		m.alignRight(m.renderStatus()),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderExpr() string {
	f := m.sess.Field()
	st := m.cfg.Style
	sel := f.Selection()
	l := layoutLine(f.Text(), m.width)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", l.pad))
	for i, g := range l.clusters {
		switch {
		case m.focused && sel.IsCaret() && i == sel.End:
			sb.WriteString(st.Cursor.Render(g))
		case i >= sel.Start && i < sel.End:
			sb.WriteString(st.Selection.Render(g))
		default:
			sb.WriteString(st.Text.Render(g))
		}
	}
	// Caret slot after the last cluster.
	if m.focused && sel.IsCaret() && sel.End == len(l.clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	} else {
		sb.WriteString(" ")
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	parts := []string{m.sess.Angle().String()}
	for _, b := range m.cfg.KeyMap.ShortHelp() {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.cfg.Style.Status.Render(strings.Join(parts, "  "))
}

func (m Model) alignRight(s string) string {
	w := lipgloss.Width(s)
	if m.width <= w {
		return s
	}
	return strings.Repeat(" ", m.width-w) + s
}
