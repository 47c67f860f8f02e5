package calcview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcfield/field"
)

// exprRow is the screen row of the expression, relative to the component.
const exprRow = 0

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if !m.focused {
		return m
	}
	f := m.sess.Field()

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != exprRow {
			return m
		}
		pos := layoutLine(f.Text(), m.width).offsetAt(msg.X)
		if msg.Shift {
			sel := f.Selection()
			anchor := sel.Start
			if pos < sel.Start {
				anchor = sel.End
			}
			m.dragAnchor = anchor
			f.MoveCursor(field.Selection{Start: anchor, End: pos})
		} else {
			m.dragAnchor = pos
			f.MoveCursor(field.Caret(pos))
		}
		m.dragging = true

	case tea.MouseActionMotion:
		if !m.dragging {
			return m
		}
		pos := layoutLine(f.Text(), m.width).offsetAt(msg.X)
		f.MoveCursor(field.Selection{Start: m.dragAnchor, End: pos})

	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m
}
