package calcview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcfield/field"
	"github.com/iw2rmb/calcfield/token"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}
	f := m.sess.Field()

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		f.Paste(string(msg.Runes))
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		f.Move(field.Move{Dir: field.DirLeft})
	case key.Matches(msg, km.Right):
		f.Move(field.Move{Dir: field.DirRight})
	case key.Matches(msg, km.Home):
		f.Move(field.Move{Dir: field.DirHome})
	case key.Matches(msg, km.End):
		f.Move(field.Move{Dir: field.DirEnd})

	case key.Matches(msg, km.SelectLeft):
		f.Move(field.Move{Dir: field.DirLeft, Extend: true})
	case key.Matches(msg, km.SelectRight):
		f.Move(field.Move{Dir: field.DirRight, Extend: true})
	case key.Matches(msg, km.SelectHome):
		f.Move(field.Move{Dir: field.DirHome, Extend: true})
	case key.Matches(msg, km.SelectEnd):
		f.Move(field.Move{Dir: field.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		f.SelectAll()

	case key.Matches(msg, km.Backspace):
		f.Delete()
	case key.Matches(msg, km.Clear):
		f.Clear()
	case key.Matches(msg, km.Evaluate):
		m.sess.Evaluate()
	case key.Matches(msg, km.Undo):
		f.Undo()
	case key.Matches(msg, km.Redo):
		f.Redo()
	case key.Matches(msg, km.ToggleAngle):
		m.sess.ToggleAngle()

	default:
		for _, fk := range km.Functions {
			if key.Matches(msg, fk.Binding) {
				f.Insert(fk.Symbol)
				return m
			}
		}
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
			m.typeRunes(msg.Runes)
		}
	}
	return m
}

// typeRunes inserts keyboard input. Both "." and "," type the decimal
// separator, as on a calculator keypad.
func (m Model) typeRunes(runes []rune) {
	f := m.sess.Field()
	s := string(runes)
	if s == token.Dot || s == token.Comma {
		f.Insert(m.sess.Formatter().Separators().Decimal)
		return
	}
	f.Paste(s)
}
