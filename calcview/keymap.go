package calcview

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/calcfield/token"
)

// KeyMap defines the calculator key bindings.
//
// Printable keys without a binding are typed into the field as pasted text,
// so "*" becomes "×" and unknown letters are dropped.
type KeyMap struct {
	Left, Right, Home, End                         key.Binding
	SelectLeft, SelectRight, SelectHome, SelectEnd key.Binding
	SelectAll                                      key.Binding

	Backspace, Clear key.Binding
	Evaluate         key.Binding
	Undo, Redo       key.Binding
	ToggleAngle      key.Binding

	Functions []FunctionKey
}

// FunctionKey inserts Symbol when Binding matches.
type FunctionKey struct {
	Binding key.Binding
	Symbol  string
}

func DefaultKeyMap() KeyMap {
	fn := func(keys, help, sym string) FunctionKey {
		return FunctionKey{Binding: key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help)), Symbol: sym}
	}
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start")),
		End:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "end")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		SelectHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		SelectEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
		Clear:       key.NewBinding(key.WithKeys("esc", "ctrl+l"), key.WithHelp("esc", "clear")),
		Evaluate:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "evaluate")),
		Undo:        key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		ToggleAngle: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "deg/rad")),

		Functions: []FunctionKey{
			fn("alt+s", "sin", token.Sin),
			fn("alt+c", "cos", token.Cos),
			fn("alt+t", "tan", token.Tan),
			fn("alt+S", "asin", token.ArSin),
			fn("alt+C", "acos", token.ArCos),
			fn("alt+T", "atan", token.ArTan),
			fn("alt+l", "ln", token.Ln),
			fn("alt+g", "log", token.Log),
			fn("alt+x", "exp", token.Exp),
			fn("alt+r", "sqrt", token.Sqrt),
			fn("alt+p", "pi", token.Pi),
		},
	}
}

// ShortHelp returns the bindings shown in the status line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Evaluate, km.Backspace, km.Clear, km.ToggleAngle}
}
