package calcview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/calcfield/calc"
)

// Model is a Bubble Tea component that edits and evaluates a calculator
// expression.
type Model struct {
	cfg  Config
	sess *calc.Session

	focused bool
	width   int

	output      string
	lastVersion uint64
	lastAngle   string

	dragAnchor int
	dragging   bool
}

// New returns a focused Model. It panics only when cfg.Session is nil and the
// default calc configuration fails, which cannot happen.
func New(cfg Config) Model {
	if cfg.Session == nil {
		s, err := calc.New(calc.Config{})
		if err != nil {
			panic(err)
		}
		cfg.Session = s
	}
	if len(cfg.KeyMap.Backspace.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:     cfg,
		sess:    cfg.Session,
		focused: true,
		width:   cfg.Width,
	}
	m.refresh()
	return m
}

func (m Model) Session() *calc.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.dragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Output is the result line as last computed.
func (m Model) Output() string { return m.output }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	case tea.KeyMsg:
		m = m.updateKey(msg)
	}
	m.refresh()
	return m, nil
}

// refresh recomputes the result line when the text or the angle mode changed.
func (m *Model) refresh() {
	v := m.sess.Field().Version()
	a := m.sess.Angle().String()
	if v == m.lastVersion && a == m.lastAngle && m.lastAngle != "" {
		return
	}
	m.lastVersion = v
	m.lastAngle = a
	m.output = m.sess.Output()
}
