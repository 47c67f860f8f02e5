package calcview

import "github.com/iw2rmb/calcfield/calc"

// Config configures the calculator Model.
type Config struct {
	// Session is created with calc defaults when nil.
	Session *calc.Session

	KeyMap KeyMap // default: DefaultKeyMap()
	Style  Style

	// Width is the render width in cells; 0 disables right alignment.
	Width int
}
