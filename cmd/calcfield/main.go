package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/iw2rmb/calcfield"
	"github.com/iw2rmb/calcfield/calc"
	"github.com/iw2rmb/calcfield/calcview"
	"github.com/iw2rmb/calcfield/eval"
	"github.com/iw2rmb/calcfield/field"
	"github.com/iw2rmb/calcfield/format"
)

type options struct {
	locale    string
	precision int
	format    string
	radians   bool
	logPath   string
	version   bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("calcfield", flag.ContinueOnError)
	fs.StringVar(&o.locale, "locale", "en", "BCP 47 tag that picks the grouping and decimal separators")
	fs.IntVar(&o.precision, "precision", 3, "fraction digits kept in results")
	fs.StringVar(&o.format, "format", calc.FormatAllowEngineering.String(), "result format: plain, allow-engineering, force-engineering")
	fs.BoolVar(&o.radians, "radians", false, "evaluate trigonometry in radians")
	fs.StringVar(&o.logPath, "log", "", "append debug logs to this file")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	return o, fs.Parse(args)
}

func sessionConfig(o options) (calc.Config, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return calc.Config{}, fmt.Errorf("locale %q: %w", o.locale, err)
	}
	of, err := calc.ParseOutputFormat(o.format)
	if err != nil {
		return calc.Config{}, err
	}
	cfg := calc.Config{
		Separators: format.SeparatorsFor(tag),
		Precision:  o.precision,
		Format:     of,
	}
	if o.radians {
		cfg.Angle = eval.Radians
	}
	return cfg, nil
}

type model struct {
	calc calcview.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.calc, cmd = m.calc.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.calc.View() }

func run(args []string) error {
	o, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.version {
		fmt.Println(calcfield.Banner())
		return nil
	}

	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, "calcfield")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := sessionConfig(o)
	if err != nil {
		return err
	}
	if o.logPath != "" {
		cfg.OnChange = func(c field.Change) {
			log.Printf("v%d %q %v -> %q %v", c.VersionAfter, c.Before.Text, c.Before.Selection, c.After.Text, c.After.Selection)
		}
	}
	sess, err := calc.New(cfg)
	if err != nil {
		return err
	}
	log.Printf("%s separators=%+v format=%s angle=%s", calcfield.Banner(), sess.Formatter().Separators(), cfg.Format, sess.Angle())

	m := model{calc: calcview.New(calcview.Config{Session: sess, Style: calcview.DefaultStyle()})}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
