package field

import (
	"sync"

	"github.com/iw2rmb/calcfield/format"
	"github.com/iw2rmb/calcfield/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 100; negative disables undo

	// OnChange is called after every effective mutation, outside the lock.
	OnChange func(Change)
}

// Field is the edit buffer of a calculator input: formatted text plus a
// selection. All mutations keep 0 <= Start <= End <= len(text), where
// offsets count characters (grapheme clusters).
//
// Readers may call accessors concurrently with a single writer.
type Field struct {
	mu sync.RWMutex

	fmt   *format.Formatter
	fixer *CursorFixer

	text     string
	clusters []string
	sel      Selection
	version  uint64

	opt    Options
	hist   historyState
	anchor selectionAnchor
}

// New returns an empty field that formats its text with f.
func New(f *format.Formatter, opt Options) *Field {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 100
	}
	return &Field{
		fmt:   f,
		fixer: NewCursorFixer(f.Separators().Grouping),
		opt:   opt,
	}
}

func (f *Field) Formatter() *format.Formatter { return f.fmt }

func (f *Field) Fixer() *CursorFixer { return f.fixer }

// Text returns the formatted text as displayed.
func (f *Field) Text() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.text
}

// Len returns the text length in characters.
func (f *Field) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clusters)
}

// Selection returns the current selection; a caret when Start == End.
func (f *Field) Selection() Selection {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sel
}

// Version increases by one on every mutation that changes text or selection.
func (f *Field) Version() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.version
}

// Snapshot returns text and selection read under one lock.
func (f *Field) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshotLocked()
}

// CanonicalText returns the text without grouping separators and with a dot
// as decimal separator.
func (f *Field) CanonicalText() string {
	return f.fmt.Strip(f.Text())
}

func (f *Field) snapshotLocked() Snapshot {
	return Snapshot{Text: f.text, Selection: f.sel}
}

func (f *Field) setLocked(text string, sel Selection) {
	if text != f.text {
		f.text = text
		f.clusters = grapheme.Split(text)
	}
	n := len(f.clusters)
	sel = sel.Normalize()
	f.sel = Selection{
		Start: clampInt(sel.Start, 0, n),
		End:   clampInt(sel.End, 0, n),
	}
}

type mutationKind uint8

const (
	mutationEdit mutationKind = iota
	mutationMove
)

// mutate runs fn under the write lock. If the snapshot changed, the version is
// bumped, edits are recorded for undo and OnChange fires.
func (f *Field) mutate(kind mutationKind, fn func()) {
	f.mu.Lock()
	before := f.snapshotLocked()
	versionBefore := f.version

	fn()

	after := f.snapshotLocked()
	if after == before {
		f.mu.Unlock()
		return
	}
	if kind == mutationEdit && after.Text != before.Text {
		f.recordUndo(before)
	}
	f.version++
	change := Change{
		VersionBefore: versionBefore,
		VersionAfter:  f.version,
		Before:        before,
		After:         after,
	}
	cb := f.opt.OnChange
	f.mu.Unlock()

	if cb != nil {
		cb(change)
	}
}
