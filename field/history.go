package field

type historyState struct {
	undo []Snapshot
	redo []Snapshot
}

func (f *Field) recordUndo(prev Snapshot) {
	limit := f.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	f.hist.undo = append(f.hist.undo, prev)
	if len(f.hist.undo) > limit {
		f.hist.undo = f.hist.undo[len(f.hist.undo)-limit:]
	}
	f.hist.redo = nil
}

func (f *Field) CanUndo() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.hist.undo) > 0
}

func (f *Field) CanRedo() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.hist.redo) > 0
}

// Undo restores the text and selection from before the last edit.
func (f *Field) Undo() bool {
	undone := false
	f.mutate(mutationMove, func() {
		if len(f.hist.undo) == 0 {
			return
		}
		i := len(f.hist.undo) - 1
		prev := f.hist.undo[i]
		f.hist.undo = f.hist.undo[:i]
		f.hist.redo = append(f.hist.redo, f.snapshotLocked())
		f.setLocked(prev.Text, prev.Selection)
		undone = true
	})
	return undone
}

// Redo reapplies the last undone edit.
func (f *Field) Redo() bool {
	redone := false
	f.mutate(mutationMove, func() {
		if len(f.hist.redo) == 0 {
			return
		}
		i := len(f.hist.redo) - 1
		next := f.hist.redo[i]
		f.hist.redo = f.hist.redo[:i]
		f.hist.undo = append(f.hist.undo, f.snapshotLocked())
		f.setLocked(next.Text, next.Selection)
		redone = true
	})
	return redone
}
