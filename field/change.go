package field

// Change describes one effective mutation of a Field.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	Before        Snapshot
	After         Snapshot
}

// TextChanged reports whether the mutation touched the text, as opposed to
// only moving the selection.
func (c Change) TextChanged() bool {
	return c.Before.Text != c.After.Text
}
