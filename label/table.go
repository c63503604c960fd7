package label

// Table is an append-only, deduplicating, ordered sequence of labels. The
// insertion index is the label's stable identifier for the lifetime of the
// Table (until Compress rebuilds it into a new Table with a new index
// space — see Compress).
//
// Table is not safe for concurrent use; the discovery core is
// single-threaded and never needs it to be.
type Table struct {
	labels []Label
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Store returns the index of lbl, appending it if not already present.
// Complexity: O(n) — see package doc for why this is the documented
// contract, not an oversight.
func (t *Table) Store(lbl Label) int {
	if idx, ok := t.Lookup(lbl); ok {
		return idx
	}
	t.labels = append(t.labels, lbl)

	return len(t.labels) - 1
}

// Lookup returns the index of lbl and true if present, or (0, false).
// Complexity: O(n).
func (t *Table) Lookup(lbl Label) (int, bool) {
	for i, x := range t.labels {
		if x.Equal(lbl) {
			return i, true
		}
	}

	return 0, false
}

// At returns the label stored at idx, or ErrIndexOutOfRange.
func (t *Table) At(idx int) (Label, error) {
	if idx < 0 || idx >= len(t.labels) {
		return Label{}, ErrIndexOutOfRange
	}

	return t.labels[idx], nil
}

// Count returns the number of labels currently stored.
func (t *Table) Count() int { return len(t.labels) }

// Compress rebuilds the table to contain only the labels whose index is
// marked true in referenced (len(referenced) must equal t.Count()), in
// their original relative order, and returns the new table together with a
// translation slice mapping every old index to its new index, or to -1 if
// the label was dropped. Graphs that shared this table must be rewritten
// through the translation before the old Table is discarded — Table itself
// has no back-reference to any Graph, by design (see the Lifecycle note:
// "old graph is discarded... all references in Parameters updated
// atomically").
func (t *Table) Compress(referenced []bool) (*Table, []int) {
	next := NewTable()
	translation := make([]int, len(t.labels))
	for i, lbl := range t.labels {
		if i < len(referenced) && referenced[i] {
			translation[i] = next.Store(lbl)
		} else {
			translation[i] = -1
		}
	}

	return next, translation
}
