package game

// History keeps table snapshots for undo and redo. Snapshots are whole
// TableState values, so restoring one replaces everything at once.
type History struct {
	states []TableState
	cursor int
}

// NewHistory starts a history at initial.
func NewHistory(initial TableState) *History {
	return &History{states: []TableState{initial}}
}

// Current returns the snapshot at the cursor.
func (h *History) Current() TableState {
	return h.states[h.cursor]
}

// Push records a new snapshot and drops anything that could have been redone.
func (h *History) Push(state TableState) {
	h.states = append(h.states[:h.cursor+1], state)
	h.cursor++
}

// Apply runs fn on the current snapshot and pushes the result unless fn
// fails.
func (h *History) Apply(fn func(TableState) (TableState, error)) (TableState, error) {
	next, err := fn(h.Current())
	if err != nil {
		return h.Current(), err
	}
	h.Push(next)
	return next, nil
}

// CanUndo reports whether there is an earlier snapshot.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether an undone snapshot can be restored.
func (h *History) CanRedo() bool { return h.cursor < len(h.states)-1 }

// Undo steps back one snapshot.
func (h *History) Undo() (TableState, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Redo steps forward one snapshot.
func (h *History) Redo() (TableState, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// Len is the number of stored snapshots.
func (h *History) Len() int { return len(h.states) }
