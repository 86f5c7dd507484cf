package app

import "lifecanvas/internal/core"

// dirtySet collects the cells touched between two draws. When the sim cannot
// report its changes, the next flush asks for a full repaint.
type dirtySet struct {
	indices []int
	full    bool
}

func newDirtySet(capacity int) *dirtySet {
	return &dirtySet{indices: make([]int, 0, capacity), full: true}
}

// mark records the cells changed by the sim's last mutation.
func (d *dirtySet) mark(sim core.Sim) {
	tracker, ok := sim.(core.ChangeTracker)
	if !ok {
		d.full = true
		return
	}
	d.indices = append(d.indices, tracker.Changed()...)
}

// flush returns the pending indices, or nil for a full repaint, and empties
// the set. The returned slice is only valid until the next mark.
func (d *dirtySet) flush() []int {
	out := d.indices
	if d.full {
		out = nil
	}
	d.indices = d.indices[:0]
	d.full = false
	return out
}
