package domain

import "fmt"

// NoSelection is the Selected index when nothing is highlighted.
const NoSelection = -1

// DeletionRecord captures a removed entry so Undo can reinsert it.
type DeletionRecord struct {
	URL   string
	Index int
}

// ImageList is the ordered, user-curated sequence of image URLs.
//
// It is a pure state machine: no I/O, no locking. Callers serialise access.
// Insertion order is gallery order and duplicates are allowed.
type ImageList struct {
	items    []string
	selected int
	history  []DeletionRecord
}

// NewImageList returns an empty list with no selection.
func NewImageList() *ImageList {
	return &ImageList{selected: NoSelection}
}

// Load replaces the list wholesale and discards undo history.
func (l *ImageList) Load(urls []string) {
	l.items = append([]string(nil), urls...)
	l.history = nil
	if len(l.items) > 0 {
		l.selected = 0
	} else {
		l.selected = NoSelection
	}
}

// Items returns a copy of the current order.
func (l *ImageList) Items() []string {
	return append([]string(nil), l.items...)
}

// Len returns the number of entries.
func (l *ImageList) Len() int {
	return len(l.items)
}

// Selected returns the highlighted index and whether one exists.
func (l *ImageList) Selected() (int, bool) {
	return l.selected, l.selected != NoSelection
}

// SelectedURL returns the highlighted URL, if any.
func (l *ImageList) SelectedURL() (string, bool) {
	if l.selected == NoSelection {
		return "", false
	}
	return l.items[l.selected], true
}

// CanUndo reports whether a deletion can be reverted.
func (l *ImageList) CanUndo() bool {
	return len(l.history) > 0
}

// HistoryLen returns the number of undoable deletions.
func (l *ImageList) HistoryLen() int {
	return len(l.history)
}

// Select highlights i. Out-of-range indices are ignored.
func (l *ImageList) Select(i int) {
	if l.inRange(i) {
		l.selected = i
	}
}

// MoveUp swaps entry i with its predecessor. Selection follows the moved entry.
// It is a no-op at the top or out of range.
func (l *ImageList) MoveUp(i int) {
	if !l.inRange(i) || i == 0 {
		return
	}
	l.items[i-1], l.items[i] = l.items[i], l.items[i-1]
	l.selected = i - 1
}

// MoveDown swaps entry i with its successor. Selection follows the moved entry.
// It is a no-op at the bottom or out of range.
func (l *ImageList) MoveDown(i int) {
	if !l.inRange(i) || i == len(l.items)-1 {
		return
	}
	l.items[i], l.items[i+1] = l.items[i+1], l.items[i]
	l.selected = i + 1
}

// Delete removes entry i and records it for Undo.
func (l *ImageList) Delete(i int) error {
	if !l.inRange(i) {
		return fmt.Errorf("%w: index %d", ErrNoSelection, i)
	}

	removed := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.history = append(l.history, DeletionRecord{URL: removed, Index: i})

	if len(l.items) == 0 {
		l.selected = NoSelection
	} else {
		l.selected = min(i, len(l.items)-1)
	}
	return nil
}

// Undo reinserts the most recent deletion and selects it.
// The recorded index is clamped to the current length.
// It reports whether anything was restored.
func (l *ImageList) Undo() bool {
	if len(l.history) == 0 {
		return false
	}

	rec := l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]

	idx := max(0, min(rec.Index, len(l.items)))
	l.items = append(l.items, "")
	copy(l.items[idx+1:], l.items[idx:])
	l.items[idx] = rec.URL
	l.selected = idx
	return true
}

// MoveSelectedUp moves the highlighted entry up.
func (l *ImageList) MoveSelectedUp() {
	if l.selected != NoSelection {
		l.MoveUp(l.selected)
	}
}

// MoveSelectedDown moves the highlighted entry down.
func (l *ImageList) MoveSelectedDown() {
	if l.selected != NoSelection {
		l.MoveDown(l.selected)
	}
}

// DeleteSelected removes the highlighted entry.
func (l *ImageList) DeleteSelected() error {
	if l.selected == NoSelection {
		return ErrNoSelection
	}
	return l.Delete(l.selected)
}

func (l *ImageList) inRange(i int) bool {
	return i >= 0 && i < len(l.items)
}
