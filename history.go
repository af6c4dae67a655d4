package lineedit

import "slices"

// DefaultHistoryCapacity is the number of lines a [History] keeps unless
// configured otherwise.
const DefaultHistoryCapacity = 100

const notBrowsing = -1

// History stores previously submitted lines, most recent first, together with
// a browse cursor. The cursor is -1 while not browsing; otherwise it indexes
// the entry currently shown.
type History struct {
	entries  []string
	capacity int
	cursor   int
}

// NewHistory returns an empty History holding at most capacity lines. A
// capacity that is not positive selects DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		entries:  make([]string, 0, min(capacity, 16)),
		capacity: capacity,
		cursor:   notBrowsing,
	}
}

// Push records line as the most recent entry, evicting the oldest entry if the
// history is full, and stops browsing.
func (h *History) Push(line string) {
	if len(h.entries) >= h.capacity {
		h.entries = h.entries[:h.capacity-1]
	}
	h.entries = slices.Insert(h.entries, 0, line)
	h.cursor = notBrowsing
}

// BrowseUp moves the cursor towards older entries and returns the entry now
// selected. It reports false, leaving the cursor unchanged, when the history
// is empty or the oldest entry is already selected.
func (h *History) BrowseUp() (string, bool) {
	if len(h.entries) == 0 || h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// BrowseDown moves the cursor towards newer entries. Moving past the newest
// entry stops browsing and returns the empty line. It reports false only when
// not browsing.
func (h *History) BrowseDown() (string, bool) {
	if h.cursor == notBrowsing {
		return "", false
	}
	h.cursor--
	if h.cursor < 0 {
		h.cursor = notBrowsing
		return "", true
	}
	return h.entries[h.cursor], true
}

// ResetBrowse stops browsing.
func (h *History) ResetBrowse() { h.cursor = notBrowsing }

// Cursor returns the browse cursor, or -1 when not browsing.
func (h *History) Cursor() int { return h.cursor }

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the maximum number of stored entries.
func (h *History) Capacity() int { return h.capacity }

// Entries returns a copy of the stored entries, most recent first.
func (h *History) Entries() []string { return slices.Clone(h.entries) }
