package router

import "github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"

// HistoryStackItem is a visited path and the transition used to arrive at it.
// Items are never modified once pushed.
type HistoryStackItem struct {
	Path       string
	Transition transition.Resolved
}

// Stack is the ordered record of visited paths, oldest first.
// The Navigator keeps it non-empty at all times.
type Stack struct {
	entries []HistoryStackItem
}

// NewStack creates a stack holding a single root item.
func NewStack(root HistoryStackItem) *Stack {
	return &Stack{
		entries: []HistoryStackItem{root},
	}
}

// Push adds a new item on top.
func (s *Stack) Push(item HistoryStackItem) {
	s.entries = append(s.entries, item)
}

// ReplaceTop swaps the top item for item.
func (s *Stack) ReplaceTop(item HistoryStackItem) {
	s.entries[len(s.entries)-1] = item
}

// PopN removes up to n items from the top, never the root item.
// It returns how many were removed.
func (s *Stack) PopN(n int) int {
	if limit := len(s.entries) - 1; n > limit {
		n = limit
	}
	if n <= 0 {
		return 0
	}
	s.entries = s.entries[:len(s.entries)-n]
	return n
}

// Peek returns the top item.
func (s *Stack) Peek() HistoryStackItem {
	return s.entries[len(s.entries)-1]
}

// At returns the item at index i, counted from the bottom.
func (s *Stack) At(i int) HistoryStackItem {
	return s.entries[i]
}

// IndexOf returns the lowest index holding path, or -1.
func (s *Stack) IndexOf(path string) int {
	for i, entry := range s.entries {
		if entry.Path == path {
			return i
		}
	}
	return -1
}

// CountWhere returns the number of items for which fn is true.
func (s *Stack) CountWhere(fn func(HistoryStackItem) bool) int {
	n := 0
	for _, entry := range s.entries {
		if fn(entry) {
			n++
		}
	}
	return n
}

// Len returns the number of items in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Items returns a copy of the stack contents.
func (s *Stack) Items() []HistoryStackItem {
	out := make([]HistoryStackItem, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reset drops everything and leaves only root.
func (s *Stack) Reset(root HistoryStackItem) {
	s.entries = append(s.entries[:0], root)
}
