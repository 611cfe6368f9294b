// Package modalstack tracks which dialogs are open, in the order they
// opened. The last entry is the topmost dialog, the only one that should
// react to global keys.
//
// A Stack is plain state for a single UI goroutine. Applications create one
// and hand it to every dialog controller that should share stacking order;
// tests create a fresh one per case or call Reset.
package modalstack

import "strings"

// Entry is anything that can sit on the stack. Entries are compared by
// identity, so implementations should be pointer types.
type Entry interface {
	ID() string
}

// Stack is an ordered set of open entries.
type Stack struct {
	entries []Entry
}

// New creates an empty stack.
func New() *Stack {
	return &Stack{
		entries: make([]Entry, 0),
	}
}

// Push adds e on top. An entry already on the stack is left where it is
// and Push reports false.
func (s *Stack) Push(e Entry) bool {
	if e == nil || s.Contains(e) {
		return false
	}
	s.entries = append(s.entries, e)
	return true
}

// Pop removes and returns the topmost entry, or nil when empty.
func (s *Stack) Pop() Entry {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return e
}

// Remove takes e off the stack wherever it is. Dialogs usually close in
// reverse open order, but a controlled dialog may close out of turn.
func (s *Stack) Remove(e Entry) bool {
	for i, existing := range s.entries {
		if existing == e {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Topmost returns the most recently pushed entry, or nil when empty.
func (s *Stack) Topmost() Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsTopmost reports whether e is the topmost entry.
func (s *Stack) IsTopmost(e Entry) bool {
	return e != nil && len(s.entries) > 0 && s.entries[len(s.entries)-1] == e
}

// Contains reports whether e is on the stack.
func (s *Stack) Contains(e Entry) bool {
	for _, existing := range s.entries {
		if existing == e {
			return true
		}
	}
	return false
}

// Depth returns the 1-based position of e, or 0 if absent.
func (s *Stack) Depth(e Entry) int {
	for i, existing := range s.entries {
		if existing == e {
			return i + 1
		}
	}
	return 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsEmpty returns true if nothing is open.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Breadcrumb joins entry IDs bottom to top, e.g. "settings > confirm".
func (s *Stack) Breadcrumb() string {
	parts := make([]string, len(s.entries))
	for i, e := range s.entries {
		parts[i] = e.ID()
	}
	return strings.Join(parts, " > ")
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}
