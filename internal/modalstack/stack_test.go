package modalstack

import "testing"

type fakeDialog struct {
	id string
}

func (f *fakeDialog) ID() string { return f.id }

func TestStackLIFO(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "a"}
	b := &fakeDialog{id: "b"}

	s.Push(a)
	s.Push(b)

	if s.Topmost() != b {
		t.Errorf("Topmost() = %v, want b", s.Topmost())
	}
	if got := s.Pop(); got != b {
		t.Errorf("Pop() = %v, want b", got)
	}
	if s.Topmost() != a {
		t.Errorf("Topmost() after pop = %v, want a", s.Topmost())
	}
	if got := s.Pop(); got != a {
		t.Errorf("Pop() = %v, want a", got)
	}
	if !s.IsEmpty() || s.Topmost() != nil {
		t.Error("stack should be empty")
	}
	if got := s.Pop(); got != nil {
		t.Errorf("Pop() on empty stack = %v, want nil", got)
	}
}

func TestStackPushIgnoresDuplicates(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "a"}
	b := &fakeDialog{id: "b"}

	if !s.Push(a) {
		t.Error("first Push() should report true")
	}
	s.Push(b)
	if s.Push(a) {
		t.Error("duplicate Push() should report false")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.IsTopmost(b) {
		t.Error("duplicate push must not reorder the stack")
	}
}

func TestStackRemoveByIdentity(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "a"}
	b := &fakeDialog{id: "b"}
	c := &fakeDialog{id: "c"}
	s.Push(a)
	s.Push(b)
	s.Push(c)

	if !s.Remove(b) {
		t.Fatal("Remove(b) should report true")
	}
	if s.Remove(b) {
		t.Error("second Remove(b) should report false")
	}

	entries := s.Entries()
	if len(entries) != 2 || entries[0] != a || entries[1] != c {
		t.Errorf("Entries() = %v, want [a c]", entries)
	}
	if !s.IsTopmost(c) {
		t.Error("c should remain topmost")
	}
}

func TestStackRemoveSameIDDifferentInstance(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "same"}
	twin := &fakeDialog{id: "same"}
	s.Push(a)

	if s.Remove(twin) {
		t.Error("Remove() must compare identity, not ID")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStackIsTopmost(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "a"}
	b := &fakeDialog{id: "b"}

	if s.IsTopmost(a) {
		t.Error("nothing is topmost on an empty stack")
	}
	s.Push(a)
	s.Push(b)

	if s.IsTopmost(a) {
		t.Error("a should not be topmost")
	}
	if !s.IsTopmost(b) {
		t.Error("b should be topmost")
	}
	if s.IsTopmost(nil) {
		t.Error("nil is never topmost")
	}
}

func TestStackDepthAndBreadcrumb(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "settings"}
	b := &fakeDialog{id: "confirm"}
	s.Push(a)
	s.Push(b)

	if got := s.Depth(b); got != 2 {
		t.Errorf("Depth(b) = %d, want 2", got)
	}
	if got := s.Depth(&fakeDialog{id: "x"}); got != 0 {
		t.Errorf("Depth(absent) = %d, want 0", got)
	}
	if got := s.Breadcrumb(); got != "settings > confirm" {
		t.Errorf("Breadcrumb() = %q, want %q", got, "settings > confirm")
	}
}

func TestStackEntriesIsCopy(t *testing.T) {
	s := New()
	a := &fakeDialog{id: "a"}
	s.Push(a)

	entries := s.Entries()
	entries[0] = &fakeDialog{id: "mutated"}

	if s.Topmost() != a {
		t.Error("mutating Entries() must not affect the stack")
	}
}

func TestStackReset(t *testing.T) {
	s := New()
	s.Push(&fakeDialog{id: "a"})
	s.Push(&fakeDialog{id: "b"})

	s.Reset()

	if s.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", s.Len())
	}
	s.Push(&fakeDialog{id: "c"})
	if s.Len() != 1 {
		t.Errorf("Len() after reuse = %d, want 1", s.Len())
	}
}
