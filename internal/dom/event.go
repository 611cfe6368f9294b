package dom

// EventType names a synthetic event.
type EventType string

const (
	KeyDown      EventType = "keydown"
	Click        EventType = "click"
	AnimationEnd EventType = "animationend"
	FocusEvent   EventType = "focus"
	BlurEvent    EventType = "blur"
)

// Key names carried by keydown events.
const (
	KeyEscape = "Escape"
	KeyTab    = "Tab"
	KeyEnter  = "Enter"
	KeySpace  = " "
)

// Event is a synthetic keyboard, pointer or lifecycle event.
type Event struct {
	Type  EventType
	Key   string // keydown only
	Shift bool   // keydown only

	// Target is the element the event was dispatched at.
	Target *Element
	// CurrentTarget is the node whose listeners are running. It is nil
	// while document listeners run.
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
	stoppedNow       bool
}

// NewEvent creates an event of the given type.
func NewEvent(t EventType) *Event {
	return &Event{Type: t}
}

// NewKeyEvent creates a keydown event.
func NewKeyEvent(key string, shift bool) *Event {
	return &Event{Type: KeyDown, Key: key, Shift: shift}
}

// PreventDefault cancels the runtime's default action for the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching further nodes. Listeners
// on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation also skips the remaining listeners on the
// current node.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedNow = true
}

// PropagationStopped reports whether either stop method was called.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// Listener handles a dispatched event.
type Listener func(*Event)

type listenerEntry struct {
	typ     EventType
	fn      Listener
	removed bool
}

type listenerSet struct {
	entries []*listenerEntry
}

func (s *listenerSet) add(t EventType, fn Listener) *listenerEntry {
	entry := &listenerEntry{typ: t, fn: fn}
	s.entries = append(s.entries, entry)
	return entry
}

func (s *listenerSet) remove(entry *listenerEntry) {
	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *listenerSet) count(t EventType) int {
	n := 0
	for _, e := range s.entries {
		if e.typ == t {
			n++
		}
	}
	return n
}

// invoke runs the listeners registered for ev.Type from a snapshot.
func (s *listenerSet) invoke(ev *Event) {
	if len(s.entries) == 0 {
		return
	}
	snapshot := make([]*listenerEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.typ == ev.Type {
			snapshot = append(snapshot, e)
		}
	}
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.fn(ev)
		if ev.stoppedNow {
			return
		}
	}
}

// Subscription is a registered listener. Remove is idempotent.
type Subscription struct {
	set   *listenerSet
	entry *listenerEntry
}

// Remove unregisters the listener.
func (s *Subscription) Remove() {
	if s == nil || s.entry == nil || s.entry.removed {
		return
	}
	s.entry.removed = true
	s.set.remove(s.entry)
}

// Active reports whether the listener is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.entry != nil && !s.entry.removed
}
