package dom

// Document owns an element tree rooted at Body and tracks the focused
// element.
type Document struct {
	Body *Element

	active    *Element
	listeners listenerSet
	seq       map[string]int
}

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	d := &Document{}
	d.Body = d.CreateElement("body")
	return d
}

// Sequence returns the next value of the named counter, starting at 1.
// Counters are per document.
func (d *Document) Sequence(name string) int {
	if d.seq == nil {
		d.seq = make(map[string]int)
	}
	d.seq[name]++
	return d.seq[name]
}

// CreateElement creates a detached element owned by the document.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		Tag:   tag,
		doc:   d,
		attrs: make(map[string]string),
	}
}

// ActiveElement returns the focused element. When nothing is focused, or
// the focused element has been detached, it returns Body.
func (d *Document) ActiveElement() *Element {
	if d.active == nil || !d.active.IsConnected() {
		return d.Body
	}
	return d.active
}

// AddEventListener registers a document-level listener. Document listeners
// see every event dispatched at a connected element unless propagation
// was stopped on the way up.
func (d *Document) AddEventListener(t EventType, fn Listener) *Subscription {
	return &Subscription{set: &d.listeners, entry: d.listeners.add(t, fn)}
}

// ListenerCount returns the number of document listeners for t.
func (d *Document) ListenerCount(t EventType) int {
	return d.listeners.count(t)
}

// Dispatch delivers ev at target, bubbling through its ancestors and then
// to the document. It returns false if a listener prevented the default
// action. A nil target dispatches at Body.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	if target == nil {
		target = d.Body
	}
	ev.Target = target

	for n := target; n != nil; n = n.parent {
		ev.CurrentTarget = n
		n.listeners.invoke(ev)
		if ev.stopped {
			ev.CurrentTarget = nil
			return !ev.defaultPrevented
		}
	}

	ev.CurrentTarget = nil
	if target.IsConnected() {
		d.listeners.invoke(ev)
	}
	return !ev.defaultPrevented
}

func (d *Document) setActive(el *Element) {
	prev := d.ActiveElement()
	if prev == el {
		return
	}
	if el == d.Body {
		d.active = nil
	} else {
		d.active = el
	}
	if prev != d.Body {
		d.Dispatch(prev, NewEvent(BlurEvent))
	}
	if el != d.Body {
		d.Dispatch(el, NewEvent(FocusEvent))
	}
}
