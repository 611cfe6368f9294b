package dom

import (
	"slices"
	"strings"
)

// Element is a node in a document tree.
type Element struct {
	Tag  string
	Text string

	doc       *Document
	parent    *Element
	children  []*Element
	attrs     map[string]string
	listeners listenerSet
}

// Document returns the owner document.
func (e *Element) Document() *Document {
	return e.doc
}

// Parent returns the parent element, or nil when detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// Attribute returns an attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present, whatever its value.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	return strings.Fields(e.attrs["class"])
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

// AddClass appends name to the class list if it is missing.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.attrs["class"] = strings.TrimSpace(e.attrs["class"] + " " + name)
}

// RemoveClass drops name from the class list.
func (e *Element) RemoveClass(name string) {
	classes := slices.DeleteFunc(e.Classes(), func(c string) bool { return c == name })
	e.attrs["class"] = strings.Join(classes, " ")
}

// AppendChild moves child under e as its last child. Appending an ancestor
// of e is ignored.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child.Contains(e) {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child if it is a direct child of e.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// ReplaceChildren detaches every current child and appends children.
func (e *Element) ReplaceChildren(children ...*Element) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	for _, c := range children {
		e.AppendChild(c)
	}
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// IsConnected reports whether e is attached to its document's body.
func (e *Element) IsConnected() bool {
	if e.doc == nil {
		return false
	}
	return e.doc.Body.Contains(e)
}

// Descendants returns every element below e in document (pre-order) order.
// e itself is not included.
func (e *Element) Descendants() []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(n *Element) {
		for _, c := range n.children {
			out = append(out, c)
			walk(c)
		}
	}
	walk(e)
	return out
}

// QueryByID returns the first element at or below e with the given id.
func (e *Element) QueryByID(id string) *Element {
	if e.ID() == id {
		return e
	}
	for _, d := range e.Descendants() {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// Focus makes e the document's active element. Detached elements cannot
// take focus; Focus then reports false and changes nothing.
func (e *Element) Focus() bool {
	if !e.IsConnected() {
		return false
	}
	e.doc.setActive(e)
	return true
}

// Blur drops focus from e if it holds it.
func (e *Element) Blur() {
	if e.doc != nil && e.doc.ActiveElement() == e && e != e.doc.Body {
		e.doc.setActive(e.doc.Body)
	}
}

// AddEventListener registers a listener on e.
func (e *Element) AddEventListener(t EventType, fn Listener) *Subscription {
	return &Subscription{set: &e.listeners, entry: e.listeners.add(t, fn)}
}

// ListenerCount returns the number of listeners on e for t.
func (e *Element) ListenerCount(t EventType) int {
	return e.listeners.count(t)
}

// Dispatch delivers ev at e through the owner document.
func (e *Element) Dispatch(ev *Event) bool {
	return e.doc.Dispatch(e, ev)
}
