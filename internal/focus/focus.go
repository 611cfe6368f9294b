// Package focus finds focusable elements and keeps keyboard focus inside a
// container.
//
// FindFocusable re-queries the live tree on every call, so callers never
// see a stale list after content changes. FocusFirst and InterceptTab are
// the two halves of a focus trap: the first runs when a dialog opens, the
// second on every Tab keydown while it stays open.
package focus

import (
	"strings"

	"github.com/muurk/micromodal/internal/dom"
)

// IsFocusable reports whether el is in the focusable allowlist:
//
//   - a and area with an href
//   - input that is enabled, not type=hidden and not aria-hidden
//   - select, textarea and button that are enabled and not aria-hidden
//   - iframe, object and embed
//   - any element with contenteditable
//   - any element whose tabindex does not start with "-"
func IsFocusable(el *dom.Element) bool {
	if el == nil {
		return false
	}

	switch el.Tag {
	case "a", "area":
		if el.HasAttribute("href") {
			return true
		}
	case "input":
		if typ, _ := el.Attribute("type"); !interactiveDisabled(el) && !strings.EqualFold(typ, "hidden") {
			return true
		}
	case "select", "textarea", "button":
		if !interactiveDisabled(el) {
			return true
		}
	case "iframe", "object", "embed":
		return true
	}

	if el.HasAttribute("contenteditable") {
		return true
	}
	if tabindex, ok := el.Attribute("tabindex"); ok && !strings.HasPrefix(tabindex, "-") {
		return true
	}
	return false
}

func interactiveDisabled(el *dom.Element) bool {
	return el.HasAttribute("disabled") || el.HasAttribute("aria-hidden")
}

// FindFocusable returns the focusable descendants of container in document
// order. The container itself is never included.
func FindFocusable(container *dom.Element) []*dom.Element {
	if container == nil {
		return nil
	}
	var out []*dom.Element
	for _, el := range container.Descendants() {
		if IsFocusable(el) {
			out = append(out, el)
		}
	}
	return out
}

// FocusFirst focuses the first focusable descendant of container and
// returns it. It returns nil and leaves focus alone when there is none.
func FocusFirst(container *dom.Element) *dom.Element {
	nodes := FindFocusable(container)
	if len(nodes) == 0 {
		return nil
	}
	nodes[0].Focus()
	return nodes[0]
}

// InterceptTab keeps Tab navigation inside container. It returns the
// element it moved focus to, or nil when the runtime's default navigation
// should proceed.
func InterceptTab(container *dom.Element, ev *dom.Event) *dom.Element {
	nodes := FindFocusable(container)
	if len(nodes) == 0 {
		return nil
	}

	first, last := nodes[0], nodes[len(nodes)-1]
	active := container.Document().ActiveElement()

	var target *dom.Element
	switch {
	case !container.Contains(active):
		target = first
	case ev.Shift && active == first:
		target = last
	case !ev.Shift && active == last:
		target = first
	default:
		return nil
	}

	target.Focus()
	ev.PreventDefault()
	return target
}

// Advance performs default sequential navigation over the focusable
// elements under root, starting from the active element and wrapping at
// either end. It returns the newly focused element, or nil if root holds
// nothing focusable.
func Advance(root *dom.Element, backward bool) *dom.Element {
	doc := root.Document()
	nodes := root.Descendants()
	active := doc.ActiveElement()

	pos := -1
	for i, n := range nodes {
		if n == active {
			pos = i
			break
		}
	}

	var next int
	if backward {
		start := pos - 1
		if pos < 0 {
			start = len(nodes) - 1
		}
		next = scan(nodes, start, -1)
		if next < 0 {
			next = scan(nodes, len(nodes)-1, -1)
		}
	} else {
		next = scan(nodes, pos+1, 1)
		if next < 0 {
			next = scan(nodes, 0, 1)
		}
	}

	if next < 0 {
		return nil
	}
	nodes[next].Focus()
	return nodes[next]
}

func scan(nodes []*dom.Element, from, step int) int {
	for i := from; i >= 0 && i < len(nodes); i += step {
		if IsFocusable(nodes[i]) {
			return i
		}
	}
	return -1
}
