// Package dom provides the element tree the dialog engine runs on.
//
// It models the small part of a browser document that modal dialogs depend
// on: a tree of tagged elements with attributes, a single active (focused)
// element per document, and synthetic events that bubble from a target
// element through its ancestors up to the document.
//
// # Documents and Elements
//
//	doc := dom.NewDocument()
//	link := doc.CreateElement("a")
//	link.SetAttribute("href", "#")
//	doc.Body.AppendChild(link)
//
//	link.Focus()
//	doc.ActiveElement() == link // true
//
// An element is connected while its chain of parents reaches the document
// body. Only connected elements can take focus; when the active element is
// detached, ActiveElement falls back to the body.
//
// # Events
//
// Listeners are registered per element or on the document and return a
// Subscription:
//
//	sub := doc.AddEventListener(dom.KeyDown, func(ev *dom.Event) {
//	    if ev.Key == dom.KeyEscape {
//	        ev.StopImmediatePropagation()
//	    }
//	})
//	defer sub.Remove()
//
//	doc.Dispatch(link, dom.NewKeyEvent(dom.KeyEscape, false))
//
// Dispatch walks target, then each ancestor, then the document. At each
// node the listeners registered for the event type run in registration
// order, taken from a snapshot so that listeners added during dispatch wait
// for the next event. A listener removed during dispatch is skipped.
//
// # Threading
//
// Nothing in this package is safe for concurrent use. A document belongs to
// one UI goroutine, the same way a browser document belongs to its event
// loop.
package dom
