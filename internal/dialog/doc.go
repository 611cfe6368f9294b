// Package dialog implements the modal dialog lifecycle.
//
// A Controller owns one dialog: its element skeleton, its lifecycle state,
// its membership in a shared modal stack and the listeners that trap focus
// and route escape presses while it is open.
//
// # Lifecycle
//
//	Closed ──Open()──▶ Open ──close──▶ Closed
//	                    │
//	                    └──close (CloseOnAnimationEnd)──▶ Closing ──animationend──▶ Closed
//
// Entering Open captures the focused element, pushes the controller onto
// the stack, subscribes a document keydown listener (and a click listener
// on the root when CloseOnOverlayClick is set) and focuses the first
// focusable element of the dialog. Leaving for Closed runs a single stored
// teardown: listeners are removed, the controller is removed from the stack
// by identity and focus returns to the captured element if it is still in
// the document.
//
// Closing keeps everything in place and only flips the aria-hidden flag so
// the renderer can play an exit animation. The renderer reports the end of
// that animation with AnimationFinished or by dispatching an animationend
// event at the dialog container. There is no timeout: a dialog whose
// animation never reports completion stays in Closing.
//
// # Controlled and Uncontrolled
//
// The mode is fixed at construction:
//
//	dialog.New(doc, stack, dialog.Uncontrolled{InitiallyOpen: false})
//	dialog.New(doc, stack, dialog.Controlled{Open: isOpen, OnRequestClose: onClose})
//
// An uncontrolled dialog owns its open flag. A controlled dialog mirrors
// the caller's flag, delivered through SetOpen; its close requests (escape,
// overlay click, the close function handed to content) call OnRequestClose
// instead of closing. A controlled dialog without a callback logs one
// warning per request and stays open.
//
// # Nesting
//
// Dialogs opened from inside another dialog's content register on the same
// stack. Every open dialog keeps its document listener, but only the
// topmost one acts on escape, Tab and overlay clicks.
//
// # Usage Example
//
//	doc := dom.NewDocument()
//	stack := modalstack.New()
//
//	d := dialog.New(doc, stack, dialog.Uncontrolled{},
//	    dialog.WithContent(func(closeFn func()) []*dom.Element {
//	        ok := doc.CreateElement("button")
//	        ok.Text = "OK"
//	        ok.AddEventListener(dom.Click, func(*dom.Event) { closeFn() })
//	        return []*dom.Element{ok}
//	    }),
//	)
//	defer d.Unmount()
//
//	d.Open()
//	doc.Dispatch(doc.ActiveElement(), dom.NewKeyEvent(dom.KeyEscape, false))
//	d.IsOpen() // false
//
// # Threading
//
// Controllers, the document and the stack belong to one UI goroutine.
// Every method runs to completion synchronously.
package dialog
