package dialog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/dom"
	"github.com/muurk/micromodal/internal/focus"
	"github.com/muurk/micromodal/internal/logging"
	"github.com/muurk/micromodal/internal/modalstack"
	"github.com/muurk/micromodal/internal/portal"
)

const (
	defaultTestID   = "micro-modal"
	containerTestID = "micro-modal__container"

	msgControlledClose = "cannot close modal: OnRequestClose is required in controlled mode"
	msgControlledOpen  = "cannot open modal: a controlled dialog is opened through SetOpen"
	msgUncontrolledSet = "ignoring SetOpen: the dialog is uncontrolled"
)

// Controller drives one dialog instance.
type Controller struct {
	id   string
	name string

	doc     *dom.Document
	stack   *modalstack.Stack
	mounter portal.Mounter
	handle  *portal.Handle
	parent  *dom.Element

	cfg            Config
	controlled     bool
	onRequestClose func()
	content        ContentFunc

	state     State
	root      *dom.Element
	overlay   *dom.Element
	container *dom.Element

	className        string
	overlayClassName string

	restore   *dom.Element
	release   func()
	unmounted bool

	log       *zap.Logger
	observers []Observer
}

// New builds a dialog, mounts its skeleton through the portal and, when
// the mode says so, opens it immediately.
func New(doc *dom.Document, stack *modalstack.Stack, mode Mode, opts ...Option) *Controller {
	c := &Controller{
		id:    uuid.NewString(),
		doc:   doc,
		stack: stack,
		cfg:   DefaultConfig(),
		log:   logging.Named("dialog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.mounter == nil {
		c.mounter = portal.New(doc)
	}

	initiallyOpen := false
	switch m := mode.(type) {
	case Controlled:
		c.controlled = true
		c.onRequestClose = m.OnRequestClose
		initiallyOpen = m.Open
	case Uncontrolled:
		initiallyOpen = m.InitiallyOpen
	}

	c.build()

	var mountOpts []portal.MountOption
	if c.name != "" {
		mountOpts = append(mountOpts, portal.WithID(c.name))
	}
	c.handle = c.mounter.Mount(c.root, c.parent, mountOpts...)

	if initiallyOpen {
		c.enterOpen()
	}
	return c
}

func (c *Controller) build() {
	c.root = c.doc.CreateElement("div")
	c.root.SetAttribute("class", "modal modal-slide")
	c.root.AddClass(c.className)
	testID := defaultTestID
	if c.name != "" {
		c.root.SetAttribute("id", c.name)
		testID = c.name
	}
	c.root.SetAttribute("data-testid", testID)

	c.overlay = c.doc.CreateElement("div")
	c.overlay.SetAttribute("class", "modal-overlay")
	c.overlay.AddClass(c.overlayClassName)

	c.container = c.doc.CreateElement("div")
	c.container.SetAttribute("class", "modal-container")
	c.container.SetAttribute("role", "dialog")
	c.container.SetAttribute("aria-modal", "true")
	c.container.SetAttribute("data-testid", containerTestID)

	c.overlay.AppendChild(c.container)
	c.root.AppendChild(c.overlay)
	c.syncAttributes()
}

// ID returns the instance identity.
func (c *Controller) ID() string { return c.id }

// Name returns the name given with WithName.
func (c *Controller) Name() string { return c.name }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the dialog is present, including while its exit
// animation runs.
func (c *Controller) IsOpen() bool { return c.state != StateClosed }

// AriaHidden is false only while the dialog is Open.
func (c *Controller) AriaHidden() bool { return c.state != StateOpen }

// Controlled reports the construction mode.
func (c *Controller) Controlled() bool { return c.controlled }

// Config returns the active configuration.
func (c *Controller) Config() Config { return c.cfg }

// Root returns the outermost element, the overlay-click boundary.
func (c *Controller) Root() *dom.Element { return c.root }

// Overlay returns the backdrop element.
func (c *Controller) Overlay() *dom.Element { return c.overlay }

// Container returns the dialog element, the focus-trap boundary.
func (c *Controller) Container() *dom.Element { return c.container }

// Trigger hands the dialog's open function to build and returns the
// element it produces, for the application to place in its own tree.
func (c *Controller) Trigger(build func(open func()) *dom.Element) *dom.Element {
	return build(c.Open)
}

// OnRequestClose sets the callback a controlled dialog calls instead of
// closing. Uncontrolled dialogs never call it.
func (c *Controller) OnRequestClose(fn func()) {
	c.onRequestClose = fn
}

// Reconfigure replaces the configuration. Escape, animation and focus
// switches apply from the next event; the overlay-click subscription is
// decided when the dialog opens.
func (c *Controller) Reconfigure(cfg Config) {
	c.cfg = cfg
}

// Open opens an uncontrolled dialog. Opening while Closing cancels the
// exit and returns to Open. Controlled dialogs are opened with SetOpen.
func (c *Controller) Open() {
	if c.controlled {
		logging.LogMisuse(c.log, c.id, msgControlledOpen)
		return
	}
	c.open()
}

// Close is the dialog's close request: content close functions, escape
// and overlay clicks all end here. Uncontrolled dialogs close (or start
// closing); controlled dialogs ask OnRequestClose.
func (c *Controller) Close() {
	if c.controlled {
		if c.onRequestClose != nil {
			c.onRequestClose()
			return
		}
		logging.LogMisuse(c.log, c.id, msgControlledClose)
		return
	}
	c.requestClose()
}

// SetOpen delivers the caller's flag to a controlled dialog.
func (c *Controller) SetOpen(open bool) {
	if !c.controlled {
		logging.LogMisuse(c.log, c.id, msgUncontrolledSet)
		return
	}
	if open {
		c.open()
	} else {
		c.requestClose()
	}
}

// AnimationFinished completes a pending close. Outside Closing it does
// nothing.
func (c *Controller) AnimationFinished() {
	if c.state == StateClosing {
		c.teardown()
	}
}

// Unmount tears the dialog down if it is open and removes its portal.
// Further calls do nothing.
func (c *Controller) Unmount() {
	if c.unmounted {
		return
	}
	c.teardown()
	c.mounter.Unmount(c.handle)
	c.unmounted = true
}

func (c *Controller) open() {
	if c.unmounted {
		return
	}
	switch c.state {
	case StateClosed:
		c.enterOpen()
	case StateClosing:
		c.setState(StateOpen)
	}
}

func (c *Controller) requestClose() {
	if c.state != StateOpen {
		return
	}
	if c.cfg.CloseOnAnimationEnd {
		c.setState(StateClosing)
		return
	}
	c.teardown()
}

func (c *Controller) enterOpen() {
	c.restore = c.doc.ActiveElement()
	if c.stack.Push(c) {
		logging.LogStack(c.log, c.stack.Breadcrumb(), c.stack.Len())
	}

	var content []*dom.Element
	if c.content != nil {
		content = c.content(c.Close)
	}
	c.container.ReplaceChildren(content...)

	subs := []*dom.Subscription{
		c.doc.AddEventListener(dom.KeyDown, c.onKeydown),
		c.container.AddEventListener(dom.AnimationEnd, c.onAnimationEnd),
	}
	if c.cfg.CloseOnOverlayClick {
		subs = append(subs, c.root.AddEventListener(dom.Click, c.onClick))
	}
	c.release = func() {
		for _, s := range subs {
			s.Remove()
		}
	}

	c.setState(StateOpen)

	if !c.cfg.DisableFirstElementFocus {
		focus.FocusFirst(c.container)
	}
}

// teardown is the single exit path into Closed.
func (c *Controller) teardown() {
	if c.state == StateClosed {
		return
	}
	if c.release != nil {
		c.release()
		c.release = nil
	}
	if c.stack.Remove(c) {
		logging.LogStack(c.log, c.stack.Breadcrumb(), c.stack.Len())
	}
	c.container.ReplaceChildren()

	restore := c.restore
	c.restore = nil
	c.setState(StateClosed)

	if restore != nil && restore.IsConnected() {
		restore.Focus()
	}
}

func (c *Controller) setState(s State) {
	from := c.state
	c.state = s
	c.syncAttributes()

	depth := c.stack.Len()
	logging.LogTransition(c.log, c.id, from.String(), s.String(), depth)
	t := Transition{DialogID: c.id, Name: c.name, From: from, To: s, Depth: depth}
	for _, o := range c.observers {
		o.DialogTransition(t)
	}
}

func (c *Controller) syncAttributes() {
	if c.AriaHidden() {
		c.root.SetAttribute("aria-hidden", "true")
	} else {
		c.root.SetAttribute("aria-hidden", "false")
	}
	c.root.SetAttribute("data-state", c.state.String())
	if c.state == StateClosed {
		c.root.RemoveClass("is-open")
	} else {
		c.root.AddClass("is-open")
	}
}

func (c *Controller) onKeydown(ev *dom.Event) {
	if !c.stack.IsTopmost(c) {
		return
	}
	switch ev.Key {
	case dom.KeyEscape:
		if c.cfg.CloseOnEscapePress {
			ev.StopImmediatePropagation()
			c.Close()
		}
	case dom.KeyTab:
		focus.InterceptTab(c.container, ev)
	}
}

func (c *Controller) onClick(ev *dom.Event) {
	if !c.stack.IsTopmost(c) {
		return
	}
	if ev.Target == nil || c.container.Contains(ev.Target) {
		return
	}
	c.Close()
	ev.PreventDefault()
}

func (c *Controller) onAnimationEnd(ev *dom.Event) {
	if ev.Target != c.container {
		return
	}
	c.AnimationFinished()
}
