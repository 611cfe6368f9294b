package playground

import (
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/dialog"
	"github.com/muurk/micromodal/internal/dom"
	"github.com/muurk/micromodal/internal/logging"
	"github.com/muurk/micromodal/internal/modalstack"
)

// Dialog names on the page.
const (
	BasicDialog      = "basic"
	AnimatedDialog   = "animated"
	ControlledDialog = "controlled"
	NestedDialog     = "nested"
)

// Page is the document the playground hosts: a few trigger buttons and the
// dialogs they open.
type Page struct {
	Doc   *dom.Document
	Stack *modalstack.Stack

	dialogs  map[string]*dialog.Controller
	triggers map[string]*dom.Element

	// controlledOpen is the flag the controlled dialog mirrors.
	controlledOpen bool

	// closing collects exits started since the last drain. exits counts
	// every entry into Closing per dialog ID.
	closing []exit
	exits   map[string]int
	status  string
}

// exit is one entry of a dialog into Closing.
type exit struct {
	DialogID string
	Seq      int
}

func newPage(opts Options) *Page {
	p := &Page{
		Doc:      dom.NewDocument(),
		Stack:    modalstack.New(),
		dialogs:  make(map[string]*dialog.Controller),
		triggers: make(map[string]*dom.Element),
		exits:    make(map[string]int),
	}

	title := p.el("h1", "micromodal playground")
	intro := p.el("p", "Open a dialog, then try tab, shift+tab, esc and clicking outside the box.")
	p.Doc.Body.AppendChild(title)
	p.Doc.Body.AppendChild(intro)

	row := p.el("div", "")
	for _, name := range []string{BasicDialog, AnimatedDialog, ControlledDialog} {
		btn := p.button("Open "+name, p.opener(name))
		p.triggers[name] = btn
		row.AppendChild(btn)
	}
	p.Doc.Body.AppendChild(row)
	p.Doc.Body.AppendChild(p.el("p", "Page search:"))
	search := p.el("input", "")
	search.SetAttribute("placeholder", "search")
	p.Doc.Body.AppendChild(search)

	base := opts.Dialog
	observers := append([]dialog.Observer{dialog.ObserverFunc(p.observe)}, opts.Observers...)
	common := func(name string, cfg dialog.Config) []dialog.Option {
		o := []dialog.Option{
			dialog.WithName(name),
			dialog.WithConfig(cfg),
			dialog.WithLogger(opts.logger().Named(name)),
		}
		for _, obs := range observers {
			o = append(o, dialog.WithObserver(obs))
		}
		return o
	}

	p.dialogs[NestedDialog] = dialog.New(p.Doc, p.Stack, dialog.Uncontrolled{},
		append(common(NestedDialog, base), dialog.WithContent(p.content("A dialog opened from inside another one.", false)))...)

	p.dialogs[BasicDialog] = dialog.New(p.Doc, p.Stack, dialog.Uncontrolled{InitiallyOpen: opts.OpenInitially},
		append(common(BasicDialog, base), dialog.WithContent(p.content("An uncontrolled dialog.", true)))...)

	animated := base
	animated.CloseOnAnimationEnd = true
	p.dialogs[AnimatedDialog] = dialog.New(p.Doc, p.Stack, dialog.Uncontrolled{},
		append(common(AnimatedDialog, animated), dialog.WithContent(p.content("This one fades out before it closes.", true)))...)

	p.dialogs[ControlledDialog] = dialog.New(p.Doc, p.Stack, dialog.Controlled{
		OnRequestClose: func() { p.SetControlled(false) },
	}, append(common(ControlledDialog, base), dialog.WithContent(p.content("Its open flag lives in the page.", true)))...)

	if p.Stack.IsEmpty() {
		p.triggers[BasicDialog].Focus()
	}
	return p
}

func (p *Page) el(tag, text string) *dom.Element {
	e := p.Doc.CreateElement(tag)
	e.Text = text
	return e
}

func (p *Page) button(label string, onClick func()) *dom.Element {
	b := p.el("button", label)
	b.AddEventListener(dom.Click, func(*dom.Event) { onClick() })
	return b
}

func (p *Page) opener(name string) func() {
	if name == ControlledDialog {
		return func() { p.SetControlled(true) }
	}
	return func() { p.dialogs[name].Open() }
}

func (p *Page) content(text string, withNested bool) dialog.ContentFunc {
	return func(closeFn func()) []*dom.Element {
		link := p.el("a", "Read more")
		link.SetAttribute("href", "#more")
		link.AddEventListener(dom.Click, func(ev *dom.Event) {
			p.status = "link followed"
			ev.PreventDefault()
		})
		name := p.el("input", "")
		name.SetAttribute("placeholder", "your name")

		els := []*dom.Element{p.el("p", text), link, name}
		if withNested {
			els = append(els, p.button("Open nested", p.dialogs[NestedDialog].Open))
		}
		return append(els, p.button("Close", closeFn))
	}
}

func (p *Page) observe(t dialog.Transition) {
	if t.To == dialog.StateClosing {
		p.exits[t.DialogID]++
		p.closing = append(p.closing, exit{DialogID: t.DialogID, Seq: p.exits[t.DialogID]})
	}
}

// drainClosing returns and clears the exits started since the last call.
func (p *Page) drainClosing() []exit {
	started := p.closing
	p.closing = nil
	return started
}

// currentExit reports whether e is the dialog's latest exit and the dialog
// is still closing.
func (p *Page) currentExit(e exit) bool {
	d := p.byID(e.DialogID)
	return d != nil && d.State() == dialog.StateClosing && p.exits[e.DialogID] == e.Seq
}

// SetControlled sets the controlled dialog's flag and delivers it.
func (p *Page) SetControlled(open bool) {
	p.controlledOpen = open
	p.dialogs[ControlledDialog].SetOpen(open)
}

// ControlledOpen returns the controlled dialog's flag.
func (p *Page) ControlledOpen() bool { return p.controlledOpen }

// Dialog returns a dialog by name.
func (p *Page) Dialog(name string) *dialog.Controller { return p.dialogs[name] }

// Trigger returns the page button that opens the named dialog.
func (p *Page) Trigger(name string) *dom.Element { return p.triggers[name] }

// Topmost returns the topmost open dialog, or nil.
func (p *Page) Topmost() *dialog.Controller {
	top, _ := p.Stack.Topmost().(*dialog.Controller)
	return top
}

// byID finds a dialog by controller ID.
func (p *Page) byID(id string) *dialog.Controller {
	for _, d := range p.dialogs {
		if d.ID() == id {
			return d
		}
	}
	return nil
}

// Names returns the open dialogs' names from bottom to top.
func (p *Page) Names() []string {
	var names []string
	for _, e := range p.Stack.Entries() {
		if d, ok := e.(*dialog.Controller); ok {
			names = append(names, d.Name())
		}
	}
	return names
}

// Unmount unmounts every dialog.
func (p *Page) Unmount() {
	for _, d := range p.dialogs {
		d.Unmount()
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Named("playground")
}
