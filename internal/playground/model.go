package playground

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/dialog"
	"github.com/muurk/micromodal/internal/dom"
	"github.com/muurk/micromodal/internal/focus"
	"github.com/muurk/micromodal/internal/ui"
)

const (
	headerLines = 2
	footerLines = 2
)

// Options configures the playground.
type Options struct {
	Dialog        dialog.Config
	OpenInitially bool
	// Animation is how long a closing dialog stays visible before its
	// animationend is dispatched.
	Animation time.Duration
	Mouse     bool
	Observers []dialog.Observer
	Logger    *zap.Logger
}

// animationEndMsg reports that one exit animation finished. A dialog that
// reopened and started closing again ignores the earlier exit's message.
type animationEndMsg struct {
	exit
}

// Model is the playground's Bubble Tea model. It translates terminal input
// into document events and renders the document.
type Model struct {
	Page *Page

	keys      keyMap
	help      help.Model
	animation time.Duration

	Width  int
	Height int
}

// New builds the page and its dialogs.
func New(opts Options) Model {
	if opts.Animation <= 0 {
		opts.Animation = 300 * time.Millisecond
	}
	return Model{
		Page:      newPage(opts),
		keys:      newKeyMap(),
		help:      help.New(),
		animation: opts.Animation,
		Width:     80,
		Height:    24,
	}
}

// Run starts the playground in the alternate screen and blocks until the
// user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Page.Unmount()

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.flushAnimations()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.Page.Topmost() == nil && !m.editing() && key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case animationEndMsg:
		if m.Page.currentExit(msg.exit) {
			m.Page.byID(msg.DialogID).Container().Dispatch(dom.NewEvent(dom.AnimationEnd))
		}
	}

	return m, m.flushAnimations()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	doc := m.Page.Doc
	active := doc.ActiveElement()

	switch {
	case key.Matches(msg, m.keys.Next):
		m.keydown(dom.KeyTab, false)
	case key.Matches(msg, m.keys.Prev):
		m.keydown(dom.KeyTab, true)
	case key.Matches(msg, m.keys.Escape):
		m.keydown(dom.KeyEscape, false)
	case m.editing() && msg.Type == tea.KeyRunes, m.editing() && msg.Type == tea.KeySpace:
		v, _ := active.Attribute("value")
		active.SetAttribute("value", v+string(msg.Runes))
	case m.editing() && key.Matches(msg, m.keys.Erase):
		v, _ := active.Attribute("value")
		if r := []rune(v); len(r) > 0 {
			active.SetAttribute("value", string(r[:len(r)-1]))
		}
	case key.Matches(msg, m.keys.Activate):
		m.Page.status = ""
		active.Dispatch(dom.NewEvent(dom.Click))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

// keydown dispatches a key at the active element and performs the default
// Tab navigation when nothing prevented it.
func (m *Model) keydown(k string, shift bool) {
	doc := m.Page.Doc
	ev := dom.NewKeyEvent(k, shift)
	if doc.Dispatch(doc.ActiveElement(), ev) && k == dom.KeyTab {
		root := doc.Body
		if top := m.Page.Topmost(); top != nil {
			root = top.Container()
		}
		focus.Advance(root, shift)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	top := m.Page.Topmost()
	if top == nil {
		return
	}
	if _, box := m.layoutDialog(top); box.Contains(msg.X, msg.Y) {
		top.Container().Dispatch(dom.NewEvent(dom.Click))
		return
	}
	top.Overlay().Dispatch(dom.NewEvent(dom.Click))
}

// editing reports whether the active element takes text input.
func (m Model) editing() bool {
	return m.Page.Doc.ActiveElement().Tag == "input"
}

func (m Model) flushAnimations() tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range m.Page.drainClosing() {
		cmds = append(cmds, tea.Tick(m.animation, func(time.Time) tea.Msg {
			return animationEndMsg{exit: e}
		}))
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m Model) bodyHeight() int {
	return max(1, m.Height-headerLines-footerLines)
}

// layoutDialog renders d centered in the body area and returns the frame
// and the box bounds in screen coordinates.
func (m Model) layoutDialog(d *dialog.Controller) (string, ui.Rect) {
	box := ui.RenderDialog(d, m.Page.Doc.ActiveElement())
	frame, r := ui.PlaceDialog(box, m.Width, m.bodyHeight())
	r.Y += headerLines
	return frame, r
}

// View implements tea.Model
func (m Model) View() string {
	header := ui.TitleStyle.Render("micromodal")
	if crumb := ui.RenderBreadcrumb(m.Page.Names()); crumb != "" {
		header += "  " + crumb
	}

	var body string
	if top := m.Page.Topmost(); top != nil {
		body, _ = m.layoutDialog(top)
	} else {
		body = ui.RenderTree(m.Page.Doc.Body, m.Page.Doc.ActiveElement())
		body = lipgloss.NewStyle().Height(m.bodyHeight()).Render(body)
	}

	status := ui.HelpStyle.Render(m.Page.status)
	return strings.Join([]string{header, "", body, status, m.help.View(m.keys)}, "\n")
}
