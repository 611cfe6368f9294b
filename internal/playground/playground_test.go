package playground

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/micromodal/internal/dialog"
	"github.com/muurk/micromodal/internal/dom"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Dialog == (dialog.Config{}) {
		opts.Dialog = dialog.DefaultConfig()
	}
	opts.Animation = time.Millisecond
	m := New(opts)
	t.Cleanup(m.Page.Unmount)
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func active(m Model) *dom.Element {
	return m.Page.Doc.ActiveElement()
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestInitialFocusOnFirstTrigger(t *testing.T) {
	m := newTestModel(t, Options{})

	if active(m) != m.Page.Trigger(BasicDialog) {
		t.Errorf("active element = %q, want the basic trigger", active(m).Text)
	}
}

func TestTabNavigatesPage(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = send(t, m, keyMsg(tea.KeyTab))
	if active(m) != m.Page.Trigger(AnimatedDialog) {
		t.Errorf("after tab active = %q, want the animated trigger", active(m).Text)
	}

	m, _ = send(t, m, keyMsg(tea.KeyShiftTab))
	if active(m) != m.Page.Trigger(BasicDialog) {
		t.Errorf("after shift+tab active = %q, want the basic trigger", active(m).Text)
	}
}

func TestOpenAndEscape(t *testing.T) {
	m := newTestModel(t, Options{})
	basic := m.Page.Dialog(BasicDialog)

	m, _ = send(t, m, keyMsg(tea.KeyEnter))

	if !basic.IsOpen() {
		t.Fatal("enter on the trigger should open the basic dialog")
	}
	if active(m).Tag != "a" || !basic.Container().Contains(active(m)) {
		t.Errorf("focus should be on the dialog link, got %s", active(m).Tag)
	}

	m, _ = send(t, m, keyMsg(tea.KeyEsc))

	if basic.IsOpen() {
		t.Error("esc should close the dialog")
	}
	if active(m) != m.Page.Trigger(BasicDialog) {
		t.Error("focus should return to the trigger")
	}
}

func TestTabWrapsInsideDialog(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	basic := m.Page.Dialog(BasicDialog)

	for i := 0; i < 10; i++ {
		m, _ = send(t, m, keyMsg(tea.KeyTab))
		if !basic.Container().Contains(active(m)) {
			t.Fatalf("tab %d moved focus out of the dialog to %q", i+1, active(m).Text)
		}
	}

	first := active(m)
	m, _ = send(t, m, keyMsg(tea.KeyShiftTab))
	if !basic.Container().Contains(active(m)) || active(m) == first {
		t.Error("shift+tab should move focus within the dialog")
	}
}

func TestNestedDialog(t *testing.T) {
	m := newTestModel(t, Options{})
	basic := m.Page.Dialog(BasicDialog)
	nested := m.Page.Dialog(NestedDialog)

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	// link -> input -> "Open nested"
	m, _ = send(t, m, keyMsg(tea.KeyTab))
	m, _ = send(t, m, keyMsg(tea.KeyTab))
	opener := active(m)
	if opener.Text != "Open nested" {
		t.Fatalf("active = %q, want the nested button", opener.Text)
	}

	m, _ = send(t, m, keyMsg(tea.KeyEnter))

	names := m.Page.Names()
	if len(names) != 2 || names[0] != BasicDialog || names[1] != NestedDialog {
		t.Fatalf("Names() = %v, want [basic nested]", names)
	}

	m, _ = send(t, m, keyMsg(tea.KeyEsc))
	if nested.IsOpen() || !basic.IsOpen() {
		t.Error("esc should close only the nested dialog")
	}
	if active(m) != opener {
		t.Error("focus should return to the nested button")
	}

	m, _ = send(t, m, keyMsg(tea.KeyEsc))
	if basic.IsOpen() {
		t.Error("second esc should close the basic dialog")
	}
}

func TestTypingIntoInput(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m, _ = send(t, m, keyMsg(tea.KeyTab))
	if active(m).Tag != "input" {
		t.Fatalf("active = %s, want input", active(m).Tag)
	}

	var cmd tea.Cmd
	m, _ = send(t, m, runes("hi"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd = send(t, m, runes("q"))
	m, _ = send(t, m, keyMsg(tea.KeyBackspace))

	if isQuit(cmd) {
		t.Error("q typed into an input must not quit")
	}
	if v, _ := active(m).Attribute("value"); v != "hi " {
		t.Errorf("value = %q, want %q", v, "hi ")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := send(t, m, keyMsg(tea.KeyEnter))
	if isQuit(cmd) {
		t.Fatal("enter should not quit")
	}
	m, cmd = send(t, m, runes("q"))
	if isQuit(cmd) {
		t.Error("q must not quit while a dialog is open")
	}

	_, cmd = send(t, m, keyMsg(tea.KeyCtrlC))
	if !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}

	m2 := newTestModel(t, Options{})
	_, cmd = send(t, m2, runes("q"))
	if !isQuit(cmd) {
		t.Error("q should quit with no dialog open")
	}
}

func TestAnimatedDialogClosesAfterTick(t *testing.T) {
	m := newTestModel(t, Options{})
	animated := m.Page.Dialog(AnimatedDialog)
	trigger := m.Page.Trigger(AnimatedDialog)
	trigger.Focus()

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m, cmd := send(t, m, keyMsg(tea.KeyEsc))

	if animated.State() != dialog.StateClosing {
		t.Fatalf("State() = %v, want closing", animated.State())
	}
	if cmd == nil {
		t.Fatal("closing should schedule the animation end")
	}

	m, _ = send(t, m, cmd())

	if animated.State() != dialog.StateClosed {
		t.Errorf("State() = %v, want closed", animated.State())
	}
	if active(m) != trigger {
		t.Error("focus should return to the animated trigger")
	}
}

func TestStaleAnimationEndIgnored(t *testing.T) {
	m := newTestModel(t, Options{})
	basic := m.Page.Dialog(BasicDialog)
	m, _ = send(t, m, keyMsg(tea.KeyEnter))

	m, _ = send(t, m, animationEndMsg{exit{DialogID: basic.ID(), Seq: 0}})
	if basic.State() != dialog.StateOpen {
		t.Errorf("State() = %v, want open", basic.State())
	}
	_, _ = send(t, m, animationEndMsg{exit{DialogID: "unknown", Seq: 1}})
}

func TestEarlierExitTickIgnoredAfterReopen(t *testing.T) {
	m := newTestModel(t, Options{})
	animated := m.Page.Dialog(AnimatedDialog)
	m.Page.Trigger(AnimatedDialog).Focus()

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	m, first := send(t, m, keyMsg(tea.KeyEsc))
	if first == nil {
		t.Fatal("closing should schedule the animation end")
	}

	animated.Open()
	if animated.State() != dialog.StateOpen {
		t.Fatalf("State() after reopen = %v, want open", animated.State())
	}
	m, second := send(t, m, keyMsg(tea.KeyEsc))
	if second == nil {
		t.Fatal("closing again should schedule another animation end")
	}

	m, _ = send(t, m, first())
	if animated.State() != dialog.StateClosing {
		t.Errorf("State() after the earlier tick = %v, want closing", animated.State())
	}

	_, _ = send(t, m, second())
	if animated.State() != dialog.StateClosed {
		t.Errorf("State() after the latest tick = %v, want closed", animated.State())
	}
}

func TestControlledDialog(t *testing.T) {
	m := newTestModel(t, Options{})
	controlled := m.Page.Dialog(ControlledDialog)
	m.Page.Trigger(ControlledDialog).Focus()

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	if !m.Page.ControlledOpen() || !controlled.IsOpen() {
		t.Fatal("trigger should set the flag and open the controlled dialog")
	}

	m, _ = send(t, m, keyMsg(tea.KeyEsc))
	if m.Page.ControlledOpen() || controlled.IsOpen() {
		t.Error("esc should reach the page's close handler and close the dialog")
	}
}

func TestMouseClicks(t *testing.T) {
	m := newTestModel(t, Options{Mouse: true})
	basic := m.Page.Dialog(BasicDialog)
	m, _ = send(t, m, keyMsg(tea.KeyEnter))

	_, box := m.layoutDialog(basic)
	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ = send(t, m, click(box.X+1, box.Y+1))
	if !basic.IsOpen() {
		t.Fatal("a click inside the box must not close the dialog")
	}

	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !basic.IsOpen() {
		t.Fatal("button releases are ignored")
	}

	_, _ = send(t, m, click(0, headerLines))
	if basic.IsOpen() {
		t.Error("a click outside the box should close the dialog")
	}
}

func TestOpenInitially(t *testing.T) {
	m := newTestModel(t, Options{OpenInitially: true})

	if top := m.Page.Topmost(); top == nil || top.Name() != BasicDialog {
		t.Fatalf("Topmost() = %v, want the basic dialog", top)
	}
}

func TestLinkSetsStatus(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, keyMsg(tea.KeyEnter))

	m, _ = send(t, m, keyMsg(tea.KeyEnter))

	if m.Page.status != "link followed" {
		t.Errorf("status = %q, want link followed", m.Page.status)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})

	page := m.View()
	if !containsAll(page, "micromodal", "Open basic") {
		t.Errorf("page view missing expected text:\n%s", page)
	}

	m, _ = send(t, m, keyMsg(tea.KeyEnter))
	view := m.View()
	if !containsAll(view, "page > basic", "An uncontrolled dialog.") {
		t.Errorf("dialog view missing expected text:\n%s", view)
	}
}
