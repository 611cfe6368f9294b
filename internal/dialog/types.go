package dialog

import (
	"fmt"

	"github.com/muurk/micromodal/internal/dom"
)

// State is a dialog lifecycle state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateClosing
)

// String returns the lowercase state name used in data-state attributes
// and logs.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds the per-dialog behaviour switches.
type Config struct {
	CloseOnEscapePress       bool
	CloseOnOverlayClick      bool
	CloseOnAnimationEnd      bool
	DisableFirstElementFocus bool
}

// DefaultConfig returns escape and overlay-click closing enabled, no exit
// animation and first-element focus on open.
func DefaultConfig() Config {
	return Config{
		CloseOnEscapePress:  true,
		CloseOnOverlayClick: true,
	}
}

// Mode selects who owns the open flag. It is either Controlled or
// Uncontrolled.
type Mode interface {
	isMode()
}

// Uncontrolled dialogs own their open flag.
type Uncontrolled struct {
	InitiallyOpen bool
}

// Controlled dialogs mirror a flag owned by the caller.
type Controlled struct {
	// Open is the caller's flag at construction time. Later changes arrive
	// through Controller.SetOpen.
	Open bool
	// OnRequestClose is asked to close the dialog on escape, overlay click
	// or the content's close function.
	OnRequestClose func()
}

func (Uncontrolled) isMode() {}
func (Controlled) isMode()   {}

// Transition describes one state change.
type Transition struct {
	DialogID string
	Name     string
	From     State
	To       State
	// Depth is the stack length after the change.
	Depth int
}

// Observer is notified after every state change.
type Observer interface {
	DialogTransition(t Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Transition)

// DialogTransition calls f(t).
func (f ObserverFunc) DialogTransition(t Transition) {
	f(t)
}

// ContentFunc builds the dialog body each time the dialog opens. closeFn
// is the dialog's close request.
type ContentFunc func(closeFn func()) []*dom.Element
