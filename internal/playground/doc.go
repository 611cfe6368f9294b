// Package playground hosts a document with nested modal dialogs in a
// Bubble Tea program.
//
// The page has three triggers: an uncontrolled dialog, a dialog that plays
// an exit animation before closing, and a controlled dialog whose open flag
// lives on the page. Each dialog can open a shared nested dialog.
//
// Terminal input becomes document events: tab, shift+tab and esc are
// dispatched as keydown at the active element (with default sequential
// navigation when the dialog does not prevent it), enter and space click
// the active element, and a left click outside the dialog box clicks its
// overlay. Exit animations are simulated with tea.Tick, which dispatches
// animationend at the dialog container when the timer fires.
package playground
