// Package ui renders micromodal's terminal output with Lipgloss.
//
// It has two halves. The element renderer draws a dom tree as text for the
// playground: RenderTree draws the page, RenderDialog draws the topmost
// dialog in a bordered box and PlaceDialog centers it in place of
// the page, returning the box bounds so mouse clicks can be classified as
// inside the dialog or on its overlay. The Printer draws the success and
// error boxes the CLI commands print.
//
// Rendering only reads the tree. Focus, stack order and lifecycle state
// stay with the dom, modalstack and dialog packages.
package ui
