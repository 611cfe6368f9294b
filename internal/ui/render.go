package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/micromodal/internal/dialog"
	"github.com/muurk/micromodal/internal/dom"
)

// Dialog is the part of a dialog controller the renderer reads.
type Dialog interface {
	Name() string
	State() dialog.State
	Container() *dom.Element
}

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RenderTree renders the children of root, one block element per line.
// Dialog roots (class "modal") are skipped; they are drawn by RenderDialog.
func RenderTree(root, active *dom.Element) string {
	var lines []string
	for _, child := range root.Children() {
		if line, ok := renderBlock(child, active); ok {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func renderBlock(el, active *dom.Element) (string, bool) {
	if skipped(el) {
		return "", false
	}
	switch el.Tag {
	case "div", "p", "section", "form":
		if len(el.Children()) == 0 {
			if el.Text == "" {
				return "", false
			}
			return TextStyle.Render(el.Text), true
		}
		// Inline children share a line; nested blocks stack.
		var parts []string
		if el.Text != "" {
			parts = append(parts, TextStyle.Render(el.Text))
		}
		for _, child := range el.Children() {
			if skipped(child) {
				continue
			}
			parts = append(parts, RenderInline(child, active))
		}
		if el.Tag == "p" {
			return strings.Join(parts, " "), true
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...), true
	default:
		return RenderInline(el, active), true
	}
}

// skipped reports dialog roots and portal nodes.
func skipped(el *dom.Element) bool {
	if el.HasClass("modal") {
		return true
	}
	for _, c := range el.Classes() {
		if strings.HasSuffix(c, "-portal") {
			return true
		}
	}
	return false
}

// RenderInline renders a single element by tag. The active element is drawn
// with FocusedStyle.
func RenderInline(el, active *dom.Element) string {
	label := Label(el)
	if el == active {
		return FocusedStyle.Render(FocusMarker + " " + label)
	}
	switch el.Tag {
	case "h1", "h2", "h3":
		return TitleStyle.Render(label)
	case "a":
		return LinkStyle.Render(label)
	case "button":
		return ButtonStyle.Render(label)
	case "input", "textarea":
		return InputStyle.Render(label)
	default:
		return TextStyle.Render(label)
	}
}

// Label returns the visible text of an element. Inputs show their value,
// falling back to the placeholder.
func Label(el *dom.Element) string {
	switch el.Tag {
	case "input", "textarea":
		v, _ := el.Attribute("value")
		if v == "" {
			v, _ = el.Attribute("placeholder")
		}
		return "[" + padRight(v, 16) + "]"
	}
	if el.Text != "" {
		return el.Text
	}
	return el.Tag
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat("_", n-w)
	}
	return s
}

// RenderDialog draws the dialog's content inside a bordered box. Closing
// dialogs are drawn faint with a warning border.
func RenderDialog(d Dialog, active *dom.Element) string {
	var lines []string
	if name := d.Name(); name != "" {
		lines = append(lines, TitleStyle.Render(name), "")
	}
	if body := RenderTree(d.Container(), active); body != "" {
		lines = append(lines, body)
	}

	style := DialogBoxStyle(DialogWidth)
	if d.State() == dialog.StateClosing {
		style = ClosingBoxStyle(DialogWidth)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// PlaceDialog centers box in a width x height area, hiding the page behind it, and returns the frame
// together with the box bounds, for mouse hit testing.
func PlaceDialog(box string, width, height int) (string, Rect) {
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	r := Rect{X: max(0, (width-bw)/2), Y: max(0, (height-bh)/2), W: bw, H: bh}
	frame := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	return frame, r
}

// RenderBreadcrumb renders the open dialogs from bottom to top.
func RenderBreadcrumb(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return BreadcrumbStyle.Render("page > " + strings.Join(names, " > "))
}
