// Package portal mounts a subtree into a container appended to the
// document body, or to a caller-supplied parent, outside of the subtree's
// logical place in the application tree.
package portal

import (
	"fmt"

	"github.com/muurk/micromodal/internal/dom"
)

// Mounter is the portal contract dialog controllers depend on.
type Mounter interface {
	Mount(content, parent *dom.Element, opts ...MountOption) *Handle
	Unmount(h *Handle)
}

// MountOption configures a single Mount call.
type MountOption func(*mountOptions)

type mountOptions struct {
	id string
}

// WithID names the portal node "<id>-portal" instead of the numbered
// default.
func WithID(id string) MountOption {
	return func(o *mountOptions) {
		o.id = id
	}
}

// Handle refers to one mounted portal node.
type Handle struct {
	node *dom.Element
}

// Node returns the portal container element.
func (h *Handle) Node() *dom.Element {
	if h == nil {
		return nil
	}
	return h.node
}

// Mounted reports whether the portal node is still attached to a parent.
func (h *Handle) Mounted() bool {
	return h != nil && h.node != nil && h.node.Parent() != nil
}

const (
	defaultPrefix = "micro-modal-portal"
	sequenceName  = "portal"
)

// Portal creates portal nodes in one document. Unnamed nodes are numbered
// per document, so portals sharing a document never reuse a number.
type Portal struct {
	doc *dom.Document
}

// New creates a Portal for doc.
func New(doc *dom.Document) *Portal {
	return &Portal{doc: doc}
}

// Mount wraps content in a new portal node and appends it to parent, or to
// the document body when parent is nil.
func (p *Portal) Mount(content, parent *dom.Element, opts ...MountOption) *Handle {
	var o mountOptions
	for _, opt := range opts {
		opt(&o)
	}

	node := p.doc.CreateElement("div")
	if o.id != "" {
		node.SetAttribute("class", o.id+"-portal")
	} else {
		node.SetAttribute("class", fmt.Sprintf("%s-%d", defaultPrefix, p.doc.Sequence(sequenceName)))
	}

	if parent == nil {
		parent = p.doc.Body
	}
	parent.AppendChild(node)
	if content != nil {
		node.AppendChild(content)
	}
	return &Handle{node: node}
}

// Unmount detaches the portal node. It is safe to call more than once.
func (p *Portal) Unmount(h *Handle) {
	if h == nil || h.node == nil {
		return
	}
	h.node.Remove()
}
