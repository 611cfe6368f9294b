package dialog

import (
	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/dom"
	"github.com/muurk/micromodal/internal/portal"
)

// Option is a functional option for New.
type Option func(*Controller)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithContent sets the function that builds the dialog body on open.
func WithContent(fn ContentFunc) Option {
	return func(c *Controller) {
		c.content = fn
	}
}

// WithName sets the element id of the root, its data-testid and the portal
// class prefix. It is also reported in transitions. The controller's
// identity stays its generated ID.
func WithName(name string) Option {
	return func(c *Controller) {
		c.name = name
	}
}

// WithParent mounts the dialog under parent instead of the document body.
func WithParent(parent *dom.Element) Option {
	return func(c *Controller) {
		c.parent = parent
	}
}

// WithPortal replaces the default portal.
func WithPortal(m portal.Mounter) Option {
	return func(c *Controller) {
		c.mounter = m
	}
}

// WithLogger sets the logger. The default is the "dialog" child of the
// global logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithObserver adds an observer for state transitions.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithClassName appends a class to the root element.
func WithClassName(name string) Option {
	return func(c *Controller) {
		c.className = name
	}
}

// WithOverlayClassName appends a class to the overlay element.
func WithOverlayClassName(name string) Option {
	return func(c *Controller) {
		c.overlayClassName = name
	}
}
