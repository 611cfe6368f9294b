package config

import (
	"time"

	"github.com/muurk/micromodal/internal/dialog"
)

// CurrentVersion is the only config file version this build reads.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version    int              `yaml:"version"`
	Dialog     *DialogDefaults  `yaml:"dialog,omitempty"`
	Playground *PlaygroundPrefs `yaml:"playground,omitempty"`
	Inspector  *InspectorPrefs  `yaml:"inspector,omitempty"`
}

// DialogDefaults are the behaviour switches applied to every dialog the
// playground creates.
type DialogDefaults struct {
	CloseOnEscapePress       bool `yaml:"close_on_escape_press"`
	CloseOnOverlayClick      bool `yaml:"close_on_overlay_click"`
	CloseOnAnimationEnd      bool `yaml:"close_on_animation_end"`
	DisableFirstElementFocus bool `yaml:"disable_first_element_focus"`
	OpenInitially            bool `yaml:"open_initially"`
	AnimationMS              int  `yaml:"animation_ms"` // Exit animation length in the playground
}

// PlaygroundPrefs configures the terminal playground.
type PlaygroundPrefs struct {
	Mouse   bool   `yaml:"mouse"`              // Enable mouse click reporting
	LogFile string `yaml:"log_file,omitempty"` // zap output while the TUI owns the terminal
}

// InspectorPrefs configures the event inspector.
type InspectorPrefs struct {
	Addr      string `yaml:"addr"`      // Listen address, e.g. "127.0.0.1:7781"
	Advertise bool   `yaml:"advertise"` // Announce the inspector over mDNS
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Dialog: &DialogDefaults{
			CloseOnEscapePress:  true,
			CloseOnOverlayClick: true,
			AnimationMS:         300,
		},
		Playground: &PlaygroundPrefs{
			Mouse: true,
		},
		Inspector: &InspectorPrefs{
			Addr: "127.0.0.1:7781",
		},
	}
}

// fillDefaults replaces missing sections with their defaults.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Dialog == nil {
		c.Dialog = def.Dialog
	}
	if c.Dialog.AnimationMS <= 0 {
		c.Dialog.AnimationMS = def.Dialog.AnimationMS
	}
	if c.Playground == nil {
		c.Playground = def.Playground
	}
	if c.Inspector == nil {
		c.Inspector = def.Inspector
	}
	if c.Inspector.Addr == "" {
		c.Inspector.Addr = def.Inspector.Addr
	}
}

// DialogConfig converts the dialog defaults to a dialog.Config.
func (c *Config) DialogConfig() dialog.Config {
	d := c.Dialog
	if d == nil {
		return dialog.DefaultConfig()
	}
	return dialog.Config{
		CloseOnEscapePress:       d.CloseOnEscapePress,
		CloseOnOverlayClick:      d.CloseOnOverlayClick,
		CloseOnAnimationEnd:      d.CloseOnAnimationEnd,
		DisableFirstElementFocus: d.DisableFirstElementFocus,
	}
}

// AnimationDuration returns the playground's exit animation length.
func (c *Config) AnimationDuration() time.Duration {
	if c.Dialog == nil || c.Dialog.AnimationMS <= 0 {
		return time.Duration(Default().Dialog.AnimationMS) * time.Millisecond
	}
	return time.Duration(c.Dialog.AnimationMS) * time.Millisecond
}
