// Package config manages the micromodal user configuration file.
//
// The file is YAML and versioned. It holds the default dialog behaviour
// switches used by the playground, playground preferences and the
// inspector's listen address.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/micromodal/config.yaml or $HOME/.config/micromodal/config.yaml
//   - macOS: $HOME/.config/micromodal/config.yaml
//   - Windows: %LOCALAPPDATA%\micromodal\config.yaml
//
// # Example
//
//	version: 1
//	dialog:
//	  close_on_escape_press: true
//	  close_on_overlay_click: true
//	  close_on_animation_end: false
//	  disable_first_element_focus: false
//	  open_initially: false
//	  animation_ms: 300
//	playground:
//	  mouse: true
//	inspector:
//	  addr: 127.0.0.1:7781
//	  advertise: false
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := dialog.New(doc, stack, dialog.Uncontrolled{},
//	    dialog.WithConfig(cfg.DialogConfig()))
//
// Writes go through a temporary file and a rename so a crash never leaves
// a truncated file behind.
package config
