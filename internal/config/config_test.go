package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME applies to linux only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	want := filepath.Join(dir, "micromodal", "config.yaml")
	if path != want {
		t.Errorf("Path() = %v, want %v", path, want)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != CurrentVersion {
		t.Errorf("Default().Version = %v, want %v", cfg.Version, CurrentVersion)
	}
	dc := cfg.DialogConfig()
	if !dc.CloseOnEscapePress || !dc.CloseOnOverlayClick {
		t.Error("escape and overlay closing should be enabled by default")
	}
	if dc.CloseOnAnimationEnd || dc.DisableFirstElementFocus {
		t.Error("animation gating and disabled focus should be off by default")
	}
	if cfg.AnimationDuration() != 300*time.Millisecond {
		t.Errorf("AnimationDuration() = %v, want 300ms", cfg.AnimationDuration())
	}
}

func TestLoadFileMissingReturnsDefault(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Inspector.Addr != Default().Inspector.Addr {
		t.Errorf("Inspector.Addr = %v, want default", cfg.Inspector.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			content: `version: 1
dialog:
  close_on_escape_press: false
  close_on_overlay_click: true
  close_on_animation_end: true
  animation_ms: 120
inspector:
  addr: 0.0.0.0:9000
  advertise: true
`,
			check: func(t *testing.T, cfg *Config) {
				dc := cfg.DialogConfig()
				if dc.CloseOnEscapePress || !dc.CloseOnAnimationEnd {
					t.Errorf("DialogConfig() = %+v", dc)
				}
				if cfg.AnimationDuration() != 120*time.Millisecond {
					t.Errorf("AnimationDuration() = %v, want 120ms", cfg.AnimationDuration())
				}
				if cfg.Inspector.Addr != "0.0.0.0:9000" || !cfg.Inspector.Advertise {
					t.Errorf("Inspector = %+v", cfg.Inspector)
				}
				if cfg.Playground == nil || !cfg.Playground.Mouse {
					t.Error("missing playground section should be filled with defaults")
				}
			},
		},
		{
			name:    "version only",
			content: "version: 1\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Dialog == nil || cfg.Dialog.AnimationMS != 300 {
					t.Errorf("Dialog = %+v, want defaults", cfg.Dialog)
				}
			},
		},
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "missing version",
			content: "dialog:\n  animation_ms: 10\n",
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadFile(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: [1"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should fail on invalid YAML")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Dialog.CloseOnAnimationEnd = true
	cfg.Dialog.OpenInitially = true
	cfg.Inspector.Advertise = true

	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# micromodal configuration") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !loaded.Dialog.CloseOnAnimationEnd || !loaded.Dialog.OpenInitially || !loaded.Inspector.Advertise {
		t.Errorf("loaded config = %+v %+v", loaded.Dialog, loaded.Inspector)
	}
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := InitFile(path, false); err != nil {
		t.Fatalf("InitFile() error = %v", err)
	}
	if err := InitFile(path, false); !errors.Is(err, ErrExists) {
		t.Errorf("second InitFile() error = %v, want ErrExists", err)
	}
	if err := InitFile(path, true); err != nil {
		t.Errorf("InitFile(force) error = %v", err)
	}
}

func TestDialogConfigNilSection(t *testing.T) {
	cfg := &Config{Version: CurrentVersion}
	if cfg.DialogConfig() != Default().DialogConfig() {
		t.Error("nil dialog section should convert to the default dialog config")
	}
}
