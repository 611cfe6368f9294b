package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/muurk/micromodal/internal/inspect"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		configPath = ""
		configForce = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "path", "--config", path)
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), path)
	}

	out, err = execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out, "Config written") {
		t.Errorf("config init output = %q", out)
	}

	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Error("second config init without --force should fail")
	}

	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "close_on_escape_press: true") {
		t.Errorf("config show output = %q", out)
	}
}

func TestPrintMessage(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	tests := []struct {
		name string
		msg  inspect.Message
		want string
	}{
		{
			name: "hello",
			msg:  inspect.Message{Kind: inspect.KindHello, Version: "v1.0.0", At: at},
			want: "03:04:05.000 connected to micromodal v1.0.0",
		},
		{
			name: "named transition",
			msg:  inspect.Message{Kind: inspect.KindTransition, Name: "basic", From: "closed", To: "open", Depth: 1, At: at},
			want: "depth=1",
		},
		{
			name: "unnamed transition falls back to id",
			msg:  inspect.Message{Kind: inspect.KindTransition, DialogID: "abc-123", From: "open", To: "closed", At: at},
			want: "abc-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			printMessage(&b, tt.msg)
			if !strings.Contains(b.String(), tt.want) {
				t.Errorf("printMessage() = %q, want it to contain %q", b.String(), tt.want)
			}
		})
	}
}
