package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withVersion(t *testing.T, v, c string) {
	t.Helper()
	oldV, oldC := Version, Commit
	Version, Commit = v, c
	t.Cleanup(func() { Version, Commit = oldV, oldC })
}

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name: "module version and dirty revision",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			wantVersion: "v0.3.0",
			wantCommit:  "0123456-dirty",
		},
		{
			name: "devel build uses commit time",
			info: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc"},
					{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
				},
			},
			wantVersion: "dev-20260304",
			wantCommit:  "abc",
		},
		{
			name: "no vcs data",
			info: &debug.BuildInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, "", "")
			fromBuildInfo(tt.info, true)
			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	withVersion(t, "v1.0.0", "feed")
	fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
	}, true)

	if Version != "v1.0.0" || Commit != "feed" {
		t.Errorf("got %s/%s, want ldflags values kept", Version, Commit)
	}
}

func TestGetAndFull(t *testing.T) {
	withVersion(t, "v1.2.3", "abc1234")

	info := Get()
	if info.Version != "v1.2.3" || info.Commit != "abc1234" {
		t.Errorf("Get() = %+v", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if got := Full(); got != "v1.2.3 (commit: abc1234)" {
		t.Errorf("Full() = %q", got)
	}
}
