package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name string
		bi   debug.BuildInfo
		want Info
	}{
		{
			name: "installed module version",
			bi:   debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}},
			want: Info{Version: "v1.2.0"},
		},
		{
			name: "devel build keeps version empty",
			bi:   debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{},
		},
		{
			name: "vcs settings",
			bi: debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
			}},
			want: Info{Commit: "0123456", Dirty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Info
			fill(&got, &tt.bi)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFill_LdflagsWin(t *testing.T) {
	got := Info{Version: "v9.9.9", Commit: "feedbee"}
	fill(&got, &debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
	})
	assert.Equal(t, "v9.9.9", got.Version)
	assert.Equal(t, "feedbee", got.Commit)
}

func TestInfoString(t *testing.T) {
	i := Info{Version: "v1.0.0", Commit: "abc1234", Dirty: true, GoVersion: "go1.24.10"}
	assert.Equal(t, "cfgedit v1.0.0 (commit: abc1234-dirty, go1.24.10)", i.String())
}

func TestGet_NeverEmpty(t *testing.T) {
	i := Get()
	assert.NotEmpty(t, i.Version)
	assert.NotEmpty(t, i.Commit)
}
