package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, "v1.2.0", Info{Version: "v1.2.0", GitCommit: "unknown"}.Short())
	assert.Equal(t, "v1.2.0", Info{Version: "v1.2.0", GitCommit: "abc"}.Short())
	assert.Equal(t, "v1.2.0 (0123456)", Info{Version: "v1.2.0", GitCommit: "0123456789"}.Short())
}

func TestString(t *testing.T) {
	s := Info{
		Version:   "v1.0.0",
		GitCommit: "unknown",
		BuildTime: "2025-01-01T00:00:00Z",
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
		Dirty:     true,
	}.String()

	lines := strings.Split(s, "\n")
	assert.Equal(t, []string{
		"expressor v1.0.0 (dirty)",
		"Built: 2025-01-01T00:00:00Z",
		"Go: go1.24.4",
		"Platform: linux/amd64",
	}, lines)
}

func TestGet(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v9.9.9"

	info := Get()
	assert.Equal(t, "v9.9.9", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}
