package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lego290/spine2d/internal/enginetest"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("/nonexistent/skeleton.json")
	require.Error(t, err)
	assert.Equal(t, "failed to open: /nonexistent/skeleton.json", err.Error())
}

func TestLoadAtlas(t *testing.T) {
	w := &enginetest.World{}
	drv := enginetest.NewDriver(w)
	path := writeFile(t, "chars.atlas", "chars.png\n")

	_, err := LoadAtlas(drv, path)
	require.NoError(t, err)
	assert.Contains(t, w.Calls, "driver.loadAtlas 10 bytes")
}

func TestLoadAtlasError(t *testing.T) {
	w := &enginetest.World{AtlasErr: "bad page header"}
	drv := enginetest.NewDriver(w)
	path := writeFile(t, "chars.atlas", "broken")

	_, err := LoadAtlas(drv, path)
	require.Error(t, err)
	assert.Equal(t, "atlas error: bad page header", err.Error())
}

func TestLoadSkeletonFormatDispatch(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		wantCall string
	}{
		{"json by default", "hero.json", "driver.loadSkeletonJSON"},
		{"binary for .skel", "hero.skel", "driver.loadSkeletonBinary"},
		{"json for other extensions", "hero.txt", "driver.loadSkeletonJSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &enginetest.World{}
			drv := enginetest.NewDriver(w)
			atlas, err := drv.LoadAtlas("pages")
			require.NoError(t, err)
			path := writeFile(t, tt.file, "data")

			_, err = LoadSkeleton(drv, atlas, path)
			require.NoError(t, err)
			require.Len(t, w.Calls, 2)
			assert.Contains(t, w.Calls[1], tt.wantCall)
		})
	}
}

func TestLoadSkeletonError(t *testing.T) {
	w := &enginetest.World{SkeletonErr: "version mismatch"}
	drv := enginetest.NewDriver(w)
	atlas, err := drv.LoadAtlas("pages")
	require.NoError(t, err)
	path := writeFile(t, "hero.json", "{}")

	_, err = LoadSkeleton(drv, atlas, path)
	require.Error(t, err)
	assert.Equal(t, "skeleton data error: version mismatch", err.Error())
}

func TestParseBoolFlag(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"0", false},
		{"2", true},
		{"-1", true},
		{"", false},
		{"yes", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseBoolFlag(tt.in), "ParseBoolFlag(%q)", tt.in)
	}
}
