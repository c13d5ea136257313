package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCenter(t *testing.T) {
	c, err := parseCenter("35.0, 139.5")
	require.NoError(t, err)
	assert.Equal(t, [2]float64{35.0, 139.5}, c)

	for _, bad := range []string{"35", "a,b", "1,2,3", "", "NaN,139", "35,Inf", "-infinity,0"} {
		_, err := parseCenter(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(Options{Center: "35,139", Zoom: 7, NoMinify: true})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{35, 139}, cfg.Center)
	assert.Equal(t, 7, cfg.Zoom)
	assert.False(t, cfg.Minify)

	_, err = loadConfig(Options{Zoom: 30})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Kyushu\n"), 0o644))
	cfg, err = loadConfig(Options{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "Kyushu", cfg.Title)
	assert.True(t, cfg.Minify)
}

func TestResolvePaths(t *testing.T) {
	dir, err := resolveBaseDir("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	dir, err = resolveBaseDir("/data")
	require.NoError(t, err)
	assert.Equal(t, "/data", dir)

	assert.Equal(t, filepath.Join("/data", "points.xlsx"), resolvePath("/data", "points.xlsx"))
	assert.Equal(t, "/tmp/out.html", resolvePath("/data", "/tmp/out.html"))
}
