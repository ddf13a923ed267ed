package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/soypat/lampshade"
	"github.com/soypat/lampshade/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config that keeps the logger quiet and the meshes small.
func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	data := "logging:\n  level: error\noutput:\n  dir: " + dir + "\npreview:\n  width: 48\n  height: 32\n  supersample: 1\nparams:\n  detail: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestRunSTL(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	out := filepath.Join(dir, "shade.stl")
	require.NoError(t, run(context.Background(), []string{"stl", "-config", cfg, "-o", out}, &bytes.Buffer{}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(84))
	assert.Zero(t, (info.Size()-84)%50)
}

func TestRunDesignFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	design := filepath.Join(dir, "design.txt")
	require.NoError(t, os.WriteFile(design, []byte("40,70,60,80,5,1.5,120,30,3,2\n"), 0644))

	require.NoError(t, run(context.Background(), []string{"stl", "-config", cfg, "-design", design, "-detail", "25"}, &bytes.Buffer{}))
	p, err := lampshade.ParseDesign("40,70,60,80,5,1.5,25,30,3,2", lampshade.DefaultParams())
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, p.Name()+".stl"))
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(design, []byte("40,70"), 0644))
	err = run(context.Background(), []string{"stl", "-config", cfg, "-design", design}, &bytes.Buffer{})
	assert.ErrorIs(t, err, lampshade.ErrDesignFormat)
}

func TestRunPreviewAndProfile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	for _, cmd := range []string{"preview", "profile"} {
		out := filepath.Join(dir, "img", cmd+".png")
		require.NoError(t, run(context.Background(), []string{cmd, "-config", cfg, "-o", out}, &bytes.Buffer{}), cmd)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), cmd)
	}
}

func TestRunRandomSeeded(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	var first, second bytes.Buffer
	args := []string{"random", "-config", cfg, "-seed", "7", "-o", filepath.Join(dir, "r.stl")}
	require.NoError(t, run(context.Background(), args, &first))
	require.NoError(t, run(context.Background(), args, &second))
	assert.Equal(t, first.String(), second.String())

	line := strings.TrimSpace(first.String())
	_, err := lampshade.ParseDesign(line, lampshade.DefaultParams())
	assert.NoError(t, err)
}

func TestRunUsage(t *testing.T) {
	assert.ErrorIs(t, run(context.Background(), nil, &bytes.Buffer{}), errUsage)
	dir := t.TempDir()
	err := run(context.Background(), []string{"carve", "-config", writeConfig(t, dir)}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errUsage)
}

func TestRunOutDir(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	outdir := filepath.Join(dir, "parts")
	require.NoError(t, run(context.Background(), []string{"stl", "-config", cfg, "-outdir", outdir}, &bytes.Buffer{}))

	p := lampshade.DefaultParams()
	p.Detail = 25
	_, err := os.Stat(filepath.Join(outdir, p.Derive().Name()+".stl"))
	assert.NoError(t, err)
}

func TestRunSaveConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)
	out := filepath.Join(dir, "saved", "config.yaml")
	require.NoError(t, run(context.Background(), []string{"config", "-config", cfg, "-detail", "40", "-o", out}, &bytes.Buffer{}))

	saved, err := config.Load(out, config.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, 40, saved.Params.Detail)
	assert.Equal(t, "error", saved.Logging.Level)
	assert.Equal(t, 48, saved.Preview.Width)

	if runtime.GOOS != "linux" {
		t.Skip("user config directory is only redirected through XDG_CONFIG_HOME on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	require.NoError(t, run(context.Background(), []string{"config", "-config", cfg}, &bytes.Buffer{}))
	_, err = os.Stat(filepath.Join(dir, "xdg", "lampshade", "config.yaml"))
	assert.NoError(t, err)
}
