// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	content := `
library: naive-ui
package_manager: pnpm
skip_install: true
require_clean: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "naive-ui", cfg.Library)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.SkipInstall)
	assert.False(t, cfg.AssumeYes)
	assert.True(t, cfg.RequireClean)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid yaml"), 0o600))

	cfg, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(""), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Library)
}

func TestLoad_PermissionError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("library: vant"), 0o600))
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(path, 0o600)
	})

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Config{Library: "vant", AssumeYes: true}))
	assert.Equal(t, "library: vant\nassume_yes: true\n", buf.String())
}

func TestRawRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	m, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Empty(t, m)

	m["library"] = "vant"
	m["custom"] = "kept"
	require.NoError(t, WriteFile(path, m))

	got, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"library": "vant", "custom": "kept"}, got)
}

func TestGlobalConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "autoimport"), GlobalConfigDir())

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/autoimport", GlobalConfigDir())
	assert.Equal(t, "/custom/config/autoimport/config.yaml", GlobalConfigPath())
}

func TestLoadEffective(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "autoimport"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "autoimport", "config.yaml"),
		[]byte("library: vant\npackage_manager: yarn\nassume_yes: true\n"), 0o600))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, FileName),
		[]byte("library: element-plus\n"), 0o600))

	cfg, err := LoadEffective(project)
	require.NoError(t, err)
	assert.Equal(t, &Config{Library: "element-plus", PackageManager: "yarn", AssumeYes: true}, cfg)
}

func TestLoadEffective_BadGlobal(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "autoimport"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "autoimport", "config.yaml"), []byte("library: [oops"), 0o600))

	_, err := LoadEffective(t.TempDir())
	assert.Error(t, err)
}
