package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionDefault(t *testing.T) {
	assert.Equal(t, "dev", Version)
}

func TestVersionSubcommand(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "")
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "autoimport dev\n", out.String())
}

func TestList(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "")
	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "RESOLVER")
	assert.Contains(t, lines[1], "element-plus")
	assert.Contains(t, lines[1], "ElementPlusResolver")
	assert.Contains(t, lines[1], "unplugin-auto-import unplugin-vue-components")
	assert.Contains(t, lines[4], "vant")
}

func TestInspect_ValidProject(t *testing.T) {
	dir := writeVueProject(t)
	writeTestFile(t, dir, "pnpm-lock.yaml", "")
	cmd, out, _ := newTestCmd(t, "")
	cmd.SetArgs([]string{"inspect", dir})

	require.NoError(t, cmd.Execute())
	s := out.String()
	assert.Contains(t, s, "valid:           yes")
	assert.Contains(t, s, "package manager: pnpm")
	assert.Contains(t, s, filepath.Join(dir, "vite.config.ts"))
}

func TestInspect_InvalidProject(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "package.json", `{"dependencies":{"react":"^18.0.0"}}`)
	cmd, out, _ := newTestCmd(t, "")
	cmd.SetArgs([]string{"inspect", dir})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidProject)
	assert.Contains(t, ece.Error(), "not a Vue + Vite project")
	assert.Contains(t, out.String(), "vue dependency not found")
}

func TestInspect_TooManyArgs(t *testing.T) {
	cmd, _, _ := newTestCmd(t, "")
	cmd.SetArgs([]string{"inspect", "a", "b"})
	assert.Error(t, cmd.Execute())
}

func TestConfigSetGetList(t *testing.T) {
	dir := t.TempDir()
	cmd, out, _ := newTestCmd(t, "")

	cmd.SetArgs([]string{"config", "set", "-p", dir, "library", "vant"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Set library = vant")
	assert.Contains(t, readTestFile(t, filepath.Join(dir, ".autoimport.yaml")), "library: vant")

	out.Reset()
	resetConfigFlags()
	cmd.SetArgs([]string{"config", "set", "--global", "package_manager", "pnpm"})
	require.NoError(t, cmd.Execute())

	out.Reset()
	resetConfigFlags()
	cmd.SetArgs([]string{"config", "get", "-p", dir, "package_manager"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "pnpm\n", out.String())

	out.Reset()
	resetConfigFlags()
	cmd.SetArgs([]string{"config", "list", "-p", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "library = vant (project)")
	assert.Contains(t, out.String(), "package_manager = pnpm (global)")
}

func TestConfigSet_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	cmd, _, _ := newTestCmd(t, "")

	cmd.SetArgs([]string{"config", "set", "-p", dir, "library", "vuetify"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "library:")
	assert.NoFileExists(t, filepath.Join(dir, ".autoimport.yaml"))

	resetConfigFlags()
	cmd.SetArgs([]string{"config", "set", "-p", dir, "color", "red"})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestConfigList_Empty(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "")
	cmd.SetArgs([]string{"config", "list", "-p", t.TempDir()})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No configuration set.")
}
