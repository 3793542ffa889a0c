package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/autoimport/internal/testable"
)

const testViteConfig = `import { defineConfig } from 'vite'
import vue from '@vitejs/plugin-vue'

export default defineConfig({
  plugins: [vue()],
})
`

const testPackageJSON = `{
  "dependencies": { "vue": "^3.4.0" },
  "devDependencies": { "vite": "^5.0.0" }
}`

// writeVueProject creates a minimal Vue + Vite project in a temp directory.
func writeVueProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "package.json", testPackageJSON)
	writeTestFile(t, dir, "vite.config.ts", testViteConfig)
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// resetFlags restores every command's flags to their defaults so tests do
// not leak state through the package-level command tree.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	reset(rootCmd.Flags())
	reset(rootCmd.PersistentFlags())
	resetConfigFlags()
}

// newTestCmd redirects the root command's I/O and isolates it from the real
// environment: no global config, no package manager, no terminal. The
// returned executor records package manager invocations.
func newTestCmd(t *testing.T, stdin string) (*cobra.Command, *bytes.Buffer, *testable.MockCommandExecutor) {
	t.Helper()
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	oldExec, oldGit, oldTTY, oldNoColor := cmdExecutor, cmdGit, stdinIsTerminal, color.NoColor
	t.Cleanup(func() {
		cmdExecutor, cmdGit, stdinIsTerminal = oldExec, oldGit, oldTTY
		color.NoColor = oldNoColor
	})
	color.NoColor = true
	mock := &testable.MockCommandExecutor{}
	cmdExecutor = mock
	cmdGit = &testable.MockGitOpener{}
	stdinIsTerminal = func() bool { return false }

	stdout := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	return rootCmd, stdout, mock
}
