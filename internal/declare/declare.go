// Package declare writes the placeholder type declarations that the
// unplugin plugins regenerate on the first dev-server run.
package declare

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/davetashner/autoimport/internal/action"
	"github.com/davetashner/autoimport/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Declaration file names, in emission order.
const (
	ComponentsFile  = "components.d.ts"
	AutoImportsFile = "auto-imports.d.ts"
)

const componentsContent = `// Generated by autoimport. Do not edit by hand.
// unplugin-vue-components fills this in when the project builds.

declare module 'vue' {
  export interface GlobalComponents {
    // populated at build time
  }
}

export {}
`

const autoImportsContent = `// Generated by autoimport. Do not edit by hand.
// unplugin-auto-import fills this in when the project builds.

declare global {
  // populated at build time
}

export {}
`

// File is a declaration file and its placeholder content.
type File struct {
	Name    string
	Content string
}

// Files returns the declaration files in emission order.
func Files() []File {
	return []File{
		{Name: ComponentsFile, Content: componentsContent},
		{Name: AutoImportsFile, Content: autoImportsContent},
	}
}

// Names returns the declaration file names in emission order.
func Names() []string {
	return []string{ComponentsFile, AutoImportsFile}
}

// Emit creates each declaration file in dir that does not exist yet.
// Existing files are never overwritten, so edits survive repeated runs.
func Emit(dir string) ([]action.Action, error) {
	actions := make([]action.Action, 0, 2)
	for _, f := range Files() {
		path := filepath.Join(dir, f.Name)

		if testable.Exists(FS, path) {
			slog.Info("declaration file exists, skipping", "path", path)
			actions = append(actions, action.Action{
				File:        f.Name,
				Operation:   action.Skipped,
				Description: "already exists",
			})
			continue
		}

		if err := FS.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return actions, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		slog.Info("generated declaration file", "path", path)
		actions = append(actions, action.Action{
			File:        f.Name,
			Operation:   action.Created,
			Description: "placeholder declarations",
		})
	}
	return actions, nil
}

// Plan reports what Emit would do without writing anything.
func Plan(dir string) []action.Action {
	actions := make([]action.Action, 0, 2)
	for _, f := range Files() {
		a := action.Action{File: f.Name, Operation: action.Planned, Description: "would create placeholder declarations"}
		if testable.Exists(FS, filepath.Join(dir, f.Name)) {
			a.Operation = action.Skipped
			a.Description = "already exists"
		}
		actions = append(actions, a)
	}
	return actions
}
