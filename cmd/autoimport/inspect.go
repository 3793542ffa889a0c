package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/autoimport/internal/inspect"
)

// inspectCmd reports what autoimport detects in a project.
var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Check whether a directory is a Vue + Vite project",
	Long: `Inspect a project directory without changing anything.

Prints the detected Vue version, Vite config, TypeScript manifest and
package manager, followed by any problems that would stop a configuration
run. Exits with code 2 when the project cannot be configured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	absPath, err := resolveProjectPath(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	report := inspect.Inspect(absPath)
	_, _ = fmt.Fprint(w, report.Summary())

	if !report.Valid {
		return exitError(ExitInvalidProject, "")
	}
	return nil
}
