// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/autoimport/internal/action"
	"github.com/davetashner/autoimport/internal/autoimport"
	"github.com/davetashner/autoimport/internal/catalog"
	"github.com/davetashner/autoimport/internal/config"
	"github.com/davetashner/autoimport/internal/inspect"
	"github.com/davetashner/autoimport/internal/prompt"
)

func runConfigure(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	absPath, err := resolveProjectPath(flagPath)
	if err != nil {
		return err
	}

	settings, err := loadSettings(absPath)
	if err != nil {
		return err
	}

	p := prompt.New(cmd.InOrStdin(), w)

	library, err := chooseLibrary(p, settings.Library)
	if err != nil {
		return err
	}

	var pm inspect.PackageManager
	if settings.PackageManager != "" {
		// Validated in loadSettings.
		pm, _ = inspect.ParsePackageManager(settings.PackageManager)
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "Configuration:")
	_, _ = fmt.Fprintf(w, "  - library: %s\n", green.Sprint(library))
	_, _ = fmt.Fprintf(w, "  - project: %s\n", green.Sprint(absPath))
	_, _ = fmt.Fprintln(w)

	if !settings.AssumeYes && !flagDryRun {
		if !p.Confirm("Start configuration?", true) {
			_, _ = color.New(color.FgYellow).Fprintln(w, "Cancelled.")
			return nil
		}
	}

	slog.Info("configuring auto-import", "library", library, "path", absPath)
	res := autoimport.Run(cmd.Context(), autoimport.Config{
		Dir:            absPath,
		Library:        library,
		PackageManager: pm,
		SkipInstall:    settings.SkipInstall,
		DryRun:         flagDryRun,
		RequireClean:   settings.RequireClean,
		Executor:       cmdExecutor,
		Git:            cmdGit,
		Stdout:         w,
		Stderr:         cmd.ErrOrStderr(),
	})

	printSummary(w, res, flagDryRun)
	return nil
}

// loadSettings layers the command-line flags over the project and global
// config files.
func loadSettings(absPath string) (config.Config, error) {
	fileCfg, err := config.LoadEffective(absPath)
	if err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "autoimport: failed to load config (%v)", err)
	}
	settings := config.Merge(fileCfg, config.Config{
		Library:        flagLibrary,
		PackageManager: flagPackageManager,
		SkipInstall:    flagSkipInstall,
		AssumeYes:      flagYes,
		RequireClean:   flagRequireClean,
	})
	if err := config.Validate(&settings); err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "autoimport: %v", err)
	}
	return settings, nil
}

// chooseLibrary returns the configured library or asks for one.
func chooseLibrary(p *prompt.Prompter, configured string) (catalog.LibraryID, error) {
	if configured != "" {
		id, err := catalog.Parse(configured)
		if err != nil {
			return "", exitError(ExitInvalidArgs, "autoimport: %v", err)
		}
		return id, nil
	}
	if !stdinIsTerminal() {
		return "", exitError(ExitInvalidArgs, "autoimport: no library given and stdin is not a terminal; pass --library (one of %s)", supportedList())
	}
	id, err := p.SelectLibrary()
	if err != nil {
		if errors.Is(err, prompt.ErrNoInput) {
			return "", exitError(ExitInvalidArgs, "autoimport: %v", err)
		}
		return "", err
	}
	return id, nil
}

// resolveProjectPath resolves path into an absolute directory path.
func resolveProjectPath(path string) (string, error) {
	absPath, err := cmdFS.Abs(path)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "autoimport: cannot resolve path %q (%v)", path, err)
	}
	info, err := cmdFS.Stat(absPath)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "autoimport: project path %s does not exist", absPath)
	}
	if !info.IsDir() {
		return "", exitError(ExitInvalidArgs, "autoimport: %s is not a directory", absPath)
	}
	return absPath, nil
}

// printSummary writes the per-file outcome and, on success, the next steps.
func printSummary(w io.Writer, res *autoimport.Result, dryRun bool) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)
	dim := color.New(color.Faint)

	if res.Diff != "" {
		_, _ = fmt.Fprintln(w, res.Diff)
	}

	for _, a := range res.Actions {
		var prefix string
		switch a.Operation {
		case action.Created:
			prefix = green.Sprint("  + ")
		case action.Updated:
			prefix = yellow.Sprint("  ~ ")
		case action.Planned:
			prefix = cyan.Sprint("  ? ")
		default:
			prefix = dim.Sprint("  - ")
		}
		_, _ = fmt.Fprintf(w, "%s%-20s %s\n", prefix, a.File, dim.Sprintf("(%s)", a.Description))
	}
	if len(res.Actions) > 0 {
		_, _ = fmt.Fprintln(w)
	}

	switch {
	case !res.Success:
		if res.Report != nil && !res.Report.Valid {
			for _, msg := range res.Report.Errors {
				_, _ = red.Fprintf(w, "  ! %s\n", msg)
			}
			_, _ = fmt.Fprintln(w)
		}
		_, _ = red.Fprintln(w, "Configuration failed; see the messages above for details.")
	case dryRun:
		_, _ = bold.Fprintln(w, "Dry run complete; no files were changed.")
	case !anyChanged(res.Actions):
		_, _ = green.Fprintln(w, "Component auto-importing was already configured; nothing changed.")
	default:
		_, _ = green.Fprintln(w, "Component auto-importing is configured.")
		_, _ = fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Next steps:")
		_, _ = fmt.Fprintln(w, "  1. Restart the dev server")
		_, _ = fmt.Fprintln(w, "  2. Use library components directly in templates; no manual imports needed")
	}
	_, _ = fmt.Fprintln(w)
}

func anyChanged(actions []action.Action) bool {
	for _, a := range actions {
		if a.Changed() {
			return true
		}
	}
	return false
}

func supportedList() string {
	ids := catalog.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
