// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package autoimport runs the full configuration sequence against a Vue +
// Vite project: inspect, install, patch the Vite config, extend tsconfig.json
// and emit declaration files.
package autoimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/davetashner/autoimport/internal/action"
	"github.com/davetashner/autoimport/internal/catalog"
	"github.com/davetashner/autoimport/internal/declare"
	"github.com/davetashner/autoimport/internal/gitstate"
	"github.com/davetashner/autoimport/internal/inspect"
	"github.com/davetashner/autoimport/internal/install"
	"github.com/davetashner/autoimport/internal/patch"
	"github.com/davetashner/autoimport/internal/testable"
	"github.com/davetashner/autoimport/internal/tsconfig"
)

// FS is the file system used to read and write the Vite config.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// ErrInvalidProject is returned when the target directory is not a Vue +
// Vite project.
var ErrInvalidProject = errors.New("project check failed")

// Config controls a single Run.
type Config struct {
	Dir     string
	Library catalog.LibraryID

	// PackageManager replaces the detected package manager when non-empty.
	PackageManager inspect.PackageManager

	SkipInstall  bool
	DryRun       bool
	RequireClean bool

	// Executor runs the package manager. Nil means testable.DefaultExecutor().
	Executor testable.CommandExecutor
	// Git locates the enclosing repository for RequireClean. Nil means
	// testable.DefaultGitOpener.
	Git testable.GitOpener

	// Stdout and Stderr receive package manager output.
	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome of Run. Err is nil exactly when Success is true.
type Result struct {
	Success bool
	Report  *inspect.Report
	Actions []action.Action

	// PackageManager is the manager that was (or would be) used.
	PackageManager inspect.PackageManager

	// Diff is the rendered Vite config change. Only set on dry runs.
	Diff string

	Err error
}

// Run configures auto-importing for cfg.Library in cfg.Dir. It never returns
// an error: failures are logged once and reported through Result. Steps that
// completed before a failure are not rolled back.
func Run(ctx context.Context, cfg Config) *Result {
	res := &Result{}
	if err := run(ctx, cfg, res); err != nil {
		// Project diagnostics were already logged one by one.
		if !errors.Is(err, ErrInvalidProject) {
			slog.Error("configuring auto-import failed", "error", err)
		}
		res.Err = err
		return res
	}
	res.Success = true
	return res
}

func run(ctx context.Context, cfg Config, res *Result) error {
	entry, err := catalog.Lookup(cfg.Library)
	if err != nil {
		return err
	}

	report := inspect.Inspect(cfg.Dir)
	res.Report = report
	if !report.Valid {
		for _, msg := range report.Errors {
			slog.Error(msg)
		}
		return fmt.Errorf("%w: %s", ErrInvalidProject, strings.Join(report.Errors, "; "))
	}

	res.PackageManager = report.PackageManager
	if cfg.PackageManager != "" {
		res.PackageManager = cfg.PackageManager
	}

	if cfg.RequireClean && !cfg.DryRun {
		if err := gitstate.Check(orGit(cfg.Git), cfg.Dir, guardedFiles(report)); err != nil {
			return err
		}
	}

	if cfg.DryRun {
		return plan(entry, report, res, cfg.SkipInstall)
	}

	if cfg.SkipInstall {
		slog.Info("skipping dependency installation")
		res.Actions = append(res.Actions, action.Action{
			File:        inspect.ManifestFile,
			Operation:   action.Skipped,
			Description: "dependency installation skipped",
		})
	} else {
		err := install.Install(ctx, orExecutor(cfg.Executor), install.Options{
			Dir:            cfg.Dir,
			PackageManager: res.PackageManager,
			Packages:       entry.Dependencies,
			Stdout:         cfg.Stdout,
			Stderr:         cfg.Stderr,
		})
		if err != nil {
			return err
		}
		res.Actions = append(res.Actions, action.Action{
			File:        inspect.ManifestFile,
			Operation:   action.Updated,
			Description: fmt.Sprintf("installed %s with %s", strings.Join(entry.Dependencies, ", "), res.PackageManager),
		})
	}

	a, err := patchViteConfig(report.ViteConfigPath, entry)
	if err != nil {
		return err
	}
	res.Actions = append(res.Actions, a)

	if report.HasTypeScript {
		a, err := tsconfig.Update(cfg.Dir)
		if err != nil {
			return err
		}
		res.Actions = append(res.Actions, a)
	}

	created, err := declare.Emit(cfg.Dir)
	res.Actions = append(res.Actions, created...)
	return err
}

// patchViteConfig registers the plugins in the Vite config at path and
// writes it back when it changed.
func patchViteConfig(path string, entry catalog.Entry) (action.Action, error) {
	name := filepath.Base(path)
	data, err := FS.ReadFile(path)
	if err != nil {
		return action.Action{}, fmt.Errorf("reading %s: %w", name, err)
	}

	result, err := patch.Patch(string(data), entry)
	if err != nil {
		return action.Action{}, fmt.Errorf("updating %s: %w", name, err)
	}
	if !result.Changed {
		slog.Info("auto-import plugins already configured, skipping", "path", path)
		return action.Action{File: name, Operation: action.Skipped, Description: "auto-import already configured"}, nil
	}

	if err := FS.WriteFile(path, []byte(result.Text), 0o644); err != nil {
		return action.Action{}, fmt.Errorf("writing %s: %w", name, err)
	}
	slog.Info("updated vite config", "path", path, "anchor", result.Anchor)
	return action.Action{
		File:        name,
		Operation:   action.Updated,
		Description: fmt.Sprintf("registered AutoImport and Components with %s", entry.ResolverName),
	}, nil
}

// plan fills res with what a real run would do, writing nothing.
func plan(entry catalog.Entry, report *inspect.Report, res *Result, skipInstall bool) error {
	deps := action.Action{
		File:        inspect.ManifestFile,
		Operation:   action.Planned,
		Description: fmt.Sprintf("would install %s with %s", strings.Join(entry.Dependencies, ", "), res.PackageManager),
	}
	if skipInstall {
		deps.Operation = action.Skipped
		deps.Description = "dependency installation skipped"
	}
	res.Actions = append(res.Actions, deps)

	path := report.ViteConfigPath
	name := filepath.Base(path)
	data, err := FS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	result, err := patch.Patch(string(data), entry)
	if err != nil {
		return fmt.Errorf("updating %s: %w", name, err)
	}
	if result.Changed {
		res.Diff = Diff(name, string(data), result.Text)
		res.Actions = append(res.Actions, action.Action{
			File:        name,
			Operation:   action.Planned,
			Description: fmt.Sprintf("would register AutoImport and Components with %s", entry.ResolverName),
		})
	} else {
		res.Actions = append(res.Actions, action.Action{File: name, Operation: action.Skipped, Description: "auto-import already configured"})
	}

	if report.HasTypeScript {
		a, err := tsconfig.Plan(report.Dir)
		if err != nil {
			return err
		}
		res.Actions = append(res.Actions, a)
	}

	res.Actions = append(res.Actions, declare.Plan(report.Dir)...)
	return nil
}

// guardedFiles lists the existing files a run may rewrite.
func guardedFiles(report *inspect.Report) []string {
	files := []string{report.ViteConfigPath}
	if report.TSConfigPath != "" {
		files = append(files, report.TSConfigPath)
	}
	return files
}

func orExecutor(e testable.CommandExecutor) testable.CommandExecutor {
	if e == nil {
		return testable.DefaultExecutor()
	}
	return e
}

func orGit(g testable.GitOpener) testable.GitOpener {
	if g == nil {
		return testable.DefaultGitOpener
	}
	return g
}
