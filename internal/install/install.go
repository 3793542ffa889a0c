// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package install adds packages to a project with its package manager.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/davetashner/autoimport/internal/inspect"
	"github.com/davetashner/autoimport/internal/testable"
)

// Options describes one install invocation.
type Options struct {
	Dir            string
	PackageManager inspect.PackageManager
	Packages       []string

	// Stdout and Stderr receive the package manager's output. Nil means
	// the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Args returns the command-line arguments for installing packages with pm.
// npm uses "install"; yarn and pnpm use "add". "--save" is always passed.
func Args(pm inspect.PackageManager, packages []string) []string {
	sub := "add"
	if pm == inspect.NPM {
		sub = "install"
	}
	args := make([]string, 0, len(packages)+2)
	args = append(args, sub)
	args = append(args, packages...)
	return append(args, "--save")
}

// Install runs the package manager in opts.Dir and waits for it. There is no
// built-in timeout; cancel ctx to stop a hung install.
func Install(ctx context.Context, executor testable.CommandExecutor, opts Options) error {
	if len(opts.Packages) == 0 {
		return errors.New("no packages to install")
	}
	pm := opts.PackageManager
	if pm == "" {
		pm = inspect.NPM
	}

	bin, err := executor.LookPath(string(pm))
	if err != nil {
		return fmt.Errorf("dependency installation failed: %s not found on PATH: %w", pm, err)
	}

	args := Args(pm, opts.Packages)
	cmd := executor.CommandContext(ctx, bin, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = orDefault(opts.Stdout, os.Stdout)
	cmd.Stderr = orDefault(opts.Stderr, os.Stderr)

	slog.Info("installing dependencies", "package_manager", pm, "packages", strings.Join(opts.Packages, " "), "dir", opts.Dir)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("dependency installation failed: %s exited with code %d", pm, exitErr.ExitCode())
		}
		return fmt.Errorf("dependency installation failed: %w", err)
	}
	slog.Debug("dependencies installed", "package_manager", pm)
	return nil
}

func orDefault(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
