// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MockCommandExecutor is a test double for CommandExecutor. Commands are
// simulated with sh so the caller still drives a real *exec.Cmd through
// Run, including exit codes and stream wiring.
type MockCommandExecutor struct {
	// LookPathErr, when non-nil, is returned by LookPath for any file.
	LookPathErr error

	// CommandOutputs maps a command key (e.g. "npm install vant --save") to
	// the stdout the resulting command prints.
	CommandOutputs map[string]string

	// ExitCodes maps a command key to a non-zero exit status. The command
	// prints "exit <code>" to stderr before exiting.
	ExitCodes map[string]int

	// DefaultExitCode applies to every command without an entry in ExitCodes.
	DefaultExitCode int

	// Calls records the command keys that were invoked.
	Calls []string
}

// LookPath returns "/usr/bin/<file>" or the configured error.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	return "/usr/bin/" + file, nil
}

// CommandContext returns a shell command that reproduces the configured
// output and exit status for the key built from name and args.
func (m *MockCommandExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	key := name + " " + strings.Join(args, " ")
	m.Calls = append(m.Calls, key)

	code := m.DefaultExitCode
	if c, ok := m.ExitCodes[key]; ok {
		code = c
	}
	out := m.CommandOutputs[key]

	script := fmt.Sprintf("printf '%%s' %q", out)
	if code != 0 {
		script += fmt.Sprintf("; echo %q >&2; exit %d", fmt.Sprintf("exit %d", code), code)
	}
	return exec.CommandContext(ctx, "sh", "-c", script) //nolint:gosec // test helper
}

var _ CommandExecutor = (*MockCommandExecutor)(nil)
