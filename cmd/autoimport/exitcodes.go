package main

import "fmt"

// Exit codes for the autoimport CLI. A configuration run that fails inside
// the project still exits with ExitOK; the summary reports the failure.
const (
	ExitOK             = 0 // Configured, cancelled or failure reported.
	ExitInvalidArgs    = 1 // Invalid arguments, bad path or unusable config.
	ExitInvalidProject = 2 // inspect: the directory is not a Vue + Vite project.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitInvalidProject:
			msg = "autoimport: not a Vue + Vite project"
		default:
			msg = fmt.Sprintf("autoimport: exit code %d", code)
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
