// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package prompt implements the line-based questions asked when autoimport
// runs in a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/davetashner/autoimport/internal/catalog"
)

// ErrNoInput is returned when input ends before a valid answer was given.
var ErrNoInput = errors.New("no selection made")

// maxAttempts bounds how often an invalid selection is asked again.
const maxAttempts = 3

// Prompter asks questions on w and reads answers from r. A single Prompter
// must be used for a whole session so buffered input is not lost between
// questions.
type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(r), w: w}
}

// SelectLibrary lists the supported libraries and reads a choice. The answer
// may be a list number, a library id or a display name. An empty answer picks
// the first entry.
func (p *Prompter) SelectLibrary() (catalog.LibraryID, error) {
	entries := catalog.All()

	_, _ = fmt.Fprintln(p.w, "Which component library do you want to auto-import?")
	for i, e := range entries {
		_, _ = fmt.Fprintf(p.w, "  %d) %s (%s)\n", i+1, e.DisplayName, e.ID)
	}

	for range maxAttempts {
		_, _ = fmt.Fprintf(p.w, "Select [1-%d] (default 1): ", len(entries))
		if !p.scanner.Scan() {
			_, _ = fmt.Fprintln(p.w)
			return "", ErrNoInput
		}
		input := strings.TrimSpace(p.scanner.Text())
		if input == "" {
			return entries[0].ID, nil
		}
		if n, err := strconv.Atoi(input); err == nil {
			if n >= 1 && n <= len(entries) {
				return entries[n-1].ID, nil
			}
			_, _ = fmt.Fprintf(p.w, "  %d is not in the list.\n", n)
			continue
		}
		id, err := catalog.Parse(input)
		if err == nil {
			return id, nil
		}
		_, _ = fmt.Fprintf(p.w, "  %v\n", err)
	}
	return "", fmt.Errorf("%w after %d attempts", ErrNoInput, maxAttempts)
}

// Confirm asks a yes/no question. Empty, unrecognized or missing input
// returns defaultVal.
func (p *Prompter) Confirm(question string, defaultVal bool) bool {
	hint := "Y/n"
	if !defaultVal {
		hint = "y/N"
	}
	_, _ = fmt.Fprintf(p.w, "%s [%s] ", question, hint)
	if !p.scanner.Scan() {
		_, _ = fmt.Fprintln(p.w)
		return defaultVal
	}
	switch strings.TrimSpace(strings.ToLower(p.scanner.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
