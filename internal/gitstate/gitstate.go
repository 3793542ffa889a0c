// Package gitstate guards files against being overwritten while they hold
// uncommitted changes.
package gitstate

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/davetashner/autoimport/internal/testable"
)

// ErrDirty is returned when a guarded file has uncommitted changes.
var ErrDirty = errors.New("uncommitted changes")

// DirtyError lists the guarded files that have uncommitted changes.
type DirtyError struct {
	Files []string
}

func (e *DirtyError) Error() string {
	return fmt.Sprintf("%s in %s; commit or stash them first", ErrDirty, strings.Join(e.Files, ", "))
}

// Unwrap lets callers match with errors.Is(err, ErrDirty).
func (e *DirtyError) Unwrap() error { return ErrDirty }

// Check opens the repository enclosing dir and fails with a *DirtyError if any
// of paths is modified, staged or untracked. Paths are absolute or relative to
// dir. Outside a repository Check logs a warning and returns nil.
func Check(opener testable.GitOpener, dir string, paths []string) error {
	repo, err := opener.Open(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		slog.Warn("not a git repository; skipping uncommitted change check", "dir", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening git repository: %w", err)
	}

	status, err := repo.Status()
	if err != nil {
		return fmt.Errorf("reading git status: %w", err)
	}

	root := repo.Root()
	var dirty []string
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil || strings.HasPrefix(rel, "..") {
			slog.Debug("path outside repository", "path", p, "root", root)
			continue
		}
		fs, ok := status[filepath.ToSlash(rel)]
		if !ok {
			continue
		}
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			dirty = append(dirty, filepath.ToSlash(rel))
		}
	}
	if len(dirty) > 0 {
		sort.Strings(dirty)
		return &DirtyError{Files: dirty}
	}
	return nil
}
