// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"github.com/go-git/go-git/v5"
)

// GitOpener abstracts locating the git repository that contains a project
// directory. Production code uses RealGitOpener.
type GitOpener interface {
	// Open finds the repository enclosing path, walking up parent
	// directories. It returns git.ErrRepositoryNotExists when there is none.
	Open(path string) (GitRepository, error)
}

// GitRepository is the subset of repository operations autoimport needs.
type GitRepository interface {
	// Root returns the absolute path of the worktree root.
	Root() string

	// Status returns the worktree status keyed by slash-separated paths
	// relative to Root.
	Status() (git.Status, error)
}

// RealGitOpener opens repositories with go-git.
type RealGitOpener struct{}

// Open opens the repository enclosing path.
func (RealGitOpener) Open(path string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &RealGitRepository{wt: wt}, nil
}

// RealGitRepository wraps a *git.Worktree to satisfy GitRepository.
type RealGitRepository struct {
	wt *git.Worktree
}

// Root returns the worktree root directory.
func (r *RealGitRepository) Root() string {
	return r.wt.Filesystem.Root()
}

// Status returns the working tree status.
func (r *RealGitRepository) Status() (git.Status, error) {
	return r.wt.Status()
}

// DefaultGitOpener is the production GitOpener.
var DefaultGitOpener GitOpener = RealGitOpener{}
