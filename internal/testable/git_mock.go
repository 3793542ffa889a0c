// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"github.com/go-git/go-git/v5"
)

// MockGitOpener is a test double for GitOpener. If Repo and OpenErr are both
// nil, Open reports git.ErrRepositoryNotExists.
type MockGitOpener struct {
	Repo    GitRepository
	OpenErr error

	// OpenCalls records the paths passed to Open.
	OpenCalls []string
}

// Open records the call and returns Repo or OpenErr.
func (m *MockGitOpener) Open(path string) (GitRepository, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Repo != nil {
		return m.Repo, nil
	}
	return nil, git.ErrRepositoryNotExists
}

// MockGitRepository is a test double for GitRepository.
type MockGitRepository struct {
	RootDir   string
	StatusMap git.Status
	StatusErr error
}

// Root returns RootDir.
func (m *MockGitRepository) Root() string {
	return m.RootDir
}

// Status returns StatusMap or StatusErr.
func (m *MockGitRepository) Status() (git.Status, error) {
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	if m.StatusMap == nil {
		return git.Status{}, nil
	}
	return m.StatusMap, nil
}

var (
	_ GitOpener     = (*MockGitOpener)(nil)
	_ GitRepository = (*MockGitRepository)(nil)
)
