// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"os"
	"sync"
)

// MockFileSystem is a test double for FileSystem. Each method has a
// corresponding function field. When the field is non-nil, the mock calls it;
// otherwise, it falls through to OsFileSystem.
//
// Every WriteFile call is recorded in Writes regardless of which path served
// it, so tests can assert "no write happened" without stubbing anything.
type MockFileSystem struct {
	AbsFn          func(path string) (string, error)
	EvalSymlinksFn func(path string) (string, error)
	StatFn         func(name string) (os.FileInfo, error)
	ReadFileFn     func(name string) ([]byte, error)
	WriteFileFn    func(name string, data []byte, perm os.FileMode) error

	mu     sync.Mutex
	Writes []string
}

var passthrough OsFileSystem

// Abs calls AbsFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Abs(path string) (string, error) {
	if m.AbsFn != nil {
		return m.AbsFn(path)
	}
	return passthrough.Abs(path)
}

// EvalSymlinks calls EvalSymlinksFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) EvalSymlinks(path string) (string, error) {
	if m.EvalSymlinksFn != nil {
		return m.EvalSymlinksFn(path)
	}
	return passthrough.EvalSymlinks(path)
}

// Stat calls StatFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return passthrough.Stat(name)
}

// ReadFile calls ReadFileFn if set, otherwise delegates to OsFileSystem.
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFn != nil {
		return m.ReadFileFn(name)
	}
	return passthrough.ReadFile(name)
}

// WriteFile records the path, then calls WriteFileFn if set, otherwise
// delegates to OsFileSystem.
func (m *MockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	m.Writes = append(m.Writes, name)
	m.mu.Unlock()
	if m.WriteFileFn != nil {
		return m.WriteFileFn(name, data, perm)
	}
	return passthrough.WriteFile(name, data, perm)
}

// WriteCount returns the number of WriteFile calls seen so far.
func (m *MockFileSystem) WriteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Writes)
}

// Compile-time interface check.
var _ FileSystem = (*MockFileSystem)(nil)
