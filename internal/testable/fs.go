// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package testable provides seams over the file system, process execution and
// git so that project mutations can be exercised in tests without touching a
// real Node toolchain.
package testable

import (
	"os"
	"path/filepath"
)

// FileSystem is the subset of file operations autoimport performs on a
// project directory. The production implementation (OsFileSystem) delegates
// to the standard library.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// EvalSymlinks returns the path name after the evaluation of any symbolic links.
	EvalSymlinks(path string) (string, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// OsFileSystem is the production FileSystem.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// EvalSymlinks wraps filepath.EvalSymlinks.
func (OsFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// DefaultFS is the FileSystem every package starts with.
var DefaultFS FileSystem = OsFileSystem{}

// Exists reports whether name can be stat'ed through fsys. Any error,
// including permission errors, counts as absent.
func Exists(fsys FileSystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
