// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package tsconfig adds the generated declaration files to a project's
// tsconfig.json "include" list.
//
// The manifest is edited in place with gjson/sjson so the user's key order is
// kept, then re-indented with two spaces.
package tsconfig

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/davetashner/autoimport/internal/action"
	"github.com/davetashner/autoimport/internal/declare"
	"github.com/davetashner/autoimport/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// FileName is the type-manifest file name in a project root.
const FileName = "tsconfig.json"

// prettyOptions expands every array and object onto its own lines, the way
// JSON.stringify(v, null, 2) does.
var prettyOptions = &pretty.Options{Width: 0, Indent: "  "}

// Update appends the declaration file names missing from the include list
// of dir's tsconfig.json. The file is rewritten only when something was
// appended. A missing tsconfig.json is not an error.
func Update(dir string) (action.Action, error) {
	path := filepath.Join(dir, FileName)
	updated, added, skip, err := prepare(path)
	if err != nil || skip.Operation != "" {
		return skip, err
	}

	if err := FS.WriteFile(path, updated, 0o644); err != nil {
		return action.Action{}, fmt.Errorf("writing %s: %w", FileName, err)
	}
	slog.Info("updated tsconfig.json", "path", path, "added", added)
	return action.Action{
		File:        FileName,
		Operation:   action.Updated,
		Description: fmt.Sprintf("added %d include entries", len(added)),
	}, nil
}

// Plan reports what Update would do without writing anything.
func Plan(dir string) (action.Action, error) {
	_, added, skip, err := prepare(filepath.Join(dir, FileName))
	if err != nil || skip.Operation != "" {
		return skip, err
	}
	return action.Action{
		File:        FileName,
		Operation:   action.Planned,
		Description: fmt.Sprintf("would add %s to include", strings.Join(added, ", ")),
	}, nil
}

// prepare computes the updated manifest. A non-empty skip action means there
// is nothing to write.
func prepare(path string) (updated []byte, added []string, skip action.Action, err error) {
	if !testable.Exists(FS, path) {
		slog.Info("tsconfig.json not found, skipping TypeScript configuration")
		skip = action.Action{File: FileName, Operation: action.Skipped, Description: "not found"}
		return nil, nil, skip, nil
	}

	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, nil, skip, fmt.Errorf("reading %s: %w", FileName, err)
	}

	updated, added, err = AddIncludes(data, declare.Names())
	if err != nil {
		return nil, nil, skip, fmt.Errorf("updating %s: %w", FileName, err)
	}
	if len(added) == 0 {
		slog.Info("tsconfig.json already includes the declaration files, no update needed")
		skip = action.Action{File: FileName, Operation: action.Skipped, Description: "declarations already included"}
		return nil, nil, skip, nil
	}
	return updated, added, skip, nil
}

// AddIncludes returns data with each of files appended to the top-level
// "include" array unless already present, preserving their order. The array
// is created when absent. added lists what was appended; when it is empty the
// input is returned untouched.
func AddIncludes(data []byte, files []string) (out []byte, added []string, err error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, fmt.Errorf("invalid JSON")
	}

	include := gjson.GetBytes(data, "include")
	present := make(map[string]bool)
	switch {
	case !include.Exists():
		if data, err = sjson.SetRawBytes(data, "include", []byte("[]")); err != nil {
			return nil, nil, err
		}
	case include.IsArray():
		for _, v := range include.Array() {
			if v.Type == gjson.String {
				present[v.Str] = true
			}
		}
	default:
		return nil, nil, fmt.Errorf(`"include" must be an array, got %s`, include.Type)
	}

	for _, f := range files {
		if present[f] {
			continue
		}
		if data, err = sjson.SetBytes(data, "include.-1", f); err != nil {
			return nil, nil, err
		}
		present[f] = true
		added = append(added, f)
	}

	if len(added) == 0 {
		return data, nil, nil
	}
	return pretty.PrettyOptions(data, prettyOptions), added, nil
}
