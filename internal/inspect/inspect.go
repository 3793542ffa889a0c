// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package inspect examines a directory and reports whether it is a Vue + Vite
// project autoimport can configure.
package inspect

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/davetashner/autoimport/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Well-known project file names.
const (
	ManifestFile = "package.json"
	TSConfigFile = "tsconfig.json"
)

// ViteConfigCandidates lists the build-config file names in lookup priority.
var ViteConfigCandidates = []string{"vite.config.ts", "vite.config.js"}

// PackageManager identifies the Node package manager used by a project.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// ParsePackageManager validates a package manager name.
func ParsePackageManager(s string) (PackageManager, error) {
	switch pm := PackageManager(strings.ToLower(strings.TrimSpace(s))); pm {
	case NPM, Yarn, PNPM:
		return pm, nil
	default:
		return "", fmt.Errorf("unknown package manager %q (must be npm, yarn, or pnpm)", s)
	}
}

// lockfiles maps lockfile names to managers, checked in order. npm is the
// fallback when none is present.
var lockfiles = []struct {
	name string
	pm   PackageManager
}{
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
}

// Report is the result of inspecting a project directory. A fresh Report is
// built on every call and not modified afterwards.
type Report struct {
	Dir            string
	Valid          bool
	HasVue         bool
	HasVite        bool
	HasTypeScript  bool
	PackageManager PackageManager
	ViteConfigPath string // empty when not found
	TSConfigPath   string // empty when not found
	VueVersion     string // declared range, e.g. "^3.4.0"
	Errors         []string
}

// packageJSON is the subset of package.json fields we need.
// Values stay untyped so unusual entries (objects, numbers) do not make the
// whole manifest unreadable.
type packageJSON struct {
	Dependencies    map[string]any `json:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies"`
}

// Inspect reports the structure of the project at dir. It never fails: I/O
// and decoding problems are recorded in Report.Errors and the facts gathered
// up to that point are returned.
func Inspect(dir string) *Report {
	r := &Report{Dir: dir, PackageManager: NPM}

	manifest := filepath.Join(dir, ManifestFile)
	if !testable.Exists(FS, manifest) {
		r.Errors = append(r.Errors, "package.json not found; run autoimport from the root of a Vue project")
		return r
	}

	data, err := FS.ReadFile(manifest)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("checking project structure: reading package.json: %v", err))
		return r
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("checking project structure: parsing package.json: %v", err))
		return r
	}

	if v, ok := lookupDep(pkg, "vue"); ok {
		r.HasVue = true
		r.VueVersion = v
		warnLegacyVue(v)
	} else {
		r.Errors = append(r.Errors, "vue dependency not found; make sure this is a Vue project")
	}

	if _, ok := declared(pkg.DevDependencies, "vite"); !ok {
		r.Errors = append(r.Errors, "vite devDependency not found; only Vite projects are supported")
	} else {
		r.HasVite = true
		for _, name := range ViteConfigCandidates {
			p := filepath.Join(dir, name)
			if testable.Exists(FS, p) {
				r.ViteConfigPath = p
				break
			}
		}
		if r.ViteConfigPath == "" {
			r.Errors = append(r.Errors, "vite.config.ts or vite.config.js not found")
		}
	}

	if p := filepath.Join(dir, TSConfigFile); testable.Exists(FS, p) {
		r.HasTypeScript = true
		r.TSConfigPath = p
	}

	r.PackageManager = detectPackageManager(dir)
	r.Valid = r.HasVue && r.HasVite && r.ViteConfigPath != ""

	slog.Debug("inspected project", "dir", dir, "valid", r.Valid,
		"vue", r.HasVue, "vite", r.HasVite, "typescript", r.HasTypeScript,
		"package_manager", r.PackageManager)
	return r
}

func lookupDep(pkg packageJSON, name string) (string, bool) {
	if v, ok := declared(pkg.Dependencies, name); ok {
		return v, true
	}
	return declared(pkg.DevDependencies, name)
}

// declared reports whether deps has a truthy entry for name. Non-string
// values other than false count as declared with an empty version.
func declared(deps map[string]any, name string) (string, bool) {
	switch v := deps[name].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "", v
	default:
		return "", true
	}
}

func detectPackageManager(dir string) PackageManager {
	for _, lf := range lockfiles {
		if testable.Exists(FS, filepath.Join(dir, lf.name)) {
			return lf.pm
		}
	}
	return NPM
}

// warnLegacyVue logs when the declared range targets Vue 2, which the
// unplugin resolvers for these libraries do not support.
func warnLegacyVue(rng string) {
	v, ok := CanonicalVersion(rng)
	if !ok {
		return
	}
	if semver.Compare(v, "v3.0.0") < 0 {
		slog.Warn("vue version below 3 detected; component resolvers target Vue 3", "declared", rng)
	}
}

// CanonicalVersion turns an npm range such as "^3.2.0", "~2.7" or ">=3" into
// a semver string ("v3.2.0"). It reports false for ranges it cannot reduce to
// a single version (tags, URLs, "x" wildcards, compound ranges).
func CanonicalVersion(rng string) (string, bool) {
	s := strings.TrimSpace(rng)
	s = strings.TrimLeft(s, "^~>=<v ")
	if s == "" || strings.ContainsAny(s, " |xX*") {
		return "", false
	}
	v := "v" + s
	if !semver.IsValid(v) {
		return "", false
	}
	return semver.Canonical(v), true
}
