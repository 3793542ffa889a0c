// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package patch injects the unplugin auto-import setup into a Vite config
// source file.
//
// The config is free-form TypeScript or JavaScript, so it is not parsed.
// Instead the patcher anchors on a handful of regular expressions:
//
//   - import statements, to place the new imports after the last one;
//   - a `plugins: [...]` array literal, extended in place;
//   - failing that, a `defineConfig({...})` call, whose object gains a
//     `plugins` key.
//
// Both literal anchors stop at the first closing delimiter. Nested brackets
// inside the plugins array, or nested braces inside the defineConfig object,
// end the match early; see the package tests for the exact boundaries.
package patch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/davetashner/autoimport/internal/catalog"
)

// Module specifiers whose joint presence marks a config as already set up.
const (
	AutoImportModule = "unplugin-auto-import/vite"
	ComponentsModule = "unplugin-vue-components/vite"
)

// ErrNoAnchor is returned when the config offers no place to register plugins.
var ErrNoAnchor = errors.New("no plugin registration point located")

// Anchor identifies where the plugin registrations were inserted.
type Anchor string

const (
	AnchorNone         Anchor = ""             // nothing inserted
	AnchorPlugins      Anchor = "plugins"      // existing plugins array
	AnchorDefineConfig Anchor = "defineConfig" // new plugins key in defineConfig
)

// Result is the outcome of Patch.
type Result struct {
	Changed bool
	Text    string
	Anchor  Anchor
}

var (
	// importPattern matches one import statement. '.' does not cross lines,
	// but the \s runs may.
	importPattern = regexp.MustCompile(`import\s+.+\s+from\s+['"].*['"];?`)

	// pluginsPattern captures the body of a plugins array up to its first ']'.
	pluginsPattern = regexp.MustCompile(`plugins\s*:\s*\[([^\]]*)\]`)

	// defineConfigPattern captures the body of defineConfig's object
	// argument up to its first '}'.
	defineConfigPattern = regexp.MustCompile(`defineConfig\s*\(\s*\{([^}]*)\}\s*\)`)
)

// IsConfigured reports whether text already references both plugin modules.
// Which resolver is registered is not checked.
func IsConfigured(text string) bool {
	return strings.Contains(text, AutoImportModule) && strings.Contains(text, ComponentsModule)
}

// Imports returns the import lines added for entry, in insertion order.
func Imports(entry catalog.Entry) []string {
	return []string{
		`import AutoImport from "` + AutoImportModule + `";`,
		`import Components from "` + ComponentsModule + `";`,
		entry.ResolverImport,
	}
}

// Registration returns the plugin calls added for entry. It starts with a
// newline and ends with a trailing comma.
func Registration(entry catalog.Entry) string {
	r := entry.ResolverName + "()"
	return "\n" +
		"  AutoImport({\n" +
		"    resolvers: [" + r + "],\n" +
		"  }),\n" +
		"  Components({\n" +
		"    resolvers: [" + r + "],\n" +
		"  }),"
}

// Patch returns text with the auto-import plugins registered for entry.
//
// Text that is already configured comes back unchanged with Changed false.
// When no anchor is found the error wraps ErrNoAnchor and the Result holds
// the original text.
func Patch(text string, entry catalog.Entry) (Result, error) {
	if IsConfigured(text) {
		return Result{Text: text}, nil
	}

	out := insertImports(text, Imports(entry))

	out, anchor := registerPlugins(out, Registration(entry))
	if anchor == AnchorNone {
		return Result{Text: text}, fmt.Errorf("%w: expected a plugins array or a defineConfig({...}) call", ErrNoAnchor)
	}

	return Result{Changed: true, Text: out, Anchor: anchor}, nil
}

// insertImports places lines after the last import statement, or at the top
// of the file when there is none.
func insertImports(text string, lines []string) string {
	block := strings.Join(lines, "\n")

	matches := importPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return block + "\n" + text
	}
	end := matches[len(matches)-1][1]
	return text[:end] + "\n" + block + text[end:]
}

// registerPlugins appends fragment to the plugins array, or adds a plugins
// key to defineConfig's object. It reports AnchorNone when neither exists.
func registerPlugins(text, fragment string) (string, Anchor) {
	if m := pluginsPattern.FindStringSubmatchIndex(text); m != nil {
		inner := text[m[2]:m[3]]
		if !strings.Contains(inner, ",") {
			inner += ","
		}
		return text[:m[0]] + "plugins: [" + inner + fragment + "]" + text[m[1]:], AnchorPlugins
	}

	if m := defineConfigPattern.FindStringSubmatchIndex(text); m != nil {
		body := terminateLastProperty(text[m[2]:m[3]])
		body += "\n  plugins: [" + fragment + "],"
		return text[:m[0]] + "defineConfig({" + body + "})" + text[m[1]:], AnchorDefineConfig
	}

	return text, AnchorNone
}

// terminateLastProperty adds a comma after the last property of an object
// body when it lacks one, so a key appended afterwards stays valid syntax.
func terminateLastProperty(body string) string {
	trimmed := strings.TrimRight(body, " \t\r\n")
	if trimmed == "" || strings.HasSuffix(trimmed, ",") {
		return body
	}
	return trimmed + "," + body[len(trimmed):]
}
