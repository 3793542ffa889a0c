// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package catalog holds the fixed table of supported UI component libraries
// and what each one needs to be auto-imported.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// LibraryID identifies a supported component library.
type LibraryID string

const (
	ElementPlus  LibraryID = "element-plus"
	AntDesignVue LibraryID = "ant-design-vue"
	NaiveUI      LibraryID = "naive-ui"
	Vant         LibraryID = "vant"
)

// ErrUnsupportedLibrary is returned for identifiers outside the catalog.
var ErrUnsupportedLibrary = errors.New("unsupported component library")

// Entry describes what a library needs: the packages to install and the
// resolver that unplugin-vue-components uses to locate its components.
type Entry struct {
	ID             LibraryID
	DisplayName    string
	Dependencies   []string
	ResolverImport string
	ResolverName   string
}

// Shared by every entry.
const (
	autoImportPackage = "unplugin-auto-import"
	componentsPackage = "unplugin-vue-components"
)

// order is the presentation order used by All, IDs and the selection prompt.
var order = []LibraryID{ElementPlus, AntDesignVue, NaiveUI, Vant}

// entries is built once at init and only handed out as copies.
var entries = map[LibraryID]Entry{
	ElementPlus:  newEntry(ElementPlus, "Element Plus", "ElementPlusResolver"),
	AntDesignVue: newEntry(AntDesignVue, "Ant Design Vue", "AntDesignVueResolver"),
	NaiveUI:      newEntry(NaiveUI, "Naive UI", "NaiveUiResolver"),
	Vant:         newEntry(Vant, "Vant", "VantResolver"),
}

func newEntry(id LibraryID, display, resolver string) Entry {
	return Entry{
		ID:             id,
		DisplayName:    display,
		Dependencies:   []string{string(id), autoImportPackage, componentsPackage},
		ResolverImport: fmt.Sprintf("import { %s } from \"%s/resolvers\";", resolver, componentsPackage),
		ResolverName:   resolver,
	}
}

func (e Entry) clone() Entry {
	e.Dependencies = append([]string(nil), e.Dependencies...)
	return e
}

// Lookup returns the entry for id. It fails only for identifiers that are not
// one of the declared LibraryID constants.
func Lookup(id LibraryID) (Entry, error) {
	e, ok := entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnsupportedLibrary, id)
	}
	return e.clone(), nil
}

// All returns every entry in presentation order.
func All() []Entry {
	out := make([]Entry, 0, len(order))
	for _, id := range order {
		out = append(out, entries[id].clone())
	}
	return out
}

// IDs returns every library identifier in presentation order.
func IDs() []LibraryID {
	return append([]LibraryID(nil), order...)
}

// Parse converts user input to a LibraryID. Matching is case-insensitive and
// accepts either the identifier or the display name. Unknown input yields an
// error wrapping ErrUnsupportedLibrary that lists the closest candidates.
func Parse(s string) (LibraryID, error) {
	in := strings.TrimSpace(s)
	for _, id := range order {
		if strings.EqualFold(in, string(id)) || strings.EqualFold(in, entries[id].DisplayName) {
			return id, nil
		}
	}

	msg := fmt.Sprintf("%v: %q (supported: %s)", ErrUnsupportedLibrary, s, joinIDs(order))
	if near := Suggest(in); len(near) > 0 {
		msg = fmt.Sprintf("%s; did you mean %s?", msg, joinIDs(near))
	}
	return "", &parseError{msg: msg}
}

// Suggest ranks catalog identifiers by fuzzy similarity to input, matching
// against both identifiers and display names. Each library appears once.
func Suggest(input string) []LibraryID {
	if input == "" {
		return nil
	}
	candidates := make([]string, 0, 2*len(order))
	owners := make([]LibraryID, 0, 2*len(order))
	for _, id := range order {
		candidates = append(candidates, string(id), entries[id].DisplayName)
		owners = append(owners, id, id)
	}

	seen := make(map[LibraryID]bool)
	var out []LibraryID
	for _, m := range fuzzy.Find(strings.ToLower(input), lower(candidates)) {
		id := owners[m.Index]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }
func (e *parseError) Unwrap() error { return ErrUnsupportedLibrary }

func lower(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func joinIDs(ids []LibraryID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
