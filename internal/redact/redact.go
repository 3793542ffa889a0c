// Copyright 2026 The Autoimport Authors
// SPDX-License-Identifier: MIT

// Package redact strips registry credentials from strings before they appear
// in output, logs, or error messages. Package-manager failures routinely echo
// their configuration, so everything printed by the CLI passes through here.
package redact

import (
	"os"
	"regexp"
	"strings"
)

// sensitiveEnvVars lists environment variables read by npm, yarn and pnpm
// whose values must never appear in output.
var sensitiveEnvVars = []string{
	"NPM_TOKEN",
	"NODE_AUTH_TOKEN",
	"YARN_NPM_AUTH_TOKEN",
	"PNPM_TOKEN",
	"GITHUB_TOKEN",
}

// authTokenPattern matches .npmrc style credentials such as
// //registry.npmjs.org/:_authToken=abc123 or _auth = "abc".
var authTokenPattern = regexp.MustCompile(`(_auth(?:Token)?\s*=\s*)("?)[^\s"]+`)

// Placeholder replaces every secret.
const Placeholder = "[REDACTED]"

// String replaces known secret values and inline registry credentials with
// Placeholder. Values shorter than four characters are ignored to avoid
// mangling ordinary text.
func String(s string) string {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if len(val) < 4 {
			continue
		}
		s = strings.ReplaceAll(s, val, Placeholder)
	}
	return authTokenPattern.ReplaceAllString(s, "${1}${2}"+Placeholder)
}
