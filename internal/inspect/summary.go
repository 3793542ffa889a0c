package inspect

import (
	"fmt"
	"strings"
)

// Summary renders the report as aligned "key: value" lines.
func (r *Report) Summary() string {
	var b strings.Builder
	row := func(k, v string) { fmt.Fprintf(&b, "%-16s %s\n", k+":", v) }

	row("project", r.Dir)
	row("valid", yesNo(r.Valid))
	vue := yesNo(r.HasVue)
	if r.VueVersion != "" {
		vue += " (" + r.VueVersion + ")"
	}
	row("vue", vue)
	row("vite", yesNo(r.HasVite))
	row("typescript", yesNo(r.HasTypeScript))
	row("package manager", string(r.PackageManager))
	row("vite config", orNone(r.ViteConfigPath))
	row("tsconfig", orNone(r.TSConfigPath))
	for _, e := range r.Errors {
		row("problem", e)
	}
	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
