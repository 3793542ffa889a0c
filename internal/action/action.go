// Package action records the file operations performed on a project so the
// CLI can summarize them.
package action

// Operation names what happened to a file.
type Operation string

const (
	Created Operation = "created"
	Updated Operation = "updated"
	Skipped Operation = "skipped"
	Planned Operation = "planned" // dry-run: would have been created or updated
)

// Action records a single file operation.
type Action struct {
	File        string    // e.g. "vite.config.ts", "components.d.ts"
	Operation   Operation // created, updated, skipped, planned
	Description string    // human-readable detail
}

// Changed reports whether the action touched (or would touch) the file.
func (a Action) Changed() bool {
	return a.Operation == Created || a.Operation == Updated || a.Operation == Planned
}
